package handler

import (
	"net/http"

	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	authService    service.AuthService
}

func NewCatalogHandler(catalogService service.CatalogService, authService service.AuthService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, authService: authService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	suppliers := router.Group("/api/v1/suppliers", middleware.RequireSession(h.authService))
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.POST("", h.CreateSupplier)
	}

	materials := router.Group("/api/v1/materials", middleware.RequireSession(h.authService))
	{
		materials.GET("", h.ListMaterials)
		materials.POST("", h.CreateMaterial)
	}
}

// ListSuppliers returns all suppliers
// @Summary      List suppliers
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	suppliers, err := h.catalogService.ListSuppliers(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, suppliers))
}

// CreateSupplier adds a supplier
// @Summary      Create supplier
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateSupplierInput  true  "Supplier payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/v1/suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var input service.CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.catalogService.CreateSupplier(c.Request.Context(), sess, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// ListMaterials returns the material catalog
// @Summary      List materials
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/materials [get]
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	materials, err := h.catalogService.ListMaterials(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, materials))
}

// CreateMaterial adds a catalog entry
// @Summary      Create material
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateMaterialInput  true  "Material payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/v1/materials [post]
func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var input service.CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.catalogService.CreateMaterial(c.Request.Context(), sess, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}
