package model

// RequestStats partitions purchase requests by decision-relevant status.
// Statuses outside the three named buckets still count toward Total.
type RequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// OrderStats summarizes order fulfillment progress.
type OrderStats struct {
	Total      int `json:"total"`
	InProgress int `json:"inProgress"` // prepared or shipped
	Delivered  int `json:"delivered"`
}

// DashboardData is the aggregate view rendered on the dashboard
// landing page: summary counts plus the five most recent records of
// each kind.
type DashboardData struct {
	RequestStats   RequestStats      `json:"requestStats"`
	RecentRequests []PurchaseRequest `json:"recentRequests"`
	OrderStats     OrderStats        `json:"orderStats"`
	RecentOrders   []Order           `json:"recentOrders"`
	ApprovalRate   float64           `json:"approval_rate"`
}
