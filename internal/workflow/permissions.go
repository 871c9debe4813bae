package workflow

import "dashboard/internal/model"

// Capability names for non-decision operations.
const (
	ActionCreateRequest  Action = "create_request"
	ActionManageCatalog  Action = "manage_catalog"
	ActionUpdateTracking Action = "update_tracking"
)

// permissions is the capability table: action -> roles allowed to fire
// it. Financial decisions belong to the finance role alone.
var permissions = map[Action]map[string]bool{
	ActionApprove:     {model.RoleFinance: true},
	ActionReject:      {model.RoleFinance: true},
	ActionRequestInfo: {model.RoleFinance: true},
	ActionCreateRequest: {
		model.RoleLogistics: true,
		model.RoleFinance:   true,
	},
	ActionManageCatalog: {
		model.RoleLogistics: true,
		model.RoleFinance:   true,
	},
	ActionUpdateTracking: {
		model.RoleLogistics: true,
	},
}

// Allowed reports whether a role may fire an action. Unknown roles and
// unknown actions are both denied.
func Allowed(role string, action Action) bool {
	return permissions[action][role]
}
