package model

// Role enum constants, mirrored from the procurement backend
const (
	RoleLogistics = "logistique" // files purchase requests, tracks orders
	RoleFinance   = "daf"        // holds financial-approval authority
)

// User is the account record returned by the identity backend for a
// verified Google ID token.
type User struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	CIN       string `json:"cin,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Email     string `json:"email"`
}
