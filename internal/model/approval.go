package model

import "time"

// ApprovalDecision enum constants
const (
	DecisionApproved    = "approved"
	DecisionRejected    = "rejected"
	DecisionPendingInfo = "pending_info"
)

// Approval is a recorded financial decision on a pending purchase
// request. Exactly one is created per decision action; the backend
// applies the resulting status transition (and order creation on
// approval) downstream.
type Approval struct {
	ApprovalID int64     `json:"approval_id"`
	RequestID  int64     `json:"request_id"`
	Decision   string    `json:"decision"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
