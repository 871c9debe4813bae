// Package workflow governs the purchase-request lifecycle: which
// decision actions may fire from which status, what each action
// requires, and which role may fire it. Everything here is resolved
// locally, before any network round-trip.
package workflow

import (
	"fmt"
	"strings"

	"dashboard/internal/model"
)

// Action is a user-initiated decision on a pending request.
type Action string

const (
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionRequestInfo Action = "request_info"
)

// ValidationError is a locally caught input problem; it never reaches
// the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InvalidTransitionError reports a decision fired against a request
// that is not in a state accepting it.
type InvalidTransitionError struct {
	Current   string
	Requested Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a request in status %q (decisions only apply to %q)",
		e.Requested, e.Current, model.RequestStatusPending)
}

// decisions maps each action to the approval decision it records and
// the status the request ends up in. request_info deliberately leaves
// the request pending: the clarification ask is recorded on the
// approval trail without a distinct visible sub-state.
var decisions = map[Action]struct {
	Decision        string
	NextStatus      string
	CommentRequired bool
}{
	ActionApprove:     {model.DecisionApproved, model.RequestStatusApproved, false},
	ActionReject:      {model.DecisionRejected, model.RequestStatusRejected, true},
	ActionRequestInfo: {model.DecisionPendingInfo, model.RequestStatusPending, true},
}

// DecisionFor returns the approval decision recorded for an action.
func DecisionFor(action Action) string {
	return decisions[action].Decision
}

// ActionForDecision maps a wire decision value back to its action.
func ActionForDecision(decision string) (Action, bool) {
	for action, rule := range decisions {
		if rule.Decision == decision {
			return action, true
		}
	}
	return "", false
}

// NextStatus returns the request status resulting from an action.
func NextStatus(action Action) string {
	return decisions[action].NextStatus
}

// ValidateComment checks the purely local part of a decision: the
// action is known and carries its mandatory comment. Callers run this
// before touching the network.
func ValidateComment(action Action, comment string) error {
	rule, known := decisions[action]
	if !known {
		return &ValidationError{Field: "action", Message: fmt.Sprintf("unknown action %q", action)}
	}
	if rule.CommentRequired && strings.TrimSpace(comment) == "" {
		return &ValidationError{Field: "comment", Message: fmt.Sprintf("a comment is required when firing %s", action)}
	}
	return nil
}

// ValidateDecision checks an action against the current request status
// and its comment requirement. Returns ValidationError for local input
// problems, InvalidTransitionError for state-machine violations; nil
// means the decision may be sent upstream.
func ValidateDecision(currentStatus string, action Action, comment string) error {
	if err := ValidateComment(action, comment); err != nil {
		return err
	}
	if currentStatus != model.RequestStatusPending {
		return &InvalidTransitionError{Current: currentStatus, Requested: action}
	}
	return nil
}

// requestTransitions is the full lifecycle graph. Transitions past the
// decision step (ordered onward) are driven by backend order tracking;
// they are listed so status rendering and relays share one table.
var requestTransitions = map[string][]string{
	model.RequestStatusPending:   {model.RequestStatusApproved, model.RequestStatusRejected, model.RequestStatusPending},
	model.RequestStatusApproved:  {model.RequestStatusOrdered},
	model.RequestStatusOrdered:   {model.RequestStatusDelivered},
	model.RequestStatusDelivered: {model.RequestStatusClosed},
}

// CanTransitionRequest reports whether from -> to is a legal request
// status transition.
func CanTransitionRequest(from, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTrackingError reports an order tracking update that skips or
// reverses the fulfillment chain.
type InvalidTrackingError struct {
	Current   string
	Requested string
}

func (e *InvalidTrackingError) Error() string {
	return fmt.Sprintf("cannot move order tracking from %q to %q", e.Current, e.Requested)
}

// trackingTransitions is the order fulfillment chain.
var trackingTransitions = map[string]string{
	model.TrackingPrepared: model.TrackingShipped,
	model.TrackingShipped:  model.TrackingDelivered,
}

// CanAdvanceTracking reports whether an order may move from one
// tracking status to the next.
func CanAdvanceTracking(from, to string) bool {
	return trackingTransitions[from] == to
}
