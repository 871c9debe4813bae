package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes that carry no extra
// payload. ErrNotFound is a valid "absent" outcome for single-entity
// lookups; callers decide whether it is terminal.
var (
	ErrUnauthenticated = errors.New("missing or invalid credential")
	ErrNotFound        = errors.New("record not found")
)

// UnreachableError wraps a transport-level failure: the request was
// made but no HTTP response came back.
type UnreachableError struct {
	Op  string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("backend unreachable during %s: %v", e.Op, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// ServerRejectedError is a non-2xx response with a server-supplied
// message (other than the 401/404 cases mapped to sentinels above).
type ServerRejectedError struct {
	Status  int
	Message string
}

func (e *ServerRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request with status %d", e.Status)
	}
	return fmt.Sprintf("backend rejected request (status %d): %s", e.Status, e.Message)
}

// IsUnreachable reports whether err is a transport-level failure.
func IsUnreachable(err error) bool {
	var ue *UnreachableError
	return errors.As(err, &ue)
}
