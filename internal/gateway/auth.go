package gateway

import (
	"context"

	"dashboard/internal/model"
)

// CheckUserResult is the identity backend's answer for a Google ID
// token: whether the account exists and, if so, its profile.
type CheckUserResult struct {
	Exists   bool        `json:"exists"`
	UserData *model.User `json:"user_data,omitempty"`
}

// CheckUser asks the identity backend to verify a Google ID token and
// resolve the matching account. The token travels in the body; this is
// the one unauthenticated call.
func (c *Client) CheckUser(ctx context.Context, token string) (CheckUserResult, error) {
	payload := map[string]string{"token": token}
	var result CheckUserResult
	if err := c.post(ctx, "", "/auth/check-user", payload, &result); err != nil {
		return CheckUserResult{}, err
	}
	return result, nil
}
