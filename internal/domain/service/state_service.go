package service

import "github.com/pkg/errors"

// ErrInvalidState is returned for a state parameter that is malformed, forged or expired.
var ErrInvalidState = errors.New("invalid oauth state")

// StateService binds a user id to the OAuth round trip through the state parameter.
type StateService interface {
	// Issue signs userID into a short-lived state token.
	Issue(userID string) (string, error)

	// Parse returns the user id carried by a state token issued by Issue.
	Parse(state string) (string, error)
}
