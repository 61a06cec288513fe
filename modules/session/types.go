package session

import "context"

// StartSessionRequest opens a session for a display name. There is no
// account record behind it; the name is the whole identity.
type StartSessionRequest struct {
	DisplayName string `json:"display_name"`
}

// StartSessionResponse carries the signed session token.
type StartSessionResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ResolveSessionRequest resolves a token back to its display name.
type ResolveSessionRequest struct {
	Token string `json:"token"`
}

// ResolveSessionResponse is the identity carried by a valid token.
type ResolveSessionResponse struct {
	DisplayName string `json:"display_name"`
}

// SessionPort is the contract driving adapters use to reach the
// session module.
type SessionPort interface {
	StartSession(ctx context.Context, displayName string) (*StartSessionResponse, error)
	ResolveSession(ctx context.Context, token string) (*ResolveSessionResponse, error)
}
