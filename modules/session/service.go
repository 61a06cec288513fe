package session

import (
	"context"
	"strings"

	"github.com/go-monolith/mono"

	domain "github.com/example/work-tracker/domain/task"
)

// startSession handles the start-session service request.
func (m *SessionModule) startSession(_ context.Context, req StartSessionRequest, _ *mono.Msg) (StartSessionResponse, error) {
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return StartSessionResponse{}, &domain.ValidationError{Field: "display_name", Reason: "is required"}
	}

	token, err := m.tokens.GenerateToken(name)
	if err != nil {
		return StartSessionResponse{}, err
	}

	return StartSessionResponse{
		Token:       token,
		DisplayName: name,
		ExpiresIn:   m.tokens.TokenDuration(),
	}, nil
}

// resolveSession handles the resolve-session service request.
func (m *SessionModule) resolveSession(_ context.Context, req ResolveSessionRequest, _ *mono.Msg) (ResolveSessionResponse, error) {
	claims, err := m.tokens.ValidateToken(req.Token)
	if err != nil {
		return ResolveSessionResponse{}, err
	}
	return ResolveSessionResponse{DisplayName: claims.DisplayName}, nil
}
