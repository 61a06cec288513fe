package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// sessionAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the SessionPort interface.
type sessionAdapter struct {
	container mono.ServiceContainer
}

// NewSessionAdapter creates a new adapter for session services.
func NewSessionAdapter(container mono.ServiceContainer) SessionPort {
	if container == nil {
		panic("session adapter requires non-nil ServiceContainer")
	}
	return &sessionAdapter{container: container}
}

// StartSession opens a session via the start-session service.
func (a *sessionAdapter) StartSession(ctx context.Context, displayName string) (*StartSessionResponse, error) {
	req := StartSessionRequest{DisplayName: displayName}
	var resp StartSessionResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"start-session",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("start-session service call failed: %w", err)
	}
	return &resp, nil
}

// ResolveSession resolves a token via the resolve-session service.
func (a *sessionAdapter) ResolveSession(ctx context.Context, token string) (*ResolveSessionResponse, error) {
	req := ResolveSessionRequest{Token: token}
	var resp ResolveSessionResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"resolve-session",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("resolve-session service call failed: %w", err)
	}
	return &resp, nil
}
