package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// SessionModule issues and resolves session tokens. A session is just
// a signed display name; the tracker has no user accounts.
type SessionModule struct {
	tokens *TokenManager
}

// Compile-time interface checks.
var _ mono.Module = (*SessionModule)(nil)
var _ mono.ServiceProviderModule = (*SessionModule)(nil)

// NewModule creates a new SessionModule. The signing secret comes from
// SESSION_SECRET when set.
func NewModule() *SessionModule {
	config := DefaultTokenConfig()
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		config.SecretKey = secret
	}
	return &SessionModule{tokens: NewTokenManager(config)}
}

// Name returns the module name.
func (m *SessionModule) Name() string {
	return "session"
}

// RegisterServices registers the session services.
func (m *SessionModule) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]error{
		"start-session":   helper.RegisterTypedRequestReplyService(container, "start-session", json.Unmarshal, json.Marshal, m.startSession),
		"resolve-session": helper.RegisterTypedRequestReplyService(container, "resolve-session", json.Unmarshal, json.Marshal, m.resolveSession),
	}
	for name, err := range services {
		if err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[session] Registered services: start-session, resolve-session")
	return nil
}

// Start initializes the session module.
func (m *SessionModule) Start(_ context.Context) error {
	log.Println("[session] Module started")
	return nil
}

// Stop shuts down the session module.
func (m *SessionModule) Stop(_ context.Context) error {
	log.Println("[session] Module stopped")
	return nil
}
