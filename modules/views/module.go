package views

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/example/work-tracker/modules/task"
)

// ViewsModule derives the read-side views of the tracker: the active
// dashboard, the completed archive and the month calendar. It holds no
// state of its own; every request re-fetches from the task module.
type ViewsModule struct {
	taskPort task.TaskPort
	clock    func() time.Time
}

// Compile-time interface checks.
var _ mono.Module = (*ViewsModule)(nil)
var _ mono.ServiceProviderModule = (*ViewsModule)(nil)
var _ mono.DependentModule = (*ViewsModule)(nil)

// NewModule creates a new ViewsModule.
func NewModule() *ViewsModule {
	return &ViewsModule{}
}

// Name returns the module name.
func (m *ViewsModule) Name() string {
	return "views"
}

// Dependencies declares which modules this module needs.
// The framework will call SetDependencyServiceContainer for each dependency.
func (m *ViewsModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
// This is called by the framework for each dependency declared in Dependencies().
func (m *ViewsModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskPort = task.NewTaskAdapter(container)
		log.Println("[views] Task service adapter configured")
	}
}

// RegisterServices registers the view services.
func (m *ViewsModule) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]error{
		"dashboard-view": helper.RegisterTypedRequestReplyService(container, "dashboard-view", json.Unmarshal, json.Marshal, m.dashboard),
		"completed-view": helper.RegisterTypedRequestReplyService(container, "completed-view", json.Unmarshal, json.Marshal, m.completed),
		"calendar-view":  helper.RegisterTypedRequestReplyService(container, "calendar-view", json.Unmarshal, json.Marshal, m.calendarView),
	}
	for name, err := range services {
		if err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[views] Registered services: dashboard-view, completed-view, calendar-view")
	return nil
}

// Start initializes the views module.
func (m *ViewsModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("task service adapter not configured")
	}
	log.Println("[views] Module started")
	return nil
}

// Stop shuts down the views module.
func (m *ViewsModule) Stop(_ context.Context) error {
	log.Println("[views] Module stopped")
	return nil
}
