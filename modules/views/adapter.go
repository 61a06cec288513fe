package views

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// viewsAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the ViewsPort interface.
type viewsAdapter struct {
	container mono.ServiceContainer
}

// NewViewsAdapter creates a new adapter for view services.
func NewViewsAdapter(container mono.ServiceContainer) ViewsPort {
	if container == nil {
		panic("views adapter requires non-nil ServiceContainer")
	}
	return &viewsAdapter{container: container}
}

// Dashboard fetches the active-task board via the dashboard-view service.
func (a *viewsAdapter) Dashboard(ctx context.Context, req *DashboardRequest) (*DashboardResponse, error) {
	var resp DashboardResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"dashboard-view",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("dashboard-view service call failed: %w", err)
	}
	return &resp, nil
}

// Completed fetches the completed archive via the completed-view service.
func (a *viewsAdapter) Completed(ctx context.Context, req *CompletedRequest) (*CompletedResponse, error) {
	var resp CompletedResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"completed-view",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("completed-view service call failed: %w", err)
	}
	return &resp, nil
}

// Calendar fetches the month grid via the calendar-view service.
func (a *viewsAdapter) Calendar(ctx context.Context, req *CalendarRequest) (*CalendarResponse, error) {
	var resp CalendarResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"calendar-view",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("calendar-view service call failed: %w", err)
	}
	return &resp, nil
}
