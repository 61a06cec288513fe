package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/work-tracker/domain/calendar"
	domain "github.com/example/work-tracker/domain/task"
	"github.com/example/work-tracker/modules/task"
	"github.com/example/work-tracker/modules/views"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	// Health check endpoint
	m.app.Get("/health", m.healthHandler)

	// API v1 routes
	api := m.app.Group("/api/v1")

	// Session endpoints. Opening a session is the only unauthenticated
	// operation.
	api.Post("/session", m.startSession)
	api.Get("/session", SessionMiddleware(m.sessionAdapter), m.currentSession)

	// Task endpoints
	tasks := api.Group("/tasks", SessionMiddleware(m.sessionAdapter))
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
	tasks.Patch("/:id/status", m.updateStatus)

	// View endpoints
	viewRoutes := api.Group("/views", SessionMiddleware(m.sessionAdapter))
	viewRoutes.Get("/dashboard", m.dashboardView)
	viewRoutes.Get("/completed", m.completedView)
	viewRoutes.Get("/calendar", m.calendarView)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.addr,
		},
	})
}

// startSession handles POST /api/v1/session.
func (m *APIModule) startSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Display name is required",
		})
	}

	resp, err := m.sessionAdapter.StartSession(c.UserContext(), req.DisplayName)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "session_failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(SessionResponse{
		Token:       resp.Token,
		DisplayName: resp.DisplayName,
		ExpiresIn:   resp.ExpiresIn,
	})
}

// currentSession handles GET /api/v1/session.
func (m *APIModule) currentSession(c *fiber.Ctx) error {
	return c.JSON(SessionResponse{DisplayName: sessionName(c)})
}

// createTask handles POST /api/v1/tasks. The creator is always the
// session's display name; the body cannot override it.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	// Validate required fields
	if req.ClientName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Client name is required",
		})
	}
	if req.WorkTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Work title is required",
		})
	}
	if req.DueDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Due date is required",
		})
	}
	if _, err := domain.NormalizeDueDate(req.DueDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Due date must be formatted YYYY-MM-DD",
		})
	}
	if req.Priority != "" && !domain.Priority(req.Priority).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Unknown priority",
		})
	}
	if req.Category != "" && !domain.Category(req.Category).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Unknown category",
		})
	}
	if req.Status != "" && !domain.Status(req.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Unknown status",
		})
	}

	resp, err := m.taskAdapter.CreateTask(c.UserContext(), &task.CreateTaskRequest{
		ClientName:  req.ClientName,
		WorkTitle:   req.WorkTitle,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		Category:    req.Category,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   sessionName(c),
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toHTTPTask(resp))
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	resp, err := m.taskAdapter.GetTask(c.UserContext(), taskID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}

	return c.JSON(toHTTPTask(resp))
}

// listTasks handles GET /api/v1/tasks. Status may repeat to build a
// status set; order_by picks the single ordering key.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	req := task.ListTasksRequest{OrderBy: c.Query("order_by", "")}
	for _, status := range c.Context().QueryArgs().PeekMulti("status") {
		value := string(status)
		if !domain.Status(value).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation_error",
				Message: "Unknown status",
			})
		}
		req.Statuses = append(req.Statuses, value)
	}

	resp, err := m.taskAdapter.ListTasks(c.UserContext(), &req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: err.Error(),
		})
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		tasks = append(tasks, toHTTPTask(&resp.Tasks[i]))
	}

	return c.JSON(ListTasksResponse{
		Tasks: tasks,
		Total: resp.Total,
	})
}

// updateTask handles PUT /api/v1/tasks/:id. This is a full-record
// edit; status transitions have their own endpoint.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.ClientName == "" || req.WorkTitle == "" || req.DueDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Client name, work title and due date are required",
		})
	}
	if _, err := domain.NormalizeDueDate(req.DueDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Due date must be formatted YYYY-MM-DD",
		})
	}

	resp, err := m.taskAdapter.UpdateTask(c.UserContext(), &task.UpdateTaskRequest{
		TaskID:      taskID,
		ClientName:  req.ClientName,
		WorkTitle:   req.WorkTitle,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}

	return c.JSON(toHTTPTask(resp))
}

// updateStatus handles PATCH /api/v1/tasks/:id/status.
func (m *APIModule) updateStatus(c *fiber.Ctx) error {
	taskID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if !domain.Status(req.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Unknown status",
		})
	}

	resp, err := m.taskAdapter.UpdateStatus(c.UserContext(), taskID, req.Status)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}

	return c.JSON(toHTTPTask(resp))
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	if err := m.taskAdapter.DeleteTask(c.UserContext(), taskID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// dashboardView handles GET /api/v1/views/dashboard.
func (m *APIModule) dashboardView(c *fiber.Ctx) error {
	resp, err := m.viewsAdapter.Dashboard(c.UserContext(), &views.DashboardRequest{
		StatusFilter: c.Query("status", ""),
		TypeFilter:   c.Query("type", ""),
		Search:       c.Query("search", ""),
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "view_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// completedView handles GET /api/v1/views/completed.
func (m *APIModule) completedView(c *fiber.Ctx) error {
	resp, err := m.viewsAdapter.Completed(c.UserContext(), &views.CompletedRequest{
		Search: c.Query("search", ""),
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "view_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// calendarView handles GET /api/v1/views/calendar.
func (m *APIModule) calendarView(c *fiber.Ctx) error {
	month := c.Query("month", "")
	if month != "" {
		if _, err := calendar.ParseReference(month); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation_error",
				Message: "Month must be formatted YYYY-MM",
			})
		}
	}

	resp, err := m.viewsAdapter.Calendar(c.UserContext(), &views.CalendarRequest{Month: month})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "view_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// toHTTPTask converts a task service response to its HTTP form.
func toHTTPTask(t *task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ClientName:  t.ClientName,
		WorkTitle:   t.WorkTitle,
		DueDate:     t.DueDate,
		Assignee:    t.Assignee,
		Priority:    t.Priority,
		Category:    t.Category,
		Description: t.Description,
		Status:      t.Status,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}
