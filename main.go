package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/work-tracker/middleware/ratelimit"
	"github.com/example/work-tracker/modules/api"
	"github.com/example/work-tracker/modules/notification"
	"github.com/example/work-tracker/modules/session"
	"github.com/example/work-tracker/modules/task"
	"github.com/example/work-tracker/modules/views"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Work Tracker - Client Work Task Tracking ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Rate limiting is opt-in: it only runs when a Redis address is
	// configured. Middleware must be registered before regular modules
	// to intercept their service registrations.
	if redisAddr := os.Getenv("RATE_LIMIT_REDIS_ADDR"); redisAddr != "" {
		rateLimitMiddleware, err := ratelimit.New(
			ratelimit.WithRedisAddr(redisAddr),
			ratelimit.WithRedisPassword(os.Getenv("RATE_LIMIT_REDIS_PASSWORD")),
			ratelimit.WithDefaultLimit(120, time.Minute),
			// Mutations are throttled harder than reads.
			ratelimit.WithServiceLimit("create-task", 30, time.Minute),
			ratelimit.WithServiceLimit("update-status", 60, time.Minute),
			ratelimit.WithServiceLimit("delete-task", 30, time.Minute),
		)
		if err != nil {
			log.Fatalf("Failed to create rate limiting middleware: %v", err)
		}
		app.Register(rateLimitMiddleware)
	}

	// Register modules with the framework.
	// The framework automatically handles:
	// - ServiceProviderModule.RegisterServices() for request-reply services
	// - DependentModule.SetDependencyServiceContainer() for cross-module communication
	// - EventBusAwareModule.SetEventBus() for event publishing
	// - EventConsumerModule.RegisterEventConsumers() for event subscriptions
	//
	// Order: independent modules first, then modules with dependencies
	app.Register(session.NewModule())      // Independent module (no dependencies)
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (emits events)
	app.Register(views.NewModule())        // Read-side views (depends on task)
	app.Register(api.NewModule())          // Driving adapter (depends on task, views, session)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /api/v1/session              - Start a session (display name -> token)")
	log.Println("  GET    /api/v1/session              - Resolve the current session")
	log.Println("  POST   /api/v1/tasks                - Create a task")
	log.Println("  GET    /api/v1/tasks                - List tasks (status set + ordering)")
	log.Println("  GET    /api/v1/tasks/:id            - Get a task by ID")
	log.Println("  PUT    /api/v1/tasks/:id            - Edit a task's submission fields")
	log.Println("  PATCH  /api/v1/tasks/:id/status     - Transition a task's status")
	log.Println("  DELETE /api/v1/tasks/:id            - Delete a task")
	log.Println("  GET    /api/v1/views/dashboard      - Active board with metrics and filters")
	log.Println("  GET    /api/v1/views/completed      - Completed archive with metrics")
	log.Println("  GET    /api/v1/views/calendar       - Month grid of tasks by due date")
	log.Println("  GET    /health                      - Health check")
	log.Println("")
	log.Println("Configuration (environment):")
	log.Println("  DB_PATH                 - SQLite database path (default: worktracker.db)")
	log.Println("  HTTP_ADDR               - HTTP listen address (default: :3000)")
	log.Println("  SESSION_SECRET          - Session token signing secret")
	log.Println("  RATE_LIMIT_REDIS_ADDR   - Enable Redis rate limiting when set")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
