package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/todo-api/internal/api"
	apiMiddleware "github.com/phrazzld/todo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if app.config.Server.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewCORSMiddleware(app.config.CORS))

	// Create API handlers using the application's services
	infoHandler := api.NewInfoHandler(app.config.App)
	todoHandler := api.NewTodoHandler(app.todoService, app.logger)

	// Register routes
	r.Get("/", infoHandler.Info)
	r.Get("/health", infoHandler.Health)

	todoPath := "/todos/{" + api.TodoIDParam + ":[0-9]+}"

	// Non-numeric IDs never match and fall through to the router's 404.
	r.Get("/todos", todoHandler.ListTodos)
	r.Post("/todos", todoHandler.CreateTodo)
	r.Get(todoPath, todoHandler.GetTodo)
	r.Put(todoPath, todoHandler.UpdateTodo)
	r.Delete(todoPath, todoHandler.DeleteTodo)

	return r
}
