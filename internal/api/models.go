package api

import (
	"github.com/phrazzld/todo-api/internal/domain"
)

// Common request/response structures

// CreateTodoRequest defines the payload for creating a todo.
// Pointer fields distinguish an absent key from a zero value.
type CreateTodoRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// UpdateTodoRequest defines the payload for a partial update.
// A nil field (absent key or JSON null) leaves the stored value untouched.
// Any "id" key in the body is ignored.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Patch converts the request into a domain patch.
func (r UpdateTodoRequest) Patch() domain.TodoPatch {
	return domain.TodoPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// ListTodosResponse is the body of GET /todos.
type ListTodosResponse struct {
	Todos []domain.Todo `json:"todos"`
	Count int           `json:"count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
