package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
)

// TodoIDParam is the chi URL parameter holding the todo ID.
const TodoIDParam = "id"

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService, logger *slog.Logger) *TodoHandler {
	if todoService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("todoService cannot be nil for TodoHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoHandler{
		todoService: todoService,
		logger:      logger.With(slog.String("component", "todo_handler")),
	}
}

// ListTodos handles GET /todos requests
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if todos == nil {
		todos = []domain.Todo{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListTodosResponse{
		Todos: todos,
		Count: len(todos),
	})
}

// CreateTodo handles POST /todos requests.
// An absent, unparseable or title-less body is rejected with the same message.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgTitleRequired, err,
			shared.WithElevatedLogLevel())
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("create todo request failed validation", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgTitleRequired)
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), service.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, todo)
}

// GetTodo handles GET /todos/{id} requests
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, TodoIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// UpdateTodo handles PUT /todos/{id} requests.
// A missing todo is reported before the body is looked at, so an unknown ID
// answers 404 whatever the body contains.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, TodoIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateTodoRequest
	if decodeErr := shared.DecodeJSON(r, &req); decodeErr != nil {
		if _, err := h.todoService.GetTodo(r.Context(), id); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, decodeErr,
			shared.WithElevatedLogLevel())
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/{id} requests
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, TodoIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Todo deleted successfully",
	})
}
