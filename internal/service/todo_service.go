package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// CreateTodoInput carries the optional creation fields exactly as received.
// A nil Title means the key was absent.
type CreateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoService provides todo-related operations
type TodoService interface {
	// ListTodos returns every todo in insertion order
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo validates the input, stores a new todo and returns it
	CreateTodo(ctx context.Context, input CreateTodoInput) (*domain.Todo, error)

	// GetTodo retrieves a todo by its ID
	GetTodo(ctx context.Context, id int64) (*domain.Todo, error)

	// UpdateTodo applies a partial update to a todo
	UpdateTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)

	// DeleteTodo removes a todo
	DeleteTodo(ctx context.Context, id int64) error
}

// TodoServiceError wraps errors from the todo service with context.
type TodoServiceError struct {
	// Operation is the operation that failed (e.g., "create_todo", "update_todo")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TodoServiceError.
func (e *TodoServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("todo service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("todo service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TodoServiceError) Unwrap() error {
	return e.Err
}

// NewTodoServiceError creates a new TodoServiceError.
// It returns known sentinel errors directly without wrapping.
func NewTodoServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTodoNotFound) || errors.Is(err, store.ErrTodoNotFound) {
		return ErrTodoNotFound
	}

	if errors.Is(err, ErrInvalidInput) {
		return err
	}

	return &TodoServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	todoStore    store.TodoStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTodoService creates a new TodoService
// It returns an error if any of the required dependencies are nil.
func NewTodoService(
	todoStore store.TodoStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TodoService, error) {
	if todoStore == nil {
		return nil, &TodoServiceError{
			Operation: "create_service",
			Message:   "todoStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TodoServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &todoServiceImpl{
		todoStore:    todoStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "todo_service"),
	}, nil
}

// ListTodos returns a snapshot of the registry.
func (s *todoServiceImpl) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.todoStore.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list todos", "error", err)
		return nil, NewTodoServiceError("list_todos", "failed to list todos", err)
	}
	return todos, nil
}

// CreateTodo validates the input before the store is touched, so a rejected
// request leaves both the records and the ID counter unchanged.
func (s *todoServiceImpl) CreateTodo(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	draft, err := domain.NewTodoDraft(input.Title, input.Description, input.Completed)
	if err != nil {
		log.Debug("rejected todo creation", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	todo, err := s.todoStore.Create(ctx, draft)
	if err != nil {
		log.Error("failed to create todo", "error", err)
		return nil, NewTodoServiceError("create_todo", "failed to save todo", err)
	}

	log.Info("todo created", "todo_id", todo.ID)
	s.emit(ctx, events.TodoCreated, todo.ID, todo)
	return todo, nil
}

// GetTodo retrieves a todo by its ID
func (s *todoServiceImpl) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve todo",
				"error", err,
				"todo_id", id)
		}
		return nil, NewTodoServiceError("get_todo", "failed to retrieve todo", err)
	}
	return todo, nil
}

// UpdateTodo applies the patch and emits an update event listing the changed fields.
// A patch with no fields still confirms the todo exists but emits nothing.
func (s *todoServiceImpl) UpdateTodo(
	ctx context.Context,
	id int64,
	patch domain.TodoPatch,
) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	todo, err := s.todoStore.Update(ctx, id, patch)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update todo", "error", err, "todo_id", id)
		}
		return nil, NewTodoServiceError("update_todo", "failed to update todo", err)
	}

	if patch.IsEmpty() {
		log.Debug("todo update carried no fields", "todo_id", id)
		return todo, nil
	}

	fields := patch.Fields()
	log.Info("todo updated", "todo_id", id, "fields", fields)
	s.emit(ctx, events.TodoUpdated, id, struct {
		Fields []string     `json:"fields"`
		Todo   *domain.Todo `json:"todo"`
	}{Fields: fields, Todo: todo})
	return todo, nil
}

// DeleteTodo removes a todo
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.todoStore.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete todo", "error", err, "todo_id", id)
		}
		return NewTodoServiceError("delete_todo", "failed to delete todo", err)
	}

	log.Info("todo deleted", "todo_id", id)
	s.emit(ctx, events.TodoDeleted, id, nil)
	return nil
}

// emit publishes a registry change. The mutation has already happened, so
// failures are logged and never returned to the caller.
func (s *todoServiceImpl) emit(ctx context.Context, eventType string, todoID int64, payload interface{}) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTodoEvent(eventType, todoID, payload)
	if err != nil {
		log.Error("failed to create todo event",
			"error", err,
			"event_type", eventType,
			"todo_id", todoID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit todo event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"todo_id", todoID)
	}
}
