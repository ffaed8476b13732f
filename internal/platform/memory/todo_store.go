package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// MemoryTodoStore implements the store.TodoStore interface with an ordered
// slice and a monotonically increasing ID counter.
type MemoryTodoStore struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	nextID int64
	logger *slog.Logger
}

// NewMemoryTodoStore creates an empty registry whose first assigned ID is 1.
// If logger is nil, a default logger will be used.
func NewMemoryTodoStore(logger *slog.Logger) *MemoryTodoStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryTodoStore{
		todos:  make([]domain.Todo, 0),
		nextID: 1,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// Ensure MemoryTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*MemoryTodoStore)(nil)

// List implements store.TodoStore.List
func (s *MemoryTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Todo, len(s.todos))
	copy(snapshot, s.todos)
	return snapshot, nil
}

// Create implements store.TodoStore.Create
// ID assignment, append and counter increment form one critical section.
func (s *MemoryTodoStore) Create(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkContext(ctx, "create"); err != nil {
		log.Warn("todo create abandoned", slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	todo := draft.Build(s.nextID)
	s.todos = append(s.todos, todo)
	s.nextID++
	s.mu.Unlock()

	log.Debug("todo created", slog.Int64("todo_id", todo.ID))
	return &todo, nil
}

// GetByID implements store.TodoStore.GetByID
// It is a linear scan in insertion order.
func (s *MemoryTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTodoNotFound
	}
	todo := s.todos[i]
	return &todo, nil
}

// Update implements store.TodoStore.Update
// The patch is applied in place; fields absent from the patch keep their value.
func (s *MemoryTodoStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TodoPatch,
) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkContext(ctx, "update"); err != nil {
		log.Warn("todo update abandoned", slog.Int64("todo_id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, store.ErrTodoNotFound
	}
	patch.Apply(&s.todos[i])
	todo := s.todos[i]
	s.mu.Unlock()

	log.Debug("todo updated",
		slog.Int64("todo_id", id),
		slog.Any("fields", patch.Fields()))
	return &todo, nil
}

// Delete implements store.TodoStore.Delete
func (s *MemoryTodoStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkContext(ctx, "delete"); err != nil {
		log.Warn("todo delete abandoned", slog.Int64("todo_id", id), slog.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return store.ErrTodoNotFound
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	s.mu.Unlock()

	log.Debug("todo deleted", slog.Int64("todo_id", id))
	return nil
}

// Count implements store.TodoStore.Count
func (s *MemoryTodoStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos), nil
}

// indexOf returns the slice position of id, or -1. Callers hold s.mu.
func (s *MemoryTodoStore) indexOf(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// checkContext refuses to start a mutation for a request that is already
// cancelled, so an abandoned request never changes the registry.
func checkContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("todo", operation, "request cancelled before mutation", err)
	}
	return nil
}
