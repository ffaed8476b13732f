package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TodoStore defines the interface for todo persistence.
//
// Implementations must make every method safe for concurrent use. Create in
// particular assigns the ID and appends the record in one step, so two
// concurrent creates never observe the same ID.
type TodoStore interface {
	// List returns every todo in insertion order. The returned slice is a
	// snapshot owned by the caller and is never nil.
	List(ctx context.Context) ([]domain.Todo, error)

	// Create assigns the next ID to the draft, appends it and returns the stored todo.
	// IDs are strictly increasing and never reused, even after deletes.
	Create(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error)

	// GetByID retrieves a todo by ID.
	// Returns ErrTodoNotFound if the todo does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)

	// Update applies the patch to the todo with the given ID and returns the result.
	// Returns ErrTodoNotFound if the todo does not exist.
	Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)

	// Delete removes the todo with the given ID. The relative order of the
	// remaining todos is preserved.
	// Returns ErrTodoNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored todos.
	Count(ctx context.Context) (int, error)
}
