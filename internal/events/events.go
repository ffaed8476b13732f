package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the todo service.
const (
	TodoCreated = "todo.created"
	TodoUpdated = "todo.updated"
	TodoDeleted = "todo.deleted"
)

// TodoEvent records a single change to the registry.
type TodoEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of TodoCreated, TodoUpdated or TodoDeleted
	Type string `json:"type"`

	// TodoID is the ID of the affected todo
	TodoID int64 `json:"todo_id"`

	// Payload contains event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewTodoEvent creates a new TodoEvent with the specified type, todo ID and payload.
// A nil payload produces an event without a payload.
func NewTodoEvent(eventType string, todoID int64, payload interface{}) (*TodoEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &TodoEvent{
		ID:        uuid.New(),
		Type:      eventType,
		TodoID:    todoID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TodoEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TodoEvent) error
}
