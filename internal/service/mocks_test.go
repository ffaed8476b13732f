package service

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockTodoStore mocks the store.TodoStore interface
type MockTodoStore struct {
	mock.Mock
}

func (m *MockTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func (m *MockTodoStore) Create(ctx context.Context, draft domain.TodoDraft) (*domain.Todo, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TodoPatch,
) (*domain.Todo, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.TodoEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
