package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"title present", `{"title":"Buy milk"}`, false},
		{"empty title is still present", `{"title":""}`, false},
		{"title missing", `{"description":"no title"}`, true},
		{"title null", `{"title":null}`, true},
		{"empty object", `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateTodoRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := shared.ValidateRequest(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateTodoRequestPatch(t *testing.T) {
	var req UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":99,"completed":true,"title":null}`), &req))

	patch := req.Patch()
	assert.Equal(t, []string{"completed"}, patch.Fields())

	todo := domain.Todo{ID: 1, Title: "keep", Description: "keep too"}
	patch.Apply(&todo)
	assert.Equal(t, domain.Todo{ID: 1, Title: "keep", Description: "keep too", Completed: true}, todo)
}

func TestListTodosResponseShape(t *testing.T) {
	body, err := json.Marshal(ListTodosResponse{Todos: []domain.Todo{}, Count: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"todos":[],"count":0}`, string(body))
}
