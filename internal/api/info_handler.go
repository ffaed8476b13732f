package api

import (
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/config"
)

// endpointDescriptions is advertised by the info endpoint.
var endpointDescriptions = map[string]string{
	"GET /todos":         "Get all todos",
	"POST /todos":        "Create a new todo",
	"GET /todos/<id>":    "Get a specific todo",
	"PUT /todos/<id>":    "Update a todo",
	"DELETE /todos/<id>": "Delete a todo",
}

// InfoHandler serves the service description and liveness endpoints.
type InfoHandler struct {
	app config.AppConfig
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(app config.AppConfig) *InfoHandler {
	return &InfoHandler{app: app}
}

// Info handles GET / requests
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	endpoints := make(map[string]string, len(endpointDescriptions))
	for k, v := range endpointDescriptions {
		endpoints[k] = v
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Message:   h.app.Name,
		Version:   h.app.Version,
		Endpoints: endpoints,
	})
}

// Health handles GET /health requests
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy"})
}
