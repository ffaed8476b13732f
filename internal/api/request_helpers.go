package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/service"
)

// getPathID extracts the todo ID from the URL path parameters.
// The router only lets digit strings through, so the only parse failure left
// is an ID too large for int64. No todo can have such an ID, so the failure
// is reported as service.ErrTodoNotFound.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: path %s %q", service.ErrTodoNotFound, paramName, pathParam)
	}

	return id, nil
}
