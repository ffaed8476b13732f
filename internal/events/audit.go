package events

import (
	"context"
	"log/slog"
)

// AuditLogHandler writes every registry change to the structured log.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler. If logger is nil, the default logger is used.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogHandler{
		logger: logger.With("component", "audit_log"),
	}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TodoEvent) error {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int64("todo_id", event.TodoID),
		slog.Time("occurred_at", event.CreatedAt),
	}
	if len(event.Payload) > 0 {
		attrs = append(attrs, slog.String("payload", string(event.Payload)))
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, "todo registry changed", attrs...)
	return nil
}
