// Package events provides types and interfaces for reacting to registry changes.
//
// The service layer emits a TodoEvent after every successful mutation without
// knowing who listens. Handlers are registered on an EventEmitter at startup.
//
// The primary components are:
// - TodoEvent: describes one create, update or delete of a todo
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - AuditLogHandler: writes every event to the structured log
package events
