// Package memory provides an in-process implementation of store.TodoStore.
//
// The registry lives for the lifetime of the process and is discarded on
// shutdown. A single sync.RWMutex guards both the ordered record slice and the
// ID counter, so ID assignment and append happen as one step and every read
// observes a state that existed at a single instant.
package memory
