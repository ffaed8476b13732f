// Package service implements the todo use cases on top of store.TodoStore.
//
// It validates creation input, passes not-found conditions through as
// sentinel errors, wraps anything unexpected in TodoServiceError and emits a
// TodoEvent after every successful mutation.
package service
