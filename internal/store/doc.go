// Package store defines interfaces for todo persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// service layer, so the in-memory registry can be swapped without touching
// request handling.
package store
