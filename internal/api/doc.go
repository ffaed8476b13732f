// Package api handles incoming HTTP requests, request decoding and response
// formatting for the todo registry. It acts as an adapter between HTTP
// clients and the todo service, translating HTTP concerns to service calls
// and service errors to status codes.
package api
