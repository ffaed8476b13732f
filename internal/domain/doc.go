// Package domain contains the todo record and the value types used to create
// and partially update it. It has no knowledge of storage or HTTP.
package domain
