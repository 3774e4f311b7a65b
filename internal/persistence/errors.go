// Package persistence defines the storage contract shared by the sqlite
// implementation and the services that consume it.
package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when inserting a record whose id is taken.
	ErrDuplicate = errors.New("persistence: duplicate id")
)
