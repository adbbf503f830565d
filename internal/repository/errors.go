package repository

import "errors"

// Common repository errors
var (
	// ErrKeyNotFound is returned by a Store when a key holds no document
	ErrKeyNotFound = errors.New("key not found")

	// ErrTaskNotFound is returned when a task is missing or soft-deleted
	ErrTaskNotFound = errors.New("task not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrActionNotFound is returned when a staged meeting action is not found
	ErrActionNotFound = errors.New("meeting action not found")
)
