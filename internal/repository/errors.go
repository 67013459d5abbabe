package repository

import (
	"errors"
	"fmt"

	"kanban/internal/persistence"
)

// Common repository errors
var (
	// ErrSnapshotNotFound is returned when no board is stored under a key.
	// It matches persistence.ErrNotFound.
	ErrSnapshotNotFound = fmt.Errorf("board snapshot: %w", persistence.ErrNotFound)

	// ErrTodoNotFound is returned when a todo is not found
	ErrTodoNotFound = errors.New("todo not found")
)
