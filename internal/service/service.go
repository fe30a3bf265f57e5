// Package service defines the backend-agnostic interface for reading projects.
package service

import (
	"context"
	"errors"
)

// ErrProjectNotFound is returned when no project matches the requested name.
// Distinct from a project that exists but has no tasks.
var ErrProjectNotFound = errors.New("project not found")

// Service defines the read-only interface into the task store.
// All Things database access goes through this interface.
// Commands never import the SQLite driver directly.
type Service interface {
	// FetchProject returns a complete snapshot of the named project:
	// tags, due date, notes and the full ordered task sequence are
	// materialized before it returns. Matching is by exact title
	// (case-sensitive). Returns ErrProjectNotFound if no project matches.
	FetchProject(ctx context.Context, name string) (Project, error)

	// ListProjects returns the titles of all non-trashed projects
	// in source order.
	ListProjects(ctx context.Context) ([]string, error)
}
