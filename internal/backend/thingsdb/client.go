// Package thingsdb implements the service.Service interface by reading
// the Things 3 SQLite database directly.
package thingsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"things2md/internal/config"
	"things2md/internal/service"
)

// Row type discriminator in TMTask.
const (
	typeTask    = 0
	typeProject = 1
)

// Client implements service.Service against a Things database file.
type Client struct {
	db *sql.DB
}

// New locates and opens the Things database for the given config.
// The lookup order is: cfg.Database, then the well-known group-container
// locations. A database that cannot be found or opened is a backend error.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	path := cfg.Database
	if path == "" {
		path = DefaultDatabasePath()
	}
	if path == "" {
		return nil, errors.New("Things database not found (is Things 3 installed?)")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("Things database not found at %s", path)
	}
	return Open(ctx, path)
}

// Open opens the database at path read-only.
func Open(ctx context.Context, path string) (*Client, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Client{db: db}, nil
}

// Close releases the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// FetchProject implements service.Service.
// Matching is exact title equality on a non-trashed project row, with
// SQLite's case-sensitive TEXT comparison.
func (c *Client) FetchProject(ctx context.Context, name string) (service.Project, error) {
	query := `
		SELECT uuid, title, notes, deadline
		FROM TMTask
		WHERE type = ? AND trashed = 0 AND title = ?
		LIMIT 1
	`

	var proj service.Project
	var notes sql.NullString
	var deadline sql.NullInt64
	err := c.db.QueryRowContext(ctx, query, typeProject, name).Scan(
		&proj.ID,
		&proj.Title,
		&notes,
		&deadline,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return service.Project{}, service.ErrProjectNotFound
	}
	if err != nil {
		return service.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	proj.Notes = notes.String
	if deadline.Valid {
		proj.Due = decodeDate(deadline.Int64)
	}

	if proj.Tags, err = c.tagsFor(ctx, proj.ID); err != nil {
		return service.Project{}, err
	}
	if proj.Tasks, err = c.tasksFor(ctx, proj.ID); err != nil {
		return service.Project{}, err
	}

	return proj, nil
}

// ListProjects implements service.Service.
func (c *Client) ListProjects(ctx context.Context) ([]string, error) {
	query := `
		SELECT title
		FROM TMTask
		WHERE type = ? AND trashed = 0
		ORDER BY "index"
	`

	rows, err := c.db.QueryContext(ctx, query, typeProject)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return titles, nil
}

// tasksFor returns the non-trashed to-dos of a project in manual order,
// with tags resolved.
func (c *Client) tasksFor(ctx context.Context, projectID string) ([]service.Task, error) {
	query := `
		SELECT uuid, title, notes, status
		FROM TMTask
		WHERE type = ? AND trashed = 0 AND project = ?
		ORDER BY "index"
	`

	rows, err := c.db.QueryContext(ctx, query, typeTask, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []service.Task
	for rows.Next() {
		var t service.Task
		var notes sql.NullString
		var status int
		if err := rows.Scan(&t.ID, &t.Title, &notes, &status); err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		t.Notes = notes.String
		t.Status = service.Status(status)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	// Second pass so the task cursor is closed before tag queries run.
	for i := range tasks {
		if tasks[i].Tags, err = c.tagsFor(ctx, tasks[i].ID); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// tagsFor returns the tag titles attached to a task or project, in the
// order the links were created.
func (c *Client) tagsFor(ctx context.Context, taskID string) ([]string, error) {
	query := `
		SELECT t.title
		FROM TMTaskTag tt
		JOIN TMTag t ON t.uuid = tt.tags
		WHERE tt.tasks = ?
		ORDER BY tt.rowid
	`

	rows, err := c.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to resolve tags: %w", err)
		}
		tags = append(tags, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	return tags, nil
}

// decodeDate unpacks a Things deadline value: the year sits above bit 16,
// the month in bits 12-15 and the day in bits 7-11.
func decodeDate(v int64) *service.Date {
	if v <= 0 {
		return nil
	}
	return &service.Date{
		Year:  int(v >> 16),
		Month: int((v >> 12) & 0xF),
		Day:   int((v >> 7) & 0x1F),
	}
}

// EncodeDate packs a calendar date into the Things deadline format.
// The inverse of the decoding above; used by fixtures.
func EncodeDate(d service.Date) int64 {
	return int64(d.Year)<<16 | int64(d.Month)<<12 | int64(d.Day)<<7
}
