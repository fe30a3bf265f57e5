package thingsdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"things2md/internal/config"
	"things2md/internal/service"
)

// fixtureSchema is the slice of the Things database this adapter reads.
const fixtureSchema = `
CREATE TABLE TMTask (
    uuid TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    type INTEGER NOT NULL,
    status INTEGER NOT NULL DEFAULT 0,
    notes TEXT,
    deadline INTEGER,
    trashed INTEGER NOT NULL DEFAULT 0,
    project TEXT,
    "index" INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE TMTag (
    uuid TEXT PRIMARY KEY,
    title TEXT NOT NULL
);
CREATE TABLE TMTaskTag (
    tasks TEXT NOT NULL,
    tags TEXT NOT NULL
);
`

// fixture writes rows into a temporary Things database file.
type fixture struct {
	t    *testing.T
	db   *sql.DB
	path string
	tags map[string]string // tag title -> uuid
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err, "failed to create fixture database")

	_, err = db.Exec(fixtureSchema)
	require.NoError(t, err, "failed to create fixture schema")

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{t: t, db: db, path: path, tags: make(map[string]string)}
}

// open returns a read-only client over the fixture file.
func (f *fixture) open() *Client {
	f.t.Helper()
	c, err := Open(context.Background(), f.path)
	require.NoError(f.t, err, "failed to open fixture database")
	f.t.Cleanup(func() {
		c.Close()
	})
	return c
}

func (f *fixture) addProject(title, notes string, deadline int64, index int) string {
	return f.addRow(typeProject, title, notes, deadline, "", int(service.StatusOpen), index, false)
}

func (f *fixture) addTask(projectID, title, notes string, status service.Status, index int) string {
	return f.addRow(typeTask, title, notes, 0, projectID, int(status), index, false)
}

func (f *fixture) addRow(rowType int, title, notes string, deadline int64, projectID string, status, index int, trashed bool) string {
	f.t.Helper()

	id := uuid.NewString()
	var notesVal any
	if notes != "" {
		notesVal = notes
	}
	var deadlineVal any
	if deadline != 0 {
		deadlineVal = deadline
	}
	var projectVal any
	if projectID != "" {
		projectVal = projectID
	}

	_, err := f.db.Exec(
		`INSERT INTO TMTask (uuid, title, type, status, notes, deadline, trashed, project, "index")
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, title, rowType, status, notesVal, deadlineVal, trashed, projectVal, index,
	)
	require.NoError(f.t, err, "failed to insert fixture row")
	return id
}

func (f *fixture) trash(id string) {
	f.t.Helper()
	_, err := f.db.Exec(`UPDATE TMTask SET trashed = 1 WHERE uuid = ?`, id)
	require.NoError(f.t, err)
}

// tag attaches tags to a task or project, creating them on first use.
// Link order is the display order.
func (f *fixture) tag(taskID string, titles ...string) {
	f.t.Helper()
	for _, title := range titles {
		tagID, ok := f.tags[title]
		if !ok {
			tagID = uuid.NewString()
			_, err := f.db.Exec(`INSERT INTO TMTag (uuid, title) VALUES (?, ?)`, tagID, title)
			require.NoError(f.t, err)
			f.tags[title] = tagID
		}
		_, err := f.db.Exec(`INSERT INTO TMTaskTag (tasks, tags) VALUES (?, ?)`, taskID, tagID)
		require.NoError(f.t, err)
	}
}

func TestFetchProject_MaterializesSnapshot(t *testing.T) {
	f := newFixture(t)
	due := EncodeDate(service.Date{Year: 2026, Month: 8, Day: 30})
	projID := f.addProject("Launch", "Ship before the offsite.", due, 0)
	f.tag(projID, "work", "q3")

	// Inserted out of display order on purpose.
	f.addTask(projID, "Write changelog", "", service.StatusOpen, 2)
	first := f.addTask(projID, "Tag release", "v2 tag\n\nthen push", service.StatusOpen, 1)
	f.tag(first, "git")

	client := f.open()
	proj, err := client.FetchProject(context.Background(), "Launch")
	require.NoError(t, err)

	require.Equal(t, "Launch", proj.Title)
	require.Equal(t, []string{"work", "q3"}, proj.Tags)
	require.Equal(t, "Ship before the offsite.", proj.Notes)
	require.NotNil(t, proj.Due)
	require.Equal(t, "2026-08-30", proj.Due.String())

	require.Len(t, proj.Tasks, 2)
	require.Equal(t, "Tag release", proj.Tasks[0].Title)
	require.Equal(t, []string{"git"}, proj.Tasks[0].Tags)
	require.Equal(t, "v2 tag\n\nthen push", proj.Tasks[0].Notes)
	require.Equal(t, "Write changelog", proj.Tasks[1].Title)
	require.Empty(t, proj.Tasks[1].Tags)
}

func TestFetchProject_NotFound(t *testing.T) {
	f := newFixture(t)
	f.addProject("Groceries", "", 0, 0)

	client := f.open()
	_, err := client.FetchProject(context.Background(), "Nonexistent Project")
	require.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestFetchProject_ExactCaseMatch(t *testing.T) {
	f := newFixture(t)
	f.addProject("Groceries", "", 0, 0)

	client := f.open()
	_, err := client.FetchProject(context.Background(), "groceries")
	require.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestFetchProject_EmptyProjectIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.addProject("Someday", "", 0, 0)

	client := f.open()
	proj, err := client.FetchProject(context.Background(), "Someday")
	require.NoError(t, err)
	require.Empty(t, proj.Tasks)
}

func TestFetchProject_ExcludesTrashed(t *testing.T) {
	f := newFixture(t)
	projID := f.addProject("Cleanup", "", 0, 0)
	f.addTask(projID, "keep me", "", service.StatusOpen, 1)
	gone := f.addTask(projID, "trash me", "", service.StatusOpen, 2)
	f.trash(gone)

	client := f.open()
	proj, err := client.FetchProject(context.Background(), "Cleanup")
	require.NoError(t, err)
	require.Len(t, proj.Tasks, 1)
	require.Equal(t, "keep me", proj.Tasks[0].Title)
}

func TestFetchProject_TrashedProjectIsNotFound(t *testing.T) {
	f := newFixture(t)
	projID := f.addProject("Abandoned", "", 0, 0)
	f.trash(projID)

	client := f.open()
	_, err := client.FetchProject(context.Background(), "Abandoned")
	require.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestFetchProject_CarriesStatuses(t *testing.T) {
	f := newFixture(t)
	projID := f.addProject("Mixed", "", 0, 0)
	f.addTask(projID, "open", "", service.StatusOpen, 1)
	f.addTask(projID, "canceled", "", service.StatusCanceled, 2)
	f.addTask(projID, "completed", "", service.StatusCompleted, 3)

	client := f.open()
	proj, err := client.FetchProject(context.Background(), "Mixed")
	require.NoError(t, err)
	require.Len(t, proj.Tasks, 3)
	require.Equal(t, service.StatusOpen, proj.Tasks[0].Status)
	require.Equal(t, service.StatusCanceled, proj.Tasks[1].Status)
	require.Equal(t, service.StatusCompleted, proj.Tasks[2].Status)
}

func TestListProjects(t *testing.T) {
	f := newFixture(t)
	f.addProject("Beta", "", 0, 2)
	f.addProject("Alpha", "", 0, 1)
	gone := f.addProject("Trashed", "", 0, 3)
	f.trash(gone)

	client := f.open()
	titles, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha", "Beta"}, titles)
}

func TestOpen_MissingDatabase(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "absent.sqlite"))
	require.Error(t, err)
}

func TestNew_ConfiguredPath(t *testing.T) {
	f := newFixture(t)
	f.addProject("Configured", "", 0, 0)

	cfg := &config.Config{Database: f.path}
	client, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	titles, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Configured"}, titles)
}

func TestNew_MissingConfiguredPath(t *testing.T) {
	cfg := &config.Config{Database: filepath.Join(t.TempDir(), "absent.sqlite")}
	_, err := New(context.Background(), cfg)
	require.ErrorContains(t, err, "not found")
}

func TestDateCodec(t *testing.T) {
	d := service.Date{Year: 2026, Month: 12, Day: 31}
	got := decodeDate(EncodeDate(d))
	require.NotNil(t, got)
	require.Equal(t, d, *got)

	require.Nil(t, decodeDate(0))
}
