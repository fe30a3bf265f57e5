// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"things2md/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu       sync.RWMutex
	projects []service.Project

	// Error injection for testing
	FetchProjectErr error
	ListProjectsErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddProject adds a project snapshot to the fake store.
func (f *FakeService) AddProject(p service.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, p)
}

// AddTask appends a task to a previously added project.
func (f *FakeService) AddTask(projectTitle string, t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.projects {
		if f.projects[i].Title == projectTitle {
			f.projects[i].Tasks = append(f.projects[i].Tasks, t)
			return
		}
	}
}

// FetchProject implements service.Service.
// Matching is exact, like the SQLite backend.
func (f *FakeService) FetchProject(ctx context.Context, name string) (service.Project, error) {
	if f.FetchProjectErr != nil {
		return service.Project{}, f.FetchProjectErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, p := range f.projects {
		if p.Title == name {
			// Copy the task slice so callers can filter without
			// mutating the stored snapshot.
			cp := p
			cp.Tasks = make([]service.Task, len(p.Tasks))
			copy(cp.Tasks, p.Tasks)
			return cp, nil
		}
	}
	return service.Project{}, service.ErrProjectNotFound
}

// ListProjects implements service.Service.
func (f *FakeService) ListProjects(ctx context.Context) ([]string, error) {
	if f.ListProjectsErr != nil {
		return nil, f.ListProjectsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	titles := make([]string, 0, len(f.projects))
	for _, p := range f.projects {
		titles = append(titles, p.Title)
	}
	return titles, nil
}
