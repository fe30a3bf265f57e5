// Package service defines the backend-agnostic interface for reading projects.
package service

import "fmt"

// Status is the tri-state completion status of a task.
type Status int

// Status values match the Things database encoding.
const (
	StatusOpen      Status = 0
	StatusCanceled  Status = 2
	StatusCompleted Status = 3
)

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Task represents a single to-do within a project.
type Task struct {
	ID     string
	Title  string
	Tags   []string
	Notes  string
	Status Status
}

// Project is a fully materialized snapshot of a Things project.
// Tasks are in source order; tag order is preserved for display.
type Project struct {
	ID    string
	Title string
	Tags  []string
	Due   *Date
	Notes string
	Tasks []Task
}
