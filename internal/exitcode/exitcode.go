// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, project not found).
	UserError = 1

	// ConfigError indicates an unreadable or invalid config file.
	ConfigError = 2

	// BackendError indicates the Things database could not be opened or queried.
	BackendError = 3
)
