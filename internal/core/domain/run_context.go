package domain

import "io"

// RunContext carries the process-wide state an executor needs.
// It is shared read-only by every code block of one task.
type RunContext struct {
	// Dir is the working directory for spawned processes.
	Dir string
	// Args are trailing command line arguments forwarded to executors.
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Log reports informational messages.
	Log func(msg string)
	// Error reports error messages.
	Error func(msg string)
}

// Info calls Log if it is set.
func (rc *RunContext) Info(msg string) {
	if rc.Log != nil {
		rc.Log(msg)
	}
}

// Fail calls Error if it is set.
func (rc *RunContext) Fail(msg string) {
	if rc.Error != nil {
		rc.Error(msg)
	}
}
