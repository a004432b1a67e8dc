package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTask is returned when extraction would produce two tasks with the same name.
	ErrDuplicateTask = zerr.New("duplicated task is defined")

	// ErrTaskNotFound is returned when the requested task is neither defined nor built in.
	ErrTaskNotFound = zerr.New("unknown task")

	// ErrNoTaskSpecified is returned when no task name is given on the command line.
	ErrNoTaskSpecified = zerr.New("no task")

	// ErrInvalidRootPattern is returned when the root pattern is not a valid glob.
	ErrInvalidRootPattern = zerr.New("invalid root pattern")

	// ErrDocumentReadFailed is returned when the task document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read task document")

	// ErrDocumentParseFailed is returned when the task document cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse task document")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrManifestReadFailed is returned when package.json cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package.json")

	// ErrManifestInvalid is returned when package.json is not valid JSON.
	ErrManifestInvalid = zerr.New("package.json is not valid JSON")

	// ErrManifestWriteFailed is returned when package.json cannot be updated.
	ErrManifestWriteFailed = zerr.New("failed to write package.json")

	// ErrManifestOutOfSync is returned by a sync check when package.json needs an update.
	ErrManifestOutOfSync = zerr.New("needs to update package.json")

	// ErrWatchFailed is returned when the task document cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch task document")
)
