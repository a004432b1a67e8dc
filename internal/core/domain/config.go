package domain

// Config holds values read from an mkdo configuration file.
// Unset fields are zero values, except RootDepth which is nil when absent.
type Config struct {
	// Path is the file the configuration was read from. Empty if none was found.
	Path string

	File          string
	RootDepth     *int
	RootPattern   string
	TaskSeparator string
	JSONLog       bool
	Trace         bool
}
