package domain

const (
	// DefaultFile is the document read when no file is configured.
	DefaultFile = "mkdo.md"

	// DefaultRootDepth is the heading depth that marks a root section.
	DefaultRootDepth = 1

	// DefaultRootPattern matches every root heading.
	DefaultRootPattern = "*"

	// DefaultTaskSeparator joins nested heading names.
	DefaultTaskSeparator = ":"
)

// ParseOptions controls how tasks are extracted from a document.
type ParseOptions struct {
	// RootDepth is the heading depth of root sections. Zero or less disables
	// root gating so every heading is in scope.
	RootDepth int
	// RootPattern is a glob matched against root heading text.
	RootPattern string
	// TaskSeparator joins the heading path into a task name.
	TaskSeparator string
}

// DefaultParseOptions returns the options used when nothing is configured.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		RootDepth:     DefaultRootDepth,
		RootPattern:   DefaultRootPattern,
		TaskSeparator: DefaultTaskSeparator,
	}
}

// WithDefaults fills empty string fields with their defaults.
// RootDepth is kept as is because zero is meaningful.
func (o ParseOptions) WithDefaults() ParseOptions {
	if o.RootPattern == "" {
		o.RootPattern = DefaultRootPattern
	}
	if o.TaskSeparator == "" {
		o.TaskSeparator = DefaultTaskSeparator
	}
	return o
}
