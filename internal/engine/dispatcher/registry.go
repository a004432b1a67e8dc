package dispatcher

import (
	"maps"
	"slices"

	"go.trai.ch/mkdo/internal/core/ports"
)

var _ ports.ExecutorRegistry = (*Registry)(nil)

// Registry maps language tags to executors.
// New tags are added by registering; the dispatch loop never changes.
type Registry struct {
	executors map[string]ports.Executor
}

// NewRegistry creates a registry holding the given executors.
func NewRegistry(executors map[string]ports.Executor) *Registry {
	r := &Registry{executors: make(map[string]ports.Executor, len(executors))}
	maps.Copy(r.executors, executors)
	return r
}

// Register adds or replaces the executor for a language tag.
func (r *Registry) Register(language string, executor ports.Executor) {
	r.executors[language] = executor
}

// Lookup returns the executor for a language tag.
// An empty tag never matches.
func (r *Registry) Lookup(language string) (ports.Executor, bool) {
	if language == "" {
		return nil, false
	}
	e, ok := r.executors[language]
	return e, ok
}

// Languages returns the registered tags in lexical order.
func (r *Registry) Languages() []string {
	return slices.Sorted(maps.Keys(r.executors))
}
