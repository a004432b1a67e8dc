package domain

import (
	"slices"
	"strings"
)

// Code is a single fenced code block belonging to a task.
type Code struct {
	// Language is the info-string tag of the block (e.g. "bash", "console").
	// An empty Language means the block had no tag.
	Language string
	// Value is the raw text of the block.
	Value string
}

// Task represents a runnable unit extracted from a document heading.
type Task struct {
	// Name is the heading path below the root, joined by the task separator.
	Name string
	// Description is the plain text of the first non-heading, non-code node
	// under the heading. It is nil when no such node precedes the next heading.
	Description *string
	// Codes holds the code blocks under the heading in document order.
	Codes []Code
}

// DescriptionText returns the task description, or an empty string if unset.
func (t *Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// TaskMap maps task names to tasks. Every task in a TaskMap has at least one code.
type TaskMap map[string]*Task

// Get returns the task with the given name.
func (m TaskMap) Get(name string) (*Task, bool) {
	t, ok := m[name]
	return t, ok
}

// Names returns the task names in lexical order.
func (m TaskMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sorted returns the tasks ordered by name.
func (m TaskMap) Sorted() []*Task {
	tasks := make([]*Task, 0, len(m))
	for _, t := range m {
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *Task) int {
		return strings.Compare(a.Name, b.Name)
	})
	return tasks
}
