// Package extractor turns the top-level nodes of a task document into tasks.
package extractor

import (
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extract walks nodes once and returns the tasks found under matching roots.
//
// Headings deeper than opts.RootDepth below a root heading whose text matches
// opts.RootPattern become tasks. Code blocks under such a heading are the
// task's codes; the first other node is its description. Tasks without codes
// are dropped. Two tasks with the same name fail with domain.ErrDuplicateTask.
func Extract(nodes []domain.Node, opts domain.ParseOptions) (domain.TaskMap, error) {
	opts = opts.WithDefaults()

	// No separators: heading text is not a path, so "*" matches anything.
	rootGlob, err := glob.Compile(opts.RootPattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidRootPattern.Error()), "pattern", opts.RootPattern)
	}

	b := builder{
		opts:        opts,
		rootGlob:    rootGlob,
		isUnderRoot: opts.RootDepth <= 0,
	}
	for _, node := range nodes {
		b.visit(node)
	}
	b.finalize()

	return b.taskMap()
}

// builder holds the state of one extraction pass.
type builder struct {
	opts     domain.ParseOptions
	rootGlob glob.Glob

	// nameStack has one entry per heading level of the current heading path.
	nameStack   []string
	isUnderRoot bool

	current *domain.Task
	tasks   []*domain.Task
}

func (b *builder) visit(node domain.Node) {
	if node.Kind == domain.NodeHeading {
		b.heading(node)
		return
	}

	if b.current == nil {
		return
	}

	switch node.Kind {
	case domain.NodeCode:
		b.current.Codes = append(b.current.Codes, domain.Code{
			Language: node.Language,
			Value:    node.Value,
		})
	default:
		if b.current.Description == nil {
			desc := node.Text
			b.current.Description = &desc
		}
	}
}

func (b *builder) heading(node domain.Node) {
	// Every heading ends the task being built, siblings included.
	b.finalize()

	for len(b.nameStack) >= node.Depth {
		b.nameStack = b.nameStack[:len(b.nameStack)-1]
	}
	// Skipped levels keep an empty segment so names stay positional.
	for len(b.nameStack) < node.Depth-1 {
		b.nameStack = append(b.nameStack, "")
	}
	b.nameStack = append(b.nameStack, node.Text)

	depth := len(b.nameStack)
	if depth == b.opts.RootDepth {
		b.isUnderRoot = b.rootGlob.Match(node.Text)
	}

	if b.isUnderRoot && depth > b.opts.RootDepth {
		b.current = &domain.Task{
			Name: strings.Join(b.nameStack[b.nameStart():], b.opts.TaskSeparator),
		}
	}
}

// nameStart is the first heading level that is part of a task name. A
// negative root depth keeps only that many trailing levels.
func (b *builder) nameStart() int {
	if b.opts.RootDepth >= 0 {
		return b.opts.RootDepth
	}
	return max(len(b.nameStack)+b.opts.RootDepth, 0)
}

func (b *builder) finalize() {
	if b.current == nil {
		return
	}
	b.tasks = append(b.tasks, b.current)
	b.current = nil
}

func (b *builder) taskMap() (domain.TaskMap, error) {
	taskMap := make(domain.TaskMap, len(b.tasks))
	for _, task := range b.tasks {
		if len(task.Codes) == 0 {
			continue
		}
		if _, exists := taskMap[task.Name]; exists {
			return nil, zerr.With(domain.ErrDuplicateTask, "task", task.Name)
		}
		taskMap[task.Name] = task
	}
	return taskMap, nil
}
