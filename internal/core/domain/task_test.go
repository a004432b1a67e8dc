package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mkdo/internal/core/domain"
)

func TestTaskMap_NamesAndSorted(t *testing.T) {
	m := domain.TaskMap{
		"format:check": {Name: "format:check"},
		"build":        {Name: "build"},
		":Child":       {Name: ":Child"},
	}

	assert.Equal(t, []string{":Child", "build", "format:check"}, m.Names())

	sorted := m.Sorted()
	assert.Len(t, sorted, 3)
	assert.Equal(t, ":Child", sorted[0].Name)
	assert.Equal(t, "build", sorted[1].Name)
	assert.Equal(t, "format:check", sorted[2].Name)
}

func TestTaskMap_Get(t *testing.T) {
	m := domain.TaskMap{"build": {Name: "build"}}

	task, ok := m.Get("build")
	assert.True(t, ok)
	assert.Equal(t, "build", task.Name)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestTaskMap_Empty(t *testing.T) {
	var m domain.TaskMap
	assert.Empty(t, m.Names())
	assert.Empty(t, m.Sorted())
}

func TestTask_DescriptionText(t *testing.T) {
	desc := "Compiles the project."
	assert.Equal(t, desc, (&domain.Task{Description: &desc}).DescriptionText())
	assert.Empty(t, (&domain.Task{}).DescriptionText())
}

func TestNodeConstructors(t *testing.T) {
	assert.Equal(t, domain.Node{Kind: domain.NodeHeading, Depth: 2, Text: "build"}, domain.Heading(2, "build"))
	assert.Equal(t, domain.Node{Kind: domain.NodeCode, Language: "bash", Value: "make"}, domain.CodeBlock("bash", "make"))
	assert.Equal(t, domain.Node{Kind: domain.NodeOther, Text: "text"}, domain.Content("text"))

	assert.Equal(t, "heading", domain.NodeHeading.String())
	assert.Equal(t, "code", domain.NodeCode.String())
	assert.Equal(t, "other", domain.NodeOther.String())
}

func TestParseOptions_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ParseOptions
		want domain.ParseOptions
	}{
		{
			name: "empty strings get defaults",
			in:   domain.ParseOptions{RootDepth: 2},
			want: domain.ParseOptions{RootDepth: 2, RootPattern: "*", TaskSeparator: ":"},
		},
		{
			name: "zero depth is kept",
			in:   domain.ParseOptions{},
			want: domain.ParseOptions{RootDepth: 0, RootPattern: "*", TaskSeparator: ":"},
		},
		{
			name: "set values are kept",
			in:   domain.ParseOptions{RootDepth: 3, RootPattern: "tasks", TaskSeparator: "/"},
			want: domain.ParseOptions{RootDepth: 3, RootPattern: "tasks", TaskSeparator: "/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}

	assert.Equal(t, domain.DefaultParseOptions(), domain.ParseOptions{RootDepth: 1}.WithDefaults())
}

func TestRunContext_Callbacks(t *testing.T) {
	var logged, failed []string
	rc := &domain.RunContext{
		Log:   func(msg string) { logged = append(logged, msg) },
		Error: func(msg string) { failed = append(failed, msg) },
	}

	rc.Info("started")
	rc.Fail("broken")
	assert.Equal(t, []string{"started"}, logged)
	assert.Equal(t, []string{"broken"}, failed)

	var empty domain.RunContext
	assert.NotPanics(t, func() {
		empty.Info("ignored")
		empty.Fail("ignored")
	})
}
