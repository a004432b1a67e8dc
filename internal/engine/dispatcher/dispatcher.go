// Package dispatcher runs the code blocks of a task against language executors.
package dispatcher

import (
	"context"
	"fmt"

	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher runs tasks one code block at a time.
type Dispatcher struct {
	tracer ports.Tracer
}

// New creates a Dispatcher that reports each run through tracer.
func New(tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{tracer: tracer}
}

// Run executes the codes of task in order and returns the task's exit status.
//
// Codes whose language has no executor in registry are skipped. The first
// non-zero status stops the run and is returned; otherwise Run returns 0.
func (d *Dispatcher) Run(
	ctx context.Context,
	task *domain.Task,
	registry ports.ExecutorRegistry,
	rc *domain.RunContext,
) int {
	ctx, span := d.tracer.Start(ctx, task.Name)
	defer span.End()

	exitCode := 0
	for i, code := range task.Codes {
		executor, ok := registry.Lookup(code.Language)
		if !ok {
			continue
		}

		exitCode = d.runCode(ctx, executor, code, i, rc)
		if exitCode != 0 {
			break
		}
	}

	span.SetAttribute("exit_code", exitCode)
	if exitCode != 0 {
		span.RecordError(zerr.With(zerr.New("task failed"), "exit_code", exitCode))
	}
	return exitCode
}

func (d *Dispatcher) runCode(
	ctx context.Context,
	executor ports.Executor,
	code domain.Code,
	index int,
	rc *domain.RunContext,
) int {
	ctx, span := d.tracer.Start(ctx, fmt.Sprintf("code[%d] %s", index, code.Language))
	defer span.End()

	span.SetAttribute("language", code.Language)
	exitCode := executor.Execute(ctx, code, rc)
	span.SetAttribute("exit_code", exitCode)
	if exitCode != 0 {
		span.RecordError(zerr.With(zerr.New("code block failed"), "exit_code", exitCode))
	}
	return exitCode
}
