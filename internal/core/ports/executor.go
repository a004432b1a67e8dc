// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mkdo/internal/core/domain"
)

// Executor runs one code block for a declared language tag.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the code block against the given context and reports its
	// exit status. 0 means success.
	//
	// Failures to start a process or signals are reported as non-zero codes,
	// never as errors.
	Execute(ctx context.Context, code domain.Code, rc *domain.RunContext) int
}

// ExecutorRegistry resolves executors by language tag.
type ExecutorRegistry interface {
	// Lookup returns the executor registered for the language, if any.
	Lookup(language string) (Executor, bool)
}
