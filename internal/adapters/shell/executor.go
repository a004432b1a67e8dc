// Package shell provides the process-spawning executors for code blocks.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"syscall"

	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
)

// Language tags handled by the built-in executors.
const (
	LangBash    = "bash"
	LangConsole = "console"
)

// exitNotStarted is reported when a process could not be spawned at all.
const exitNotStarted = 127

// Executors maps language tags to executors.
type Executors map[string]ports.Executor

// Builtins returns the executors shipped with mkdo.
func Builtins() Executors {
	return Executors{
		LangBash:    NewBash(),
		LangConsole: NewConsole(),
	}
}

// runFunc spawns a process and waits for its exit status.
type runFunc func(ctx context.Context, rc *domain.RunContext, name string, args ...string) int

func spawn(ctx context.Context, rc *domain.RunContext, name string, args ...string) int {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user provided command
	cmd.Dir = rc.Dir
	cmd.Stdin = rc.Stdin
	cmd.Stdout = rc.Stdout
	cmd.Stderr = rc.Stderr

	return exitCode(cmd.Run())
}

// exitCode translates the result of a process run into a shell-style status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return exitNotStarted
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}

	if code := exitErr.ExitCode(); code > 0 {
		return code
	}
	return 1
}
