package shell

import (
	"context"

	"go.trai.ch/mkdo/internal/core/domain"
)

// Bash runs a code block as one bash script.
//
// Forwarded arguments become the script's positional parameters.
type Bash struct {
	run runFunc
}

// NewBash creates a bash executor that spawns real processes.
func NewBash() *Bash {
	return &Bash{run: spawn}
}

// Execute implements ports.Executor.
func (b *Bash) Execute(ctx context.Context, code domain.Code, rc *domain.RunContext) int {
	rc.Info("run bash script")

	args := append([]string{"-c", code.Value, "--"}, rc.Args...)
	return b.run(ctx, rc, "bash", args...)
}
