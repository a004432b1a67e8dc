package shell

import (
	"context"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/mkdo/internal/core/domain"
)

const promptPrefix = "$ "

// Console runs the prompt lines of a terminal transcript.
//
// Each line starting with "$ " is run through sh with the forwarded arguments
// appended. The first line without the prompt ends the transcript.
type Console struct {
	run runFunc
}

// NewConsole creates a console executor that spawns real processes.
func NewConsole() *Console {
	return &Console{run: spawn}
}

// Execute implements ports.Executor.
func (c *Console) Execute(ctx context.Context, code domain.Code, rc *domain.RunContext) int {
	suffix := ""
	if len(rc.Args) > 0 {
		suffix = " " + shellquote.Join(rc.Args...)
	}

	for _, line := range Commands(code.Value) {
		rc.Info(promptPrefix + line)

		if status := c.run(ctx, rc, "sh", "-c", line+suffix); status != 0 {
			return status
		}
	}
	return 0
}

// Commands returns the commands of a console transcript in order.
//
// Only the first backslash-newline continuation is joined.
func Commands(value string) []string {
	value = strings.Replace(value, "\\\n", "", 1)

	var commands []string
	for line := range strings.Lines(value) {
		line = strings.TrimSuffix(line, "\n")
		cmd, ok := strings.CutPrefix(line, promptPrefix)
		if !ok {
			break
		}
		commands = append(commands, cmd)
	}
	return commands
}
