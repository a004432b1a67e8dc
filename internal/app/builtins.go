package app

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/ui/output"
	"go.trai.ch/mkdo/internal/ui/style"
	"go.trai.ch/zerr"
)

const (
	defaultManifestFile = "package.json"
	defaultCommand      = "mkdo"
)

// helpText is the usage printed by the help task and --help.
const helpText = `mkdo - Markdown task runner

$ mkdo TASK_NAME [...ARGS]

Options:
    -f FILE,    --file           FILE     Markdown file path containing tasks
    -d DEPTH,   --root-depth     DEPTH    heading depth to determine task root
    -p PATTERN, --root-pattern   PATTERN  heading contents glob to determine task root
    -s SEP,     --task-separator SEP      separator string for nested tasks
    -w DIR,     --cwd            DIR      working directory on task execution
    --watch                               re-runs the task when the file changes
    --watch-glob GLOB                     also re-runs on changes to files matching GLOB
    --json-log                            writes log lines as JSON
    --trace                               reports how long the task and its code blocks take
    --help                                shows this help
    --version                             shows mkdo version

Default Tasks:

    help                                  shows this help
    tasks                                 shows tasks (but excludes default tasks)
    sync-scripts                          adds tasks to package.json's 'scripts' field

Examples:

    Run task 'build' defined in 'mkdo.md':

        $ mkdo build

    Run task 'format:check' defined in section '## tasks' of 'readme.md':

        $ mkdo -f readme.md -d 2 -p tasks format:check
`

// builtinTask is a task mkdo provides when the document does not define one
// with the same name.
type builtinTask func(ctx context.Context, tasks domain.TaskMap, rc *domain.RunContext) (int, error)

func (a *App) builtins() map[string]builtinTask {
	return map[string]builtinTask{
		"help":         a.help,
		"tasks":        a.listTasks,
		"sync-scripts": a.syncScripts,
	}
}

// WriteHelp writes the usage text to w.
func WriteHelp(w io.Writer) {
	writeHelp(w)
}

func writeHelp(w io.Writer) {
	_, _ = io.WriteString(w, helpText)
}

func (a *App) help(_ context.Context, _ domain.TaskMap, _ *domain.RunContext) (int, error) {
	writeHelp(a.stdout)
	return 0, nil
}

func (a *App) listTasks(_ context.Context, tasks domain.TaskMap, _ *domain.RunContext) (int, error) {
	writeTasks(a.stdout, tasks)
	return 0, nil
}

// writeTasks lists tasks by name with their descriptions aligned.
func writeTasks(w io.Writer, tasks domain.TaskMap) {
	r := output.Renderer(w)
	nameStyle := r.NewStyle().Inherit(style.TaskName)
	descStyle := r.NewStyle().Inherit(style.Description)

	sorted := tasks.Sorted()
	width := 0
	for _, t := range sorted {
		width = max(width, lipgloss.Width(t.Name))
	}

	var sb strings.Builder
	sb.WriteString("Tasks:\n\n")
	for _, t := range sorted {
		sb.WriteString("    ")
		sb.WriteString(nameStyle.Render(t.Name))
		// Descriptions are listed on one line.
		if desc := strings.ReplaceAll(t.DescriptionText(), "\n", " "); desc != "" {
			sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(t.Name)+2))
			sb.WriteString(descStyle.Render(desc))
		}
		sb.WriteByte('\n')
	}
	_, _ = io.WriteString(w, sb.String())
}

// syncScripts aliases every task in the scripts of package.json.
//
// Flags are read from the task arguments: --package-json-file, --mkdo and
// --check. With --check nothing is written and an out of date manifest fails.
func (a *App) syncScripts(_ context.Context, tasks domain.TaskMap, rc *domain.RunContext) (int, error) {
	flags := pflag.NewFlagSet("sync-scripts", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	file := flags.String("package-json-file", defaultManifestFile, "package.json to update")
	command := flags.String("mkdo", defaultCommand, "command the scripts invoke")
	check := flags.Bool("check", false, "fail instead of writing when package.json is out of date")

	if err := flags.Parse(rc.Args); err != nil {
		return 1, zerr.Wrap(err, "invalid sync-scripts arguments")
	}

	path := *file
	if path == "" {
		path = defaultManifestFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(rc.Dir, path)
	}
	if *command == "" {
		*command = defaultCommand
	}

	changed, err := a.manifest.SyncScripts(path, *command, tasks.Names(), *check)
	if err != nil {
		return 1, err
	}
	if !changed {
		return 0, nil
	}

	if *check {
		return 1, zerr.With(domain.ErrManifestOutOfSync, "file", path)
	}
	rc.Info("updates package.json")
	return 0, nil
}
