// Package commands implements the command line interface for mkdo.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/mkdo/internal/app"
	"go.trai.ch/mkdo/internal/build"
	"go.trai.ch/mkdo/internal/core/domain"
)

// CLI represents the command line interface for mkdo.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, taskName string, args []string, opts app.RunOptions) (int, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mkdo [flags] TASK_NAME [ARGS...]",
		Short:         "Markdown task runner",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(versionTemplate())
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		app.WriteHelp(cmd.OutOrStdout())
	})

	flags := rootCmd.Flags()
	// Everything after the task name belongs to the task.
	flags.SetInterspersed(false)
	flags.StringP("file", "f", domain.DefaultFile, "Markdown file path containing tasks")
	flags.IntP("root-depth", "d", domain.DefaultRootDepth, "Heading depth to determine task root")
	flags.StringP("root-pattern", "p", domain.DefaultRootPattern, "Heading contents glob to determine task root")
	flags.StringP("task-separator", "s", domain.DefaultTaskSeparator, "Separator string for nested tasks")
	flags.StringP("cwd", "w", "", "Working directory on task execution")
	flags.Bool("watch", false, "Run the task again whenever the file changes")
	flags.StringArray("watch-glob", nil, "Also watch files matching the glob (repeatable)")
	flags.Bool("json-log", false, "Write log lines as JSON")
	flags.Bool("trace", false, "Report task and code block timings")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.RunE = c.runTask

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the last task run by Execute.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error writers for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runTask(cmd *cobra.Command, args []string) error {
	var name string
	var rest []string
	if len(args) > 0 {
		name, rest = args[0], args[1:]
	}

	opts, err := runOptions(cmd.Flags())
	if err != nil {
		return err
	}

	code, err := c.app.Run(cmd.Context(), name, rest, opts)
	c.exitCode = code
	return err
}

// runOptions collects the flags given on the command line. Flags left at
// their defaults stay unset so the configuration file can supply them.
func runOptions(flags *pflag.FlagSet) (app.RunOptions, error) {
	var opts app.RunOptions

	for name, dst := range map[string]*string{
		"file":           &opts.File,
		"root-pattern":   &opts.RootPattern,
		"task-separator": &opts.TaskSeparator,
		"cwd":            &opts.Cwd,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return opts, err
		}
		*dst = v
	}

	if flags.Changed("root-depth") {
		depth, err := flags.GetInt("root-depth")
		if err != nil {
			return opts, err
		}
		opts.RootDepth = &depth
	}

	var err error
	if opts.Watch, err = flags.GetBool("watch"); err != nil {
		return opts, err
	}
	if opts.WatchGlobs, err = flags.GetStringArray("watch-glob"); err != nil {
		return opts, err
	}
	if opts.JSONLog, err = flags.GetBool("json-log"); err != nil {
		return opts, err
	}
	if opts.Trace, err = flags.GetBool("trace"); err != nil {
		return opts, err
	}

	return opts, nil
}
