// Package app implements the application layer for mkdo.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/mkdo/internal/adapters/telemetry" //nolint:depguard // Tracing is configured per run
	"go.trai.ch/mkdo/internal/adapters/watcher"   //nolint:depguard // Debounce window default
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
	"go.trai.ch/mkdo/internal/engine/dispatcher"
	"go.trai.ch/mkdo/internal/engine/extractor"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	parser       ports.DocumentParser
	registry     ports.ExecutorRegistry
	manifest     ports.ManifestStore
	watcher      ports.Watcher
	logger       ports.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	debounce time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser ports.DocumentParser,
	registry ports.ExecutorRegistry,
	manifest ports.ManifestStore,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		parser:       parser,
		registry:     registry,
		manifest:     manifest,
		watcher:      w,
		logger:       log,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithIO replaces the standard streams handed to executors and built-in tasks.
// A nil argument keeps the current stream.
func (a *App) WithIO(stdin io.Reader, stdout, stderr io.Writer) *App {
	if stdin != nil {
		a.stdin = stdin
	}
	if stdout != nil {
		a.stdout = stdout
	}
	if stderr != nil {
		a.stderr = stderr
	}
	return a
}

// WithDebounce sets the window watch mode waits for events to settle.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// RunOptions holds the options given on the command line.
// Zero values mean the option was not given, except for RootDepth, which is
// nil when unset.
type RunOptions struct {
	File          string
	RootDepth     *int
	RootPattern   string
	TaskSeparator string
	// Cwd is the directory tasks run in and configuration is searched from.
	Cwd string

	Watch      bool
	WatchGlobs []string

	JSONLog bool
	Trace   bool
}

// session is the resolved state of one invocation.
type session struct {
	cwd   string
	file  string
	parse domain.ParseOptions
	trace bool
}

// Run resolves the options, loads the task document and runs the named task
// with args. It returns the exit code of the task.
//
// An error is returned only for failures of mkdo itself, always paired with
// exit code 1. A task that exits non-zero is not an error.
func (a *App) Run(ctx context.Context, taskName string, args []string, opts RunOptions) (int, error) {
	// 1. Resolve options against the configuration file
	s, err := a.resolve(opts)
	if err != nil {
		return 1, err
	}

	// 2. Validate the task name
	if taskName == "" {
		writeHelp(a.stdout)
		return 1, domain.ErrNoTaskSpecified
	}

	// 3. Initialize telemetry
	tracer, shutdown := a.setupTracer(s.trace)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	rc := a.runContext(s.cwd, args)

	// 4. Run once, or keep running on changes
	if opts.Watch {
		return a.watch(ctx, s, taskName, rc, tracer, opts.WatchGlobs)
	}
	return a.runTask(ctx, s, taskName, rc, tracer)
}

func (a *App) resolve(opts RunOptions) (*session, error) {
	cwd := opts.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &domain.Config{}
	}

	if opts.JSONLog || cfg.JSONLog {
		a.enableJSONLog()
	}

	file := firstNonEmpty(opts.File, cfg.File, domain.DefaultFile)
	if !filepath.IsAbs(file) {
		file = filepath.Join(cwd, file)
	}

	depth := domain.DefaultRootDepth
	switch {
	case opts.RootDepth != nil:
		depth = *opts.RootDepth
	case cfg.RootDepth != nil:
		depth = *cfg.RootDepth
	}

	return &session{
		cwd:  cwd,
		file: file,
		parse: domain.ParseOptions{
			RootDepth:     depth,
			RootPattern:   firstNonEmpty(opts.RootPattern, cfg.RootPattern),
			TaskSeparator: firstNonEmpty(opts.TaskSeparator, cfg.TaskSeparator),
		}.WithDefaults(),
		trace: opts.Trace || cfg.Trace,
	}, nil
}

// runTask loads the document and runs one task, falling back to the
// built-in tasks when the document does not define it.
func (a *App) runTask(
	ctx context.Context,
	s *session,
	name string,
	rc *domain.RunContext,
	tracer ports.Tracer,
) (int, error) {
	tasks, err := a.loadTasks(s)
	if err != nil {
		return 1, err
	}

	if task, ok := tasks.Get(name); ok {
		return dispatcher.New(tracer).Run(ctx, task, a.registry, rc), nil
	}

	if builtin, ok := a.builtins()[name]; ok {
		return builtin(ctx, tasks, rc)
	}

	return 1, zerr.With(domain.ErrTaskNotFound, "task", name)
}

func (a *App) loadTasks(s *session) (domain.TaskMap, error) {
	source, err := os.ReadFile(s.file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "file", s.file)
	}

	nodes, err := a.parser.Parse(source)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "file", s.file)
	}

	tasks, err := extractor.Extract(nodes, s.parse)
	if err != nil {
		return nil, zerr.With(err, "file", s.file)
	}
	return tasks, nil
}

func (a *App) runContext(cwd string, args []string) *domain.RunContext {
	return &domain.RunContext{
		Dir:    cwd,
		Args:   args,
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
		Log:    a.logger.Info,
		Error:  a.logger.Warn,
	}
}

// setupTracer returns the tracer for one invocation and a function that
// flushes it.
func (a *App) setupTracer(enabled bool) (ports.Tracer, func(context.Context) error) {
	if !enabled {
		return telemetry.NewNoOpTracer(), func(context.Context) error { return nil }
	}
	shutdown := telemetry.Setup(a.logger)
	return telemetry.NewOTelTracer("mkdo"), shutdown
}

func (a *App) enableJSONLog() {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(true)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
