package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mkdo/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("run bash script")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("build failed in 2ms")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        errors.New("permission denied"),
			goldenName: "error_simple",
		},
		{
			name: "chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("open mkdo.md: no such file or directory"), "failed to read task document"),
				"file", "mkdo.md",
			),
			goldenName: "error_chain_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.New("unknown task"), "task", "deploy"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "unknown task")
	assert.Contains(t, out, "deploy")
	assert.NotContains(t, out, "[mkdo]")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to pretty")
	assert.Equal(t, "[mkdo] back to pretty\n", buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(3)
		go func() { defer wg.Done(); lg.Info("info") }()
		go func() { defer wg.Done(); lg.Warn("warn") }()
		go func() { defer wg.Done(); lg.SetJSON(false) }()
	}
	wg.Wait()
}

func TestConsoleHandler(t *testing.T) {
	tests := []struct {
		name  string
		build func(h slog.Handler) slog.Handler
		level slog.Level
		want  string
	}{
		{
			name:  "info",
			build: func(h slog.Handler) slog.Handler { return h },
			level: slog.LevelInfo,
			want:  "[mkdo] message\n",
		},
		{
			name:  "error icon",
			build: func(h slog.Handler) slog.Handler { return h },
			level: slog.LevelError,
			want:  "[mkdo] ✗ message\n",
		},
		{
			name:  "debug filtered",
			build: func(h slog.Handler) slog.Handler { return h },
			level: slog.LevelDebug,
			want:  "",
		},
		{
			name: "attrs",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("task", "build")})
			},
			level: slog.LevelInfo,
			want:  "[mkdo] message task=build\n",
		},
		{
			name: "group attribute",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.Group("g", slog.String("k", "v"), slog.Int("n", 1))})
			},
			level: slog.LevelInfo,
			want:  "[mkdo] message g.k=v g.n=1\n",
		},
		{
			name:  "warn icon",
			build: func(h slog.Handler) slog.Handler { return h },
			level: slog.LevelWarn,
			want:  "[mkdo] ! message\n",
		},
		{
			name: "nested groups prefix later attrs",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("top", "1")}).
					WithGroup("run").
					WithGroup("code").
					WithAttrs([]slog.Attr{slog.Int("index", 0)})
			},
			level: slog.LevelInfo,
			want:  "[mkdo] message top=1 run.code.index=0\n",
		},
		{
			name: "unnamed group is inlined and empty attrs skipped",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{{}, slog.Group("", slog.String("k", "v"))})
			},
			level: slog.LevelInfo,
			want:  "[mkdo] message k=v\n",
		},
		{
			name:  "empty group is ignored",
			build: func(h slog.Handler) slog.Handler { return h.WithGroup("") },
			level: slog.LevelInfo,
			want:  "[mkdo] message\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			h := logger.NewConsoleHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
			slog.New(tt.build(h)).Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
