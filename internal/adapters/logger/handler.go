package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/mkdo/internal/ui/output"
	"go.trai.ch/mkdo/internal/ui/style"
)

// levelStyle is the icon and color a record level is rendered with.
type levelStyle struct {
	icon  string
	color termenv.Color
}

var (
	infoStyle = levelStyle{color: termenv.RGBColor(string(style.Slate))}
	warnStyle = levelStyle{icon: style.Warning, color: termenv.RGBColor(string(style.Yellow))}
	errStyle  = levelStyle{icon: style.Cross, color: termenv.RGBColor(string(style.Red))}
)

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return errStyle
	case level >= slog.LevelWarn:
		return warnStyle
	default:
		return infoStyle
	}
}

// ConsoleHandler is a slog.Handler for terminals. Each record is one line
// behind the mkdo marker: an optional level icon, the message, then key=value
// pairs. Colors follow the terminal profile of the writer.
type ConsoleHandler struct {
	out   *termenv.Output
	level slog.Leveler

	// fixed holds the attributes added with WithAttrs, already rendered.
	fixed string
	// keyPrefix is the dotted path of the open groups, ending in ".".
	keyPrefix string
}

// NewConsoleHandler returns a ConsoleHandler writing to w, or to stderr when
// w is nil. Records below opts.Level are dropped, info by default.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &ConsoleHandler{out: output.New(w), level: level}
}

// Enabled implements slog.Handler.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler passes records by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var line strings.Builder
	if ls.icon != "" {
		line.WriteString(ls.icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)
	line.WriteString(h.fixed)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&line, h.keyPrefix, a)
		return true
	})

	marker := h.out.String(style.Prefix).Foreground(termenv.RGBColor(string(style.Iris)))
	body := h.out.String(line.String()).Foreground(ls.color)
	_, err := h.out.WriteString(marker.String() + " " + body.String() + "\n")
	return err
}

// WithAttrs implements slog.Handler.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.fixed)
	for _, a := range attrs {
		writeAttr(&sb, h.keyPrefix, a)
	}
	next := *h
	next.fixed = sb.String()
	return &next
}

// WithGroup implements slog.Handler. Nested groups join with ".".
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.keyPrefix = h.keyPrefix + name + "."
	return &next
}

// writeAttr appends " key=value" to sb, flattening groups into dotted keys.
// Empty attributes are skipped and groups without a key are inlined.
func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			writeAttr(sb, prefix, member)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
