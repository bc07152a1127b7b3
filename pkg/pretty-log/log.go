package prettylog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	reset = "\033[0m"

	cyan         = 36
	lightGray    = 37
	darkGray     = 90
	lightRed     = 91
	lightYellow  = 93
	lightBlue    = 94
	lightMagenta = 95
	white        = 97
)

func Colorizer(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func noColor(_ int, v string) string {
	return v
}

// Handler writes one line per record:
//
//	process:area LEVEL: message key=value ...
//
// The process and area attributes are pulled out of the attribute list and
// into the prefix.
type Handler struct {
	level    slog.Leveler
	attrs    []slog.Attr
	group    string
	m        *sync.Mutex
	writer   io.Writer
	colorize bool
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

func (h *Handler) clone() *Handler {
	c := *h
	c.attrs = append([]slog.Attr{}, h.attrs...)
	return &c
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		c.attrs = append(c.attrs, c.qualify(a))
	}
	return c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	if c.group != "" {
		c.group += "."
	}
	c.group += name
	return c
}

func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.group == "" || a.Key == "process" || a.Key == "area" {
		return a
	}
	a.Key = h.group + "." + a.Key
	return a
}

func levelColor(level slog.Level) int {
	switch {
	case level <= slog.LevelDebug:
		return lightGray
	case level <= slog.LevelInfo:
		return cyan
	case level < slog.LevelWarn:
		return lightBlue
	case level < slog.LevelError:
		return lightYellow
	case level <= slog.LevelError+1:
		return lightRed
	default:
		return lightMagenta
	}
}

func writeAttr(out *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			writeAttr(out, prefix, g)
		}
		return
	}

	out.WriteString(" ")
	out.WriteString(prefix)
	out.WriteString(a.Key)
	out.WriteString("=")
	out.WriteString(a.Value.String())
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	colorize := noColor
	if h.colorize {
		colorize = Colorizer
	}

	attrs := append([]slog.Attr{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))
		return true
	})

	process, area := "", ""
	rest := attrs[:0]
	for _, a := range attrs {
		switch a.Key {
		case "process":
			process = a.Value.String()
		case "area":
			area = a.Value.String()
		default:
			rest = append(rest, a)
		}
	}

	out := strings.Builder{}
	if process != "" || area != "" {
		out.WriteString(colorize(darkGray, process+":"+area))
		out.WriteString(" ")
	}
	out.WriteString(colorize(levelColor(r.Level), r.Level.String()+":"))
	out.WriteString(" ")
	out.WriteString(colorize(white, r.Message))

	var kv strings.Builder
	for _, a := range rest {
		writeAttr(&kv, "", a)
	}
	if kv.Len() > 0 {
		out.WriteString(colorize(darkGray, kv.String()))
	}
	out.WriteString("\n")

	h.m.Lock()
	defer h.m.Unlock()
	_, err := io.WriteString(h.writer, out.String())
	return err
}

func New(handlerOptions *slog.HandlerOptions, options ...Option) *Handler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	handler := &Handler{
		level:  handlerOptions.Level,
		m:      &sync.Mutex{},
		writer: os.Stdout,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

func NewHandler(opts *slog.HandlerOptions, options ...Option) *Handler {
	return New(opts, append([]Option{WithColor()}, options...)...)
}

type Option func(h *Handler)

func WithDestinationWriter(writer io.Writer) Option {
	return func(h *Handler) {
		h.writer = writer
	}
}

func WithColor() Option {
	return func(h *Handler) {
		h.colorize = true
	}
}

func WithoutColor() Option {
	return func(h *Handler) {
		h.colorize = false
	}
}

func SetProgramLevelPrettyLogger(process string, level slog.Level) *slog.Logger {
	prettyHandler := NewHandler(&slog.HandlerOptions{
		Level: level,
	}, WithDestinationWriter(os.Stderr))
	logger := slog.New(prettyHandler).With("process", process)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel accepts debug, info, warn and error. Anything else is info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
