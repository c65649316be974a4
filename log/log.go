// Package log provides the structured logging facility for the snail CLI.
//
// All diagnostics go to standard error so program output on standard out is
// never polluted. The default logger is quiet (warn level) until raised via
// [Config], typically from the SNAIL_LOG environment variable or the user
// configuration file.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity of a log message.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelWarn

// ParseLevel parses a string representation of a log level.
// Unrecognized strings yield [DefaultLevel].
func ParseLevel(s string) Level {
	l := new(slog.Level)
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return *l
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat parses a string representation of a log format.
// Unrecognized strings yield [FormatText].
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "json") {
		return FormatJSON
	}

	return FormatText
}

// Logger provides a concurrency-safe simplified logging interface.
type Logger struct {
	*slog.Logger
	config
}

type config struct {
	w      io.Writer
	level  Level
	format Format
	color  bool
}

// Option applies a configuration option to config.
type Option func(config) config

// WithLevel returns an option that sets the minimum log level.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat returns an option that sets the log output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithColor returns an option that enables ANSI color in text output.
func WithColor(color bool) Option {
	return func(cfg config) config {
		cfg.color = color

		return cfg
	}
}

// Make creates a new [Logger] that writes to the specified writer.
//
// The default configuration is [FormatText] at [DefaultLevel] without color.
// Optional configuration is applied with [WithLevel], [WithFormat], and
// [WithColor].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := config{w: w, level: DefaultLevel, format: FormatText}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] that extends the receiver's configuration
// with the provided options.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := l.config
	if cfg.w == nil {
		cfg = config{w: os.Stderr, level: DefaultLevel, format: FormatText}
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Level returns the current minimum log level.
func (l Logger) Level() Level { return l.level }

func (cfg config) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.level}

	if cfg.format == FormatJSON {
		return slog.NewJSONHandler(cfg.w, opts)
	}

	return newPrettyHandler(cfg.w, cfg.color, opts)
}

// defaultLog is the package-level logger used by the free functions.
var defaultLog = Make(os.Stderr) //nolint:gochecknoglobals

// Config replaces the default logger configuration.
func Config(opts ...Option) {
	defaultLog = defaultLog.Wrap(opts...)
}

// DebugContext logs a message at Debug level using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.LogAttrs(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	DebugContext(context.Background(), msg, attrs...)
}

// InfoContext logs a message at Info level using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.LogAttrs(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	InfoContext(context.Background(), msg, attrs...)
}

// WarnContext logs a message at Warn level using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.LogAttrs(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	WarnContext(context.Background(), msg, attrs...)
}

// ErrorContext logs a message at Error level using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.LogAttrs(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	ErrorContext(context.Background(), msg, attrs...)
}
