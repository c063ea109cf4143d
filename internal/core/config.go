package core

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/toejough/throws/internal/format"
)

// Config holds the presentation and logging settings of an evaluation.
type Config struct {
	// RootDir is stripped from stack-trace paths. Empty means the working directory at
	// the time the message is built.
	RootDir string
	// NoStackTrace leaves the stack trace out of failure messages.
	NoStackTrace bool
	// IgnoredFrames lists function-name prefixes left out of stack traces.
	IgnoredFrames []string
	// Color forces colour on or off. Nil lets fatih/color decide.
	Color *bool
	// Logger receives one debug entry per evaluation.
	Logger logrus.FieldLogger
}

// Option adjusts a Config.
type Option func(*Config)

// WithRootDir sets the directory stack-trace paths are made relative to.
func WithRootDir(dir string) Option {
	return func(c *Config) { c.RootDir = dir }
}

// WithoutStackTrace leaves stack traces out of failure messages.
func WithoutStackTrace() Option {
	return func(c *Config) { c.NoStackTrace = true }
}

// WithIgnoredFrames leaves frames of functions starting with any of prefixes out of
// stack traces, e.g. a test helper package. Calls accumulate.
func WithIgnoredFrames(prefixes ...string) Option {
	return func(c *Config) { c.IgnoredFrames = append(c.IgnoredFrames, prefixes...) }
}

// WithColor forces colour on or off.
func WithColor(enabled bool) Option {
	return func(c *Config) { c.Color = &enabled }
}

// WithLogger sends evaluation logs to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = logger }
}

// NewConfig applies opts, in order, over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{Logger: NullLogger()}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = NullLogger()
	}

	return cfg
}

// NullLogger returns a logger that discards everything.
func NullLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func (c Config) style() format.Style {
	return format.NewStyle(c.Color)
}

func (c Config) stackOptions() format.StackOptions {
	root := c.RootDir
	if root == "" {
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}

	return format.StackOptions{NoStackTrace: c.NoStackTrace, RootDir: root, Ignore: c.IgnoredFrames}
}
