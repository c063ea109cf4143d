package format

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Frame is one call site of a captured stack.
type Frame struct {
	Function string
	File     string
	Line     int
}

// StackOptions controls FormatStackTrace.
type StackOptions struct {
	// NoStackTrace drops the trace entirely.
	NoStackTrace bool
	// RootDir is stripped from file paths under it. Empty leaves paths absolute.
	RootDir string
	// Ignore lists function-name prefixes whose frames are dropped, on top of the
	// runtime, testing, and matcher-internal frames that are always dropped.
	Ignore []string
}

// SeparateMessageFromStack splits an error message from a goroutine trace embedded after
// it, as errors built from a recovered panic often carry. A message without a goroutine
// header is all message.
func SeparateMessageFromStack(raw string) (message, stack string) {
	loc := goroutineHeader.FindStringIndex(raw)
	if loc == nil {
		return strings.TrimRight(raw, "\n"), ""
	}

	return strings.TrimRight(raw[:loc[0]], "\n"), raw[loc[0]:]
}

// FormatStackTrace renders frames as indented "at fn (file:line)" lines, one per frame
// the reader cares about. The result is empty or starts with a newline so it can be
// appended to a message.
func FormatStackTrace(frames []Frame, opts StackOptions) string {
	if opts.NoStackTrace || len(frames) == 0 {
		return ""
	}

	lines := make([]string, 0, len(frames))

	for _, fr := range frames {
		if ignored(fr.Function, opts.Ignore) {
			continue
		}

		location := relativePath(fr.File, opts.RootDir) + ":" + strconv.Itoa(fr.Line)
		lines = append(lines, stackIndent+"at "+fr.Function+" ("+location+")")
	}

	if len(lines) == 0 {
		return ""
	}

	return "\n" + strings.Join(lines, "\n")
}

// unexported constants.
const (
	stackIndent = "      "
)

// unexported variables.
var (
	//nolint:gochecknoglobals // compiled once
	goroutineHeader = regexp.MustCompile(`(?m)^goroutine \d+ \[[^\]]*\]:$`)
	//nolint:gochecknoglobals // frames nobody wants to read in a test failure
	alwaysIgnored = []string{
		"runtime.",
		"testing.",
		"github.com/toejough/throws/internal/core.",
	}
)

func ignored(function string, extra []string) bool {
	for _, prefix := range alwaysIgnored {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}

	for _, prefix := range extra {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}

	return false
}

func relativePath(file, rootDir string) string {
	if rootDir == "" {
		return file
	}

	rel, err := filepath.Rel(rootDir, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}

	return filepath.ToSlash(rel)
}
