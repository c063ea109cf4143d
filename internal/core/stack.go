package core

import (
	"runtime"

	"github.com/toejough/throws/internal/format"
)

// unexported constants.
const (
	maxStackDepth = 64
)

// captureStack resolves the current call stack, skipping skip frames above its caller.
// Called from a deferred recover, the stack still holds the frames that panicked.
func captureStack(skip int) []format.Frame {
	pcs := make([]uintptr, maxStackDepth)

	// +2 skips runtime.Callers and captureStack.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]format.Frame, 0, n)

	for {
		fr, more := frames.Next()
		stack = append(stack, format.Frame{Function: fr.Function, File: fr.File, Line: fr.Line})

		if !more {
			break
		}
	}

	return stack
}
