// Package backtrace captures call-stack snapshots for error wrappers.
//
// A snapshot records raw program counters at capture time and resolves
// them to frames lazily, on first rendering. Whether a capture happens
// at all is decided by the build (forcebacktrace tag) or, by default,
// by the ETRACE_BACKTRACE environment variable.
package backtrace

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// EnvVar enables stack capture in default builds when set to
// "1", "true" or "full".
const EnvVar = "ETRACE_BACKTRACE"

// maxDepth caps the number of captured frames.
const maxDepth = 32

// Frame represents a single entry in a backtrace.
type Frame struct {
	Func string
	File string
	Line int
}

// String satisfies the fmt.Stringer interface.
func (f Frame) String() string {
	return fmt.Sprintf("%s:%d - %s", f.File, f.Line, f.Func)
}

// Backtrace is an immutable snapshot of the call stack. Program
// counters are recorded at capture time; symbol resolution is deferred
// until the first call to Frames or String and cached afterwards.
type Backtrace struct {
	pcs []uintptr

	once   sync.Once
	frames []Frame
	text   string
}

// Capture records the calling goroutine's stack, skipping the given
// number of frames on top of Capture itself. It returns nil when the
// effective capture policy is disabled.
func Capture(skip int) *Backtrace {
	if !captureEnabled() {
		return nil
	}

	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	return &Backtrace{pcs: pcs[:n]}
}

// Enabled reports whether the effective capture policy would record a
// backtrace right now.
func Enabled() bool {
	return captureEnabled()
}

// Frames resolves the snapshot and returns a copy of its frames.
func (b *Backtrace) Frames() []Frame {
	b.resolve()
	return append([]Frame(nil), b.frames...)
}

// String resolves the snapshot and renders it as one frame per line.
func (b *Backtrace) String() string {
	b.resolve()
	return b.text
}

func (b *Backtrace) resolve() {
	b.once.Do(func() {
		if len(b.pcs) == 0 {
			// The runtime gave us nothing to walk.
			b.text = "backtrace unavailable"
			return
		}

		var sb strings.Builder
		iter := runtime.CallersFrames(b.pcs)
		for {
			fr, more := iter.Next()
			frame := Frame{
				Func: fr.Function,
				File: fr.File,
				Line: fr.Line,
			}
			b.frames = append(b.frames, frame)
			sb.WriteString(frame.String())
			if !more {
				break
			}
			sb.WriteByte('\n')
		}
		b.text = sb.String()
	})
}
