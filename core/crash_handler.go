package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
)

// Sequences restoring a terminal left in an unknown state
var (
	seqCursorShow   = []byte("\x1b[?25h")
	seqAltScreenOff = []byte("\x1b[?1049l")
	seqSGR0         = []byte("\x1b[0m")
)

// SetCrashCleanup registers the terminal teardown run before the crash report
// Passing nil restores the escape-sequence fallback
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// EmergencyReset writes the reset sequences to w
func EmergencyReset(w io.Writer) {
	w.Write(seqCursorShow)
	w.Write(seqAltScreenOff)
	w.Write(seqSGR0)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	} else {
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
