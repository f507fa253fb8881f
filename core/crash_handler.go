package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashReset restores the terminal before the stack trace is printed
// Set once by the host; engine packages stay independent of the screen
var crashReset atomic.Pointer[func()]

// SetCrashReset registers the terminal restore hook used by HandleCrash
func SetCrashReset(fn func()) {
	crashReset.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashReset.Load(); fn != nil && *fn != nil {
		(*fn)()
	}

	// Raw mode may still be partially active, use \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Guard wraps an errgroup task so a panic goes through HandleCrash
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
