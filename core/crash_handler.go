package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// EmergencyReset restores the terminal to a sane state without relying on
// the screen object, which may be the thing that crashed
func EmergencyReset(w io.Writer) {
	// Exit alternate screen, show cursor, reset attributes, disable mouse
	fmt.Fprint(w, "\x1b[?1049l\x1b[?25h\x1b[0m\x1b[?1000l\x1b[?1006l")
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(os.Stdout)

	// Use \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mROCKET PIANO CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
