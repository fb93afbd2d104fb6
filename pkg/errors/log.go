package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is an ErrorHandler that writes one line per error.
type LogHandler struct {
	// Out receives the log lines. Nil means stderr.
	Out io.Writer
	// Verbose enables stack traces.
	Verbose bool

	mu sync.Mutex
}

func (h *LogHandler) writer() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a RefreshError.
func (h *LogHandler) HandleError(err *RefreshError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.writer()
	fmt.Fprintf(w, "[refresh error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.writer()
	if err.Op != "" {
		fmt.Fprintf(w, "[refresh panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[refresh panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
