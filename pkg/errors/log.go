package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to a writer.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Defaults to os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a ZoomError.
func (h *LogHandler) HandleError(err *ZoomError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[pullzoom error] %s [%s]", err.Op, err.Kind)
		if err.HasPointer {
			fmt.Fprintf(w, " pointer=%d", err.PointerID)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[pullzoom error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[pullzoom panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[pullzoom panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// Recorder is an ErrorHandler that keeps everything it receives. The
// scenario runner uses it to attach diagnostics to a report.
type Recorder struct {
	Errors []*ZoomError
	Panics []*PanicError
}

// HandleError stores err.
func (r *Recorder) HandleError(err *ZoomError) {
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
}

// HandlePanic stores err.
func (r *Recorder) HandlePanic(err *PanicError) {
	if err != nil {
		r.Panics = append(r.Panics, err)
	}
}

// Replay forwards everything recorded so far to h, errors first.
func (r *Recorder) Replay(h ErrorHandler) {
	if h == nil {
		return
	}
	for _, err := range r.Errors {
		h.HandleError(err)
	}
	for _, p := range r.Panics {
		h.HandlePanic(p)
	}
}
