// Package errors routes user-facing messages to the console or the pager's
// status line.
package errors

// ErrorHandler is the interface for user-facing messages.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console writer a CLIHandler prints through.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages to the console.
type CLIHandler struct {
	colors ColorOutput
}

// NewCLIHandler creates a CLI handler printing through colors.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string)   { h.colors.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.colors.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.colors.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.colors.Success(msg) }

// Report sends err to h as an error message. Nil errors are ignored.
func Report(h ErrorHandler, err error) {
	if h == nil || err == nil {
		return
	}
	h.Error(err.Error())
}
