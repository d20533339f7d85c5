package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/anything-list/internal/app"
	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/internal/tui"
)

// Exit codes returned by Execute.
const (
	ExitSuccess   = 0
	ExitFailure   = 1
	ExitCancelled = 130
)

// printer writes command results as text or as indented JSON.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) json() bool { return p.format == FormatJSON }

// result prints v as JSON, or calls text in text mode.
func (p *printer) result(v any, text func(w io.Writer)) error {
	if !p.json() {
		text(p.w)
		return nil
	}

	data, err := codec.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// userMessage is the text printed for a failed command. Failures of the
// core operations print their fixed user message; anything else, such as a
// configuration or file error, prints the error itself.
func userMessage(err error) string {
	if msg := service.UserMessage(err); msg != app.MsgInternalServerError {
		return msg
	}
	return err.Error()
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, tui.ErrUserQuit):
		return ExitCancelled
	default:
		return ExitFailure
	}
}

func orNone(id *string) string {
	if id == nil {
		return "(none)"
	}
	return *id
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
