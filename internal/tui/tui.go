// Package tui holds the small interactive prompts used by the command line:
// a yes/no confirmation and a single-choice picker.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/anything-list/internal/logger"
)

// Prompter asks the user for decisions. The CLI depends on this interface so
// that commands can run unattended in tests and scripts.
type Prompter interface {
	// Confirm returns true only on an explicit yes.
	Confirm(ctx context.Context, title, warning string) (bool, error)

	// Pick returns the index of the chosen option or ErrUserQuit.
	Pick(ctx context.Context, title string, options []string) (int, error)
}

type TUI struct {
	in  io.Reader
	out io.Writer
	log *logger.Logger
}

func New(in io.Reader, out io.Writer, log *logger.Logger) *TUI {
	return &TUI{in: in, out: out, log: log}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
}

func (t *TUI) Confirm(ctx context.Context, title, warning string) (bool, error) {
	finalModel, err := t.run(ctx, newConfirmModel(title, warning))
	if err != nil {
		t.log.Err(err).Str("func", "TUI.Confirm").Msg("prompt failed")
		return false, err
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.accepted, nil
}

func (t *TUI) Pick(ctx context.Context, title string, options []string) (int, error) {
	finalModel, err := t.run(ctx, newPickerModel(title, options))
	if err != nil {
		t.log.Err(err).Str("func", "TUI.Pick").Msg("prompt failed")
		return -1, err
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return -1, tea.ErrProgramKilled
	}
	if result.chosen < 0 {
		return -1, ErrUserQuit
	}
	return result.chosen, nil
}

// AutoConfirm answers yes to every confirmation without prompting. Picking is
// not possible unattended.
type AutoConfirm struct{}

func (AutoConfirm) Confirm(context.Context, string, string) (bool, error) { return true, nil }

func (AutoConfirm) Pick(context.Context, string, []string) (int, error) { return -1, ErrUserQuit }
