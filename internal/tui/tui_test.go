package tui

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/anything-list/internal/logger"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name         string
		msg          tea.Msg
		wantAnswered bool
		wantAccepted bool
		wantQuit     bool
	}{
		{name: "yes", msg: runeKey("y"), wantAnswered: true, wantAccepted: true, wantQuit: true},
		{name: "upper yes", msg: runeKey("Y"), wantAnswered: true, wantAccepted: true, wantQuit: true},
		{name: "no", msg: runeKey("n"), wantAnswered: true, wantQuit: true},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, wantAnswered: true, wantQuit: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, wantAnswered: true, wantQuit: true},
		{name: "other key ignored", msg: runeKey("x")},
		{name: "non key message ignored", msg: tea.WindowSizeMsg{Width: 80, Height: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := newConfirmModel("Switch account?", "").Update(tt.msg)
			got := model.(confirmModel)

			assert.Equal(t, tt.wantAnswered, got.answered)
			assert.Equal(t, tt.wantAccepted, got.accepted)
			assert.Equal(t, tt.wantQuit, cmd != nil)
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := newConfirmModel("Delete all lists?", "This cannot be undone.")

	view := m.View()
	assert.Contains(t, view, "Delete all lists?")
	assert.Contains(t, view, "This cannot be undone.")
	assert.Contains(t, view, "y yes")

	m.answered = true
	assert.Empty(t, m.View())
}

func TestPickerModel_Navigation(t *testing.T) {
	var model tea.Model = newPickerModel("Template", []string{"a", "b", "c"})

	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyDown},
		runeKey("j"),
		runeKey("j"), // clamped at the last option
		tea.KeyMsg{Type: tea.KeyUp},
	} {
		model, _ = model.Update(msg)
	}
	assert.Equal(t, 1, model.(pickerModel).cursor)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := model.(pickerModel)
	assert.Equal(t, 1, got.chosen)
	assert.True(t, got.done)
	assert.NotNil(t, cmd)
}

func TestPickerModel_CancelAndEmpty(t *testing.T) {
	model, _ := newPickerModel("Template", []string{"a"}).Update(runeKey("q"))
	assert.Equal(t, -1, model.(pickerModel).chosen)

	model, _ = newPickerModel("Template", nil).Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, -1, model.(pickerModel).chosen)
}

func TestPickerModel_ViewMarksCursor(t *testing.T) {
	view := newPickerModel("Template", []string{"Books", "Movies"}).View()

	assert.Contains(t, view, "> Books")
	assert.Contains(t, view, "  Movies")
}

func TestTUI_ConfirmReadsInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			ui := New(bytes.NewBufferString(tt.input), &out, logger.Nop())

			got, err := ui.Confirm(context.Background(), "Continue?", "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTUI_PickCancelled(t *testing.T) {
	var out bytes.Buffer
	ui := New(bytes.NewBufferString("q"), &out, logger.Nop())

	_, err := ui.Pick(context.Background(), "Template", []string{"a", "b"})

	assert.ErrorIs(t, err, ErrUserQuit)
}

func TestAutoConfirm(t *testing.T) {
	ok, err := AutoConfirm{}.Confirm(context.Background(), "x", "")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = AutoConfirm{}.Pick(context.Background(), "x", []string{"a"})
	assert.ErrorIs(t, err, ErrUserQuit)
}
