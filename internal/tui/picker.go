package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// pickerModel lets the user choose one of options. chosen stays -1 when the
// prompt is cancelled.
type pickerModel struct {
	title   string
	options []string
	cursor  int
	chosen  int
	done    bool
}

func newPickerModel(title string, options []string) pickerModel {
	return pickerModel{title: title, options: options, chosen: -1}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.options) > 0 {
			m.chosen = m.cursor
		}
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpLine(keys.up, keys.down, keys.enter, keys.quit))
	return b.String() + "\n"
}
