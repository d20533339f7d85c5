package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// confirmModel asks a yes/no question. Anything but an explicit yes is a no.
type confirmModel struct {
	title    string
	warning  string
	answered bool
	accepted bool
}

func newConfirmModel(title, warning string) confirmModel {
	return confirmModel{title: title, warning: warning}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.accepted = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.quit):
		m.answered, m.accepted = true, false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}

	content := titleStyle.Render(m.title)
	if m.warning != "" {
		content += "\n\n" + warningStyle.Render(m.warning)
	}
	content += "\n\n" + helpLine(keys.yes, keys.no)
	return overlayBoxStyle.Render(content) + "\n"
}
