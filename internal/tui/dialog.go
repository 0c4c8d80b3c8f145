package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogError
)

// dialogModel is a modal message box. While open it swallows every key
// except the ones that dismiss it.
type dialogModel struct {
	kind    dialogKind
	message string
	open    bool
}

// dialogClosedMsg is sent when the user dismisses the dialog.
type dialogClosedMsg struct{}

var dialogBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2).
	MarginLeft(2)

func newDialog(kind dialogKind, message string) dialogModel {
	return dialogModel{kind: kind, message: message, open: true}
}

func (m dialogModel) title() string {
	switch m.kind {
	case dialogWarning:
		return zstyle.StatusWarn.Render("Warning")
	case dialogError:
		return zstyle.StatusErr.Render("Error")
	}
	return zstyle.StatusOK.Render("Success")
}

func (m dialogModel) Update(msg tea.Msg) (dialogModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if km.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(km, zstyle.KeyEnter) || key.Matches(km, zstyle.KeyBack) || km.String() == " " {
		m.open = false
		return m, func() tea.Msg { return dialogClosedMsg{} }
	}

	return m, nil
}

func (m dialogModel) View() string {
	body := m.title() + "\n\n" + m.message + "\n\n" + zstyle.MutedText.Render("enter ok")
	return "\n" + dialogBox.Render(body) + "\n"
}
