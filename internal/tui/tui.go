// Package tui implements the interactive password form for zpass.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/clipboard"
	"github.com/zarlcorp/zpass/internal/passgen"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.Copy

// Model is the root TUI model.
type Model struct {
	version string
	gen     *passgen.Generator
	form    formModel
	dialog  dialogModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. The form starts from p with the length
// clamped to the slider range.
func New(version string, gen *passgen.Generator, p passgen.Policy) Model {
	return Model{
		version: version,
		gen:     gen,
		form:    newFormModel(p),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generateMsg:
		return m.handleGenerate(msg.policy)

	case copyMsg:
		return m.handleCopy(msg.password)

	case dialogClosedMsg:
		return m, nil
	}

	if m.dialog.open {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleGenerate(p passgen.Policy) (tea.Model, tea.Cmd) {
	pw, err := m.gen.Generate(p)
	if err != nil {
		slog.Debug("generate", "err", err)
		m.dialog = newDialog(dialogError, "Failed to generate password: "+err.Error())
		return m, nil
	}

	m.form, _ = m.form.Update(generatedMsg{password: pw})
	return m, nil
}

func (m Model) handleCopy(pw string) (tea.Model, tea.Cmd) {
	if pw == "" {
		m.dialog = newDialog(dialogWarning, "No password to copy!")
		return m, nil
	}

	if err := copyToClipboard(pw); err != nil {
		slog.Debug("copy", "err", err)
		m.dialog = newDialog(dialogError, "Failed to copy: "+err.Error())
		return m, nil
	}

	m.dialog = newDialog(dialogInfo, "Password copied to clipboard!")
	return m, nil
}

// Password returns the password currently displayed in the form.
func (m Model) Password() string {
	return m.form.password
}

func (m Model) View() string {
	content := m.form.View()
	help := formHelp
	if m.dialog.open {
		content = m.dialog.View()
		help = dialogHelp
	}

	// TODO: switch to a zpass accent once zstyle defines one.
	header := zstyle.RenderHeader("zpass", "Password Generator", zstyle.ZburnAccent) +
		" " + zstyle.MutedText.Render(m.version)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(help)

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

var formHelp = []zstyle.HelpPair{
	{Key: "j/k", Desc: "navigate"},
	{Key: "h/l", Desc: "length"},
	{Key: "space", Desc: "toggle"},
	{Key: "g", Desc: "generate"},
	{Key: "c", Desc: "copy"},
	{Key: "q", Desc: "quit"},
}

var dialogHelp = []zstyle.HelpPair{
	{Key: "enter", Desc: "ok"},
}
