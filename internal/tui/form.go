package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/passgen"
)

// slider bounds for the password length
const (
	minLength = 8
	maxLength = 32
)

type formField int

const (
	fieldLength formField = iota
	fieldUppercase
	fieldDigits
	fieldSpecial
	fieldGenerate
	fieldCopy
	fieldCount
)

var checkboxLabels = map[formField]string{
	fieldUppercase: "Include Uppercase Letters",
	fieldDigits:    "Include Digits",
	fieldSpecial:   "Include Special Characters",
}

// formModel holds the generator options and the last generated password.
type formModel struct {
	length    int
	uppercase bool
	digits    bool
	special   bool
	password  string
	focus     formField
}

// generateMsg asks the root model to generate with policy.
type generateMsg struct {
	policy passgen.Policy
}

// generatedMsg carries a freshly generated password back to the form.
type generatedMsg struct {
	password string
}

// copyMsg asks the root model to copy the displayed password.
type copyMsg struct {
	password string
}

func newFormModel(p passgen.Policy) formModel {
	return formModel{
		length:    clampLength(p.Length),
		uppercase: p.Uppercase,
		digits:    p.Digits,
		special:   p.Special,
	}
}

func clampLength(n int) int {
	return max(minLength, min(maxLength, n))
}

// policy returns the generation policy the form currently describes.
func (m formModel) policy() passgen.Policy {
	return passgen.Policy{
		Length:    m.length,
		Uppercase: m.uppercase,
		Digits:    m.digits,
		Special:   m.special,
	}
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case generatedMsg:
		m.password = msg.password
		return m, nil
	}

	return m, nil
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyUp) || msg.String() == "shift+tab" {
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) || msg.String() == "tab" {
		m.focus = (m.focus + 1) % fieldCount
		return m, nil
	}

	switch msg.String() {
	case "left", "h", "-":
		m.length = clampLength(m.length - 1)
		return m, nil
	case "right", "l", "+":
		m.length = clampLength(m.length + 1)
		return m, nil
	case "g":
		return m, m.generate()
	case "c":
		return m, m.copy()
	case " ":
		return m.activate()
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.activate()
	}

	return m, nil
}

// activate toggles the focused checkbox or runs the focused action.
func (m formModel) activate() (formModel, tea.Cmd) {
	switch m.focus {
	case fieldUppercase:
		m.uppercase = !m.uppercase
	case fieldDigits:
		m.digits = !m.digits
	case fieldSpecial:
		m.special = !m.special
	case fieldGenerate:
		return m, m.generate()
	case fieldCopy:
		return m, m.copy()
	}
	return m, nil
}

func (m formModel) generate() tea.Cmd {
	p := m.policy()
	return func() tea.Msg { return generateMsg{policy: p} }
}

func (m formModel) copy() tea.Cmd {
	pw := m.password
	return func() tea.Msg { return copyMsg{password: pw} }
}

func (m formModel) checked(f formField) bool {
	switch f {
	case fieldUppercase:
		return m.uppercase
	case fieldDigits:
		return m.digits
	case fieldSpecial:
		return m.special
	}
	return false
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(m.row(fieldLength, fmt.Sprintf("%s %s %d",
		zstyle.MutedText.Render("Password Length:"), renderSlider(m.length), m.length)))
	b.WriteString("\n")

	b.WriteString("  " + zstyle.Subtitle.Render("Options:") + "\n")
	for _, f := range []formField{fieldUppercase, fieldDigits, fieldSpecial} {
		box := "[ ]"
		if m.checked(f) {
			box = "[x]"
		}
		b.WriteString(m.row(f, box+" "+checkboxLabels[f]))
	}
	b.WriteString("\n")

	b.WriteString(m.row(fieldGenerate, "Generate Password"))
	b.WriteString("\n")

	b.WriteString("  " + zstyle.MutedText.Render("Generated Password:") + "\n")
	display := m.password
	if display == "" {
		display = zstyle.MutedText.Render("(none)")
	}
	b.WriteString("    " + display + "\n\n")

	b.WriteString(m.row(fieldCopy, "Copy to Clipboard"))
	return b.String()
}

func (m formModel) row(f formField, text string) string {
	if f == m.focus {
		return zstyle.Highlight.Render("  > "+text) + "\n"
	}
	return "    " + text + "\n"
}

// renderSlider draws the length as a bar between minLength and maxLength.
func renderSlider(length int) string {
	width := maxLength - minLength
	filled := clampLength(length) - minLength
	return fmt.Sprintf("%d [%s%s] %d",
		minLength, strings.Repeat("=", filled), strings.Repeat("-", width-filled), maxLength)
}
