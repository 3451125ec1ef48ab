package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is a vertical list of inputs with a single focused field.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, secret bool, charLimit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// last reports whether the focused input is the final one.
func (f *form) last() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// reset empties every input and focuses the first one.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// clearSecrets empties the masked inputs only.
func (f *form) clearSecrets() {
	for i := range f.inputs {
		if f.inputs[i].EchoMode == textinput.EchoPassword {
			f.inputs[i].Reset()
		}
	}
}

// render draws the inputs as a two-column field table.
func (f *form) render(labels ...string) string {
	width := lipgloss.Width("Field")
	for _, l := range labels {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", width, "Field"))
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")
	for i, in := range f.inputs {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", width, label, in.View()))
	}
	return strings.TrimRight(b.String(), "\n")
}
