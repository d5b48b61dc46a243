package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is one editable form input.
type Field struct {
	Key   string
	Label string
}

// FormEditor edits one console form. Every keystroke is written through to the
// controller, so the inputs only mirror controller state.
type FormEditor struct {
	ctl    Controller
	theme  themes.Theme
	form   console.Form
	fields []Field
	inputs []textinput.Model
	focus  int
}

// NewFormEditor creates an editor over fields of form, focused on the first field.
func NewFormEditor(ctl Controller, form console.Form, fields []Field, theme themes.Theme) FormEditor {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Key
		in.CharLimit = 256
		in.Width = 32
		inputs[i] = in
	}

	e := FormEditor{
		ctl:    ctl,
		theme:  theme,
		form:   form,
		fields: fields,
		inputs: inputs,
	}
	e.sync()
	if len(e.inputs) > 0 {
		e.inputs[0].Focus()
	}
	return e
}

// Focused returns the key of the focused field.
func (e FormEditor) Focused() string {
	if len(e.fields) == 0 {
		return ""
	}
	return e.fields[e.focus].Key
}

// Update moves focus on up/down and feeds other keys to the focused input.
func (e FormEditor) Update(msg tea.KeyMsg) (FormEditor, tea.Cmd) {
	if len(e.inputs) == 0 {
		return e, nil
	}
	e.sync()

	switch msg.String() {
	case "up":
		return e, e.moveFocus(-1)
	case "down":
		return e, e.moveFocus(1)
	}

	before := e.inputs[e.focus].Value()
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)

	if after := e.inputs[e.focus].Value(); after != before {
		key := e.fields[e.focus].Key
		if err := e.ctl.UpdateField(e.form, key, after); err != nil {
			common.LogWarn(err, "Failed to update form field", common.Fields{
				"form":  string(e.form),
				"field": key,
			})
		}
	}

	return e, cmd
}

func (e *FormEditor) moveFocus(delta int) tea.Cmd {
	e.inputs[e.focus].Blur()
	e.focus = (e.focus + delta + len(e.inputs)) % len(e.inputs)
	return e.inputs[e.focus].Focus()
}

// sync pulls values changed elsewhere, such as a dataset picked from the list.
func (e *FormEditor) sync() {
	state := e.ctl.State()
	for i, f := range e.fields {
		value := formValue(state, e.form, f.Key)
		if e.inputs[i].Value() != value {
			e.inputs[i].SetValue(value)
		}
	}
}

// View renders one labelled input per line.
func (e FormEditor) View() string {
	e.sync()

	width := 0
	for _, f := range e.fields {
		width = max(width, len(f.Label))
	}

	lines := make([]string, 0, len(e.fields))
	for i, f := range e.fields {
		label := fmt.Sprintf("%-*s", width, f.Label)
		marker := "  "
		if i == e.focus {
			marker = "› "
			label = e.theme.Focused.Render(label)
		} else {
			label = e.theme.Label.Render(label)
		}
		lines = append(lines, marker+label+"  "+e.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}

func formValue(state console.State, form console.Form, key string) string {
	var (
		value string
		err   error
	)
	switch form {
	case console.FormTransaction:
		value, err = state.Transaction.Get(key)
	case console.FormDataset:
		value, err = state.DatasetParams.Get(key)
	}
	if err != nil {
		return ""
	}
	return value
}
