// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
package listview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clinic-tui/internal/ui/styles"
)

// =============================================================================
// RECORD FORM
// =============================================================================

// Form is the modal create/edit form. Text fields use textinput; select
// fields cycle their options with left/right.
type Form struct {
	Title  string
	fields []Field
	inputs []textinput.Model
	// selected option index per field; only meaningful for selects
	selected []int
	focus    int
	err      string

	theme *styles.Theme
}

// NewForm builds a form from field definitions. The first field gets
// focus.
func NewForm(theme *styles.Theme, title string, fields []Field) *Form {
	f := &Form{
		Title:    title,
		fields:   fields,
		inputs:   make([]textinput.Model, len(fields)),
		selected: make([]int, len(fields)),
		theme:    theme,
	}

	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.Placeholder
		input.CharLimit = 120
		input.SetValue(field.Initial)
		f.inputs[i] = input

		if field.Kind == FieldSelect {
			f.selected[i] = optionIndex(field.Options, field.Initial)
		}
	}

	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func optionIndex(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}

// Update handles key and input messages for the form.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch key.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	case "left", "right":
		if f.currentField().Kind == FieldSelect {
			f.cycleOption(key.String() == "right")
			return nil
		}
	}

	return f.updateFocused(msg)
}

// updateFocused forwards a message to the focused text input.
func (f *Form) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	if f.fields[f.focus].Kind == FieldSelect {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *Form) setFocus(index int) {
	if len(f.fields) == 0 {
		return
	}
	if index < 0 {
		index = len(f.fields) - 1
	}
	if index >= len(f.fields) {
		index = 0
	}

	f.inputs[f.focus].Blur()
	f.focus = index
	if f.fields[f.focus].Kind != FieldSelect {
		f.inputs[f.focus].Focus()
	}
}

func (f *Form) currentField() Field {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return Field{}
	}
	return f.fields[f.focus]
}

// cycleOption moves the focused select field to its next or previous
// option, wrapping at the ends.
func (f *Form) cycleOption(forward bool) {
	options := f.fields[f.focus].Options
	if len(options) == 0 {
		return
	}
	if forward {
		f.selected[f.focus] = (f.selected[f.focus] + 1) % len(options)
	} else {
		f.selected[f.focus] = (f.selected[f.focus] - 1 + len(options)) % len(options)
	}
}

// value returns the raw string value of field i.
func (f *Form) value(i int) string {
	if f.fields[i].Kind == FieldSelect {
		options := f.fields[i].Options
		if len(options) == 0 {
			return ""
		}
		return options[f.selected[i]].Value
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

// Values validates the form and returns the field map ready to submit.
// Numbers are converted to floats; everything else is sent as a string.
func (f *Form) Values() (map[string]any, error) {
	values := make(map[string]any, len(f.fields))

	for i, field := range f.fields {
		raw := f.value(i)
		if raw == "" {
			if field.Required {
				return nil, fmt.Errorf("%s is required", field.Label)
			}
			continue
		}

		switch field.Kind {
		case FieldNumber:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", field.Label)
			}
			values[field.Name] = n
		default:
			values[field.Name] = raw
		}
	}
	return values, nil
}

// SetError records a validation or server error shown under the form.
func (f *Form) SetError(message string) {
	f.err = message
}

// View renders the form body for the modal frame.
func (f *Form) View() string {
	var sb strings.Builder

	for i, field := range f.fields {
		label := f.theme.FieldLabel
		if i == f.focus {
			label = f.theme.FieldLabelFocus
		}
		sb.WriteString(label.Render(field.Label))
		if field.Required {
			sb.WriteString(f.theme.FieldError.Render(" *"))
		}
		sb.WriteString("\n")

		if field.Kind == FieldSelect {
			sb.WriteString(f.renderSelect(i))
		} else {
			sb.WriteString(f.inputs[i].View())
		}
		sb.WriteString("\n")
	}

	if f.err != "" {
		sb.WriteString("\n")
		sb.WriteString(f.theme.FieldError.Render(f.err))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(f.theme.ShortcutKey.Render("enter"))
	sb.WriteString(f.theme.ShortcutDesc.Render(" save  "))
	sb.WriteString(f.theme.ShortcutKey.Render("esc"))
	sb.WriteString(f.theme.ShortcutDesc.Render(" cancel"))

	return sb.String()
}

// renderSelect renders a select field as "< label >".
func (f *Form) renderSelect(i int) string {
	options := f.fields[i].Options
	if len(options) == 0 {
		return f.theme.FieldLabel.Render("< none available >")
	}
	label := options[f.selected[i]].Label
	if i == f.focus {
		return f.theme.FieldLabelFocus.Render("< " + label + " >")
	}
	return f.theme.FieldLabel.Render("  " + label)
}
