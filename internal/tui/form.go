package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputDateLayout is the day-first format operators type at the console.
// Storage and the domain layer stay ISO-8601; the conversion happens here.
const inputDateLayout = "02/01/2006"

type formValues map[string]string

// formField is one prompt of a sequential form. A non-empty options list
// restricts the answer to the catalog entries, selectable by number or by
// name. The when hook skips conditional fields (specialty for non-doctors,
// shift outside "Por turnos").
type formField struct {
	key          string
	label        string
	placeholder  string
	options      []string
	defaultValue string
	when         func(values formValues) bool
}

// form walks its fields one at a time through a single text input.
type form struct {
	title  string
	fields []formField
	index  int
	input  textinput.Model
	values formValues
	errMsg string
}

func newForm(title string, fields []formField) *form {
	input := textinput.New()
	input.CharLimit = 100
	input.Width = 40
	input.Focus()
	f := &form{
		title:  title,
		fields: fields,
		values: formValues{},
		input:  input,
	}
	f.skipInapplicable()
	f.preparePrompt()
	return f
}

func (f *form) done() bool { return f.index >= len(f.fields) }

func (f *form) current() formField { return f.fields[f.index] }

// handleKey consumes one key message. It reports true once every field has
// been answered.
func (f *form) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if f.done() {
		return true, nil
	}
	if msg.Type == tea.KeyEnter {
		value, err := f.resolve(strings.TrimSpace(f.input.Value()))
		if err != nil {
			f.errMsg = err.Error()
			return false, nil
		}
		f.errMsg = ""
		f.values[f.current().key] = value
		f.index++
		f.skipInapplicable()
		if f.done() {
			return true, nil
		}
		f.preparePrompt()
		return false, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return false, cmd
}

// resolve validates raw input for the current field. Choice fields accept
// the option number or its exact text, case-insensitively.
func (f *form) resolve(raw string) (string, error) {
	field := f.current()
	if raw == "" {
		if field.defaultValue != "" {
			return field.defaultValue, nil
		}
		return "", fmt.Errorf("este campo es obligatorio")
	}
	if len(field.options) == 0 {
		return raw, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > len(field.options) {
			return "", fmt.Errorf("opcion fuera de rango (1-%d)", len(field.options))
		}
		return field.options[n-1], nil
	}
	for _, option := range field.options {
		if strings.EqualFold(option, raw) {
			return option, nil
		}
	}
	return "", fmt.Errorf("opcion no reconocida: %s", raw)
}

func (f *form) skipInapplicable() {
	for !f.done() {
		field := f.current()
		if field.when == nil || field.when(f.values) {
			return
		}
		f.index++
	}
}

func (f *form) preparePrompt() {
	f.input.SetValue("")
	f.input.Placeholder = f.current().placeholder
	f.input.Focus()
}

func (f *form) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(f.title)
	if f.done() {
		return title
	}
	field := f.current()
	lines := []string{title, "", fmt.Sprintf("%s:", field.label)}
	if len(field.options) > 0 {
		for i, option := range field.options {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, option))
		}
	}
	lines = append(lines, "", f.input.View())
	if f.errMsg != "" {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Render("✗ "+f.errMsg))
	}
	progress := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("Campo %d de %d · Enter → confirmar · Esc → cancelar", f.index+1, len(f.fields)))
	lines = append(lines, "", progress)
	return strings.Join(lines, "\n")
}

// parseInputDate converts a dd/mm/yyyy console entry.
func parseInputDate(value string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("formato de fecha invalido (use dd/mm/aaaa): %s", value)
	}
	return t, nil
}

// parseIDList converts a comma-separated list of positive IDs.
func parseIDList(value string) ([]int, error) {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) == 0 {
		return nil, fmt.Errorf("debe indicar al menos un ID")
	}
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("ID invalido: %s", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("ID invalido: %s", value)
	}
	return id, nil
}

func parseAmount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("monto invalido: %s", value)
	}
	return amount, nil
}

// parseBonus admits zero: a payroll run without bonus is valid.
func parseBonus(value string) (float64, error) {
	bonus, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || bonus < 0 {
		return 0, fmt.Errorf("bono invalido: %s", value)
	}
	return bonus, nil
}
