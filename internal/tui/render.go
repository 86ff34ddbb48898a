package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/rrhh/internal/staff"
)

var (
	detailLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Width(20)
	detailValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
)

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func dateOrNA(value string) string {
	if value == "" || value == "0001-01-01" {
		return "N/A"
	}
	return value
}

// personnelDetail renders the full record of one staff member as a
// label/value panel.
func personnelDetail(member *staff.Personnel) string {
	departments := make([]string, 0, len(member.Departments()))
	for _, id := range member.Departments() {
		departments = append(departments, fmt.Sprintf("%d", id))
	}
	rows := []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprintf("%d", member.ID())},
		{"DNI", member.DNI()},
		{"Nombre", member.Name()},
		{"Fecha nacimiento", staff.FormatDate(member.Person().BirthDate)},
		{"Edad", fmt.Sprintf("%d años", member.Person().Age())},
		{"Telefono", member.Person().Phone},
		{"Rol", member.Role()},
		{"Especialidad", orNA(member.Specialty())},
		{"Departamentos", strings.Join(departments, ", ")},
		{"Jornada", member.Schedule()},
		{"Turno", orNA(member.Shift())},
		{"Salario base", fmt.Sprintf("S/. %.2f", member.BaseSalary())},
		{"Estado", member.Status()},
		{"Fecha contratacion", staff.FormatDate(member.HireDate())},
		{"Fecha baja", dateOrNA(staff.FormatDate(member.TerminationDate()))},
		{"Motivo baja", orNA(member.TerminationReason())},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, detailLabelStyle.Render(row.label)+detailValueStyle.Render(row.value))
	}
	return strings.Join(lines, "\n")
}

// staffTable renders a staff listing with the columns the department query
// shows: ID, name, role, schedule and status.
func staffTable(members []*staff.Personnel) string {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "DNI", Width: 10},
		{Title: "Nombre", Width: 28},
		{Title: "Rol", Width: 15},
		{Title: "Jornada", Width: 16},
		{Title: "Estado", Width: 10},
	}
	rows := make([]table.Row, 0, len(members))
	for _, member := range members {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", member.ID()),
			member.DNI(),
			member.Name(),
			member.Role(),
			member.Schedule(),
			member.Status(),
		})
	}
	return renderTable(columns, rows)
}

// contractTable renders a contract listing including remaining days when an
// end date exists.
func contractTable(contracts []*staff.Contract) string {
	columns := []table.Column{
		{Title: "Contrato", Width: 9},
		{Title: "Personal", Width: 9},
		{Title: "Tipo", Width: 15},
		{Title: "Inicio", Width: 12},
		{Title: "Fin", Width: 12},
		{Title: "Estado", Width: 11},
		{Title: "Dias rest.", Width: 10},
	}
	rows := make([]table.Row, 0, len(contracts))
	for _, contract := range contracts {
		remaining := "-"
		if days, err := contract.RemainingDays(); err == nil {
			remaining = fmt.Sprintf("%d", days)
		}
		end := "-"
		if !contract.End().IsZero() {
			end = staff.FormatDate(contract.End())
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", contract.ID()),
			fmt.Sprintf("%d", contract.PersonnelID()),
			contract.Type(),
			staff.FormatDate(contract.Start()),
			end,
			contract.Status(),
			remaining,
		})
	}
	return renderTable(columns, rows)
}

func renderTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#444444"))
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t.View()
}
