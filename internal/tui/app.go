// Package tui is the hospital HR console. It follows The Elm Architecture
// via bubbletea: the App model holds the screen state, Update reacts to key
// messages and View renders menus, forms and result panels. All business
// decisions stay behind the staffing controller; this layer only collects
// input and renders Result values.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/yourusername/rrhh/internal/catalog"
	"github.com/yourusername/rrhh/internal/journal"
	"github.com/yourusername/rrhh/internal/report"
	"github.com/yourusername/rrhh/internal/staffing"
)

// appState represents which screen is active.
type appState int

const (
	stateMenu       appState = iota // main menu
	stateModifyMenu                 // field-to-modify submenu
	stateReportMenu                 // PDF report submenu
	stateForm                       // sequential input form
	stateOutcome                    // result panel after an operation
)

// outcome is what an operation hands back to the outcome screen: the
// controller result plus an optional pre-rendered body (detail or table).
type outcome struct {
	res  staffing.Result
	body string
}

// App is the console model. It owns the menus, the active form and the
// result of the last operation.
type App struct {
	state      appState
	controller *staffing.Controller
	reports    *report.Generator
	cat        *catalog.Catalog
	journal    *journal.Journal
	logger     *zap.Logger

	mainMenu   list.Model
	modifyMenu list.Model
	reportMenu list.Model

	activeForm *form
	onSubmit   func(formValues) outcome

	lastOutcome outcome
	statusMsg   string

	width  int
	height int
}

// menuItem implements list.Item for the menus.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp builds the console over an already-wired controller and report
// generator.
func NewApp(controller *staffing.Controller, reports *report.Generator, cat *catalog.Catalog, jrnl *journal.Journal, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "⚕ ADMINISTRACION DE RR.HH"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	modifyMenu := list.New(buildModifyMenu(), list.NewDefaultDelegate(), 0, 0)
	modifyMenu.Title = "Modificar personal"
	modifyMenu.SetShowStatusBar(false)
	modifyMenu.SetFilteringEnabled(false)

	reportMenu := list.New(buildReportMenu(), list.NewDefaultDelegate(), 0, 0)
	reportMenu.Title = "Reportes PDF"
	reportMenu.SetShowStatusBar(false)
	reportMenu.SetFilteringEnabled(false)

	return &App{
		state:      stateMenu,
		controller: controller,
		reports:    reports,
		cat:        cat,
		journal:    jrnl,
		logger:     logger,
		mainMenu:   mainMenu,
		modifyMenu: modifyMenu,
		reportMenu: reportMenu,
		statusMsg:  "Seleccione una operacion",
	}
}

func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Registrar personal", desc: "Alta de un empleado con su contrato inicial"},
		menuItem{title: "Buscar por DNI", desc: "Ficha completa de un empleado"},
		menuItem{title: "Modificar personal", desc: "Departamentos, especialidad, turno, jornada, salario"},
		menuItem{title: "Dar de baja", desc: "Inactivar un empleado (sin borrar el registro)"},
		menuItem{title: "Personal activo", desc: "Listado de todo el personal activo"},
		menuItem{title: "Personal por departamento", desc: "Personal activo asignado a un departamento"},
		menuItem{title: "Contratos del personal", desc: "Historial de contratos de un empleado"},
		menuItem{title: "Contratos por vencer", desc: "Contratos temporales cerca de su fecha fin"},
		menuItem{title: "Actualizar contratos", desc: "Marcar como vencidos los contratos temporales caducos"},
		menuItem{title: "Finalizar contrato", desc: "Cierre administrativo de un contrato"},
		menuItem{title: "Reportes PDF", desc: "Exportar roster y planilla"},
		menuItem{title: "Salir", desc: "Cerrar la sesion"},
	}
}

func buildModifyMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Agregar departamento", desc: "Asignar un departamento adicional"},
		menuItem{title: "Eliminar departamento", desc: "Retirar un departamento asignado"},
		menuItem{title: "Cambiar especialidad", desc: "Solo para doctores"},
		menuItem{title: "Cambiar turno", desc: "Solo con jornada Por turnos"},
		menuItem{title: "Cambiar jornada", desc: "Por turnos exige elegir turno"},
		menuItem{title: "Aumentar salario base", desc: "Debe superar el salario actual"},
	}
}

func buildReportMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Personal activo (PDF)", desc: "Roster del personal activo"},
		menuItem{title: "Resumen salarial (PDF)", desc: "Planilla mensual con bono"},
		menuItem{title: "Contratos por vencer (PDF)", desc: "Contratos dentro de la ventana de alerta"},
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update reacts to one message.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(maxInt(0, msg.Width-6), maxInt(0, msg.Height-12))
		a.modifyMenu.SetSize(maxInt(0, msg.Width-6), maxInt(0, msg.Height-12))
		a.reportMenu.SetSize(maxInt(0, msg.Width-6), maxInt(0, msg.Height-12))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMenu {
				return a, tea.Quit
			}
		case "esc":
			if a.state != stateMenu {
				return a.returnToMenu("Operacion cancelada")
			}
		}

		switch a.state {
		case stateForm:
			return a.updateForm(msg)
		case stateOutcome:
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				return a.returnToMenu("Seleccione una operacion")
			}
			return a, nil
		case stateMenu:
			if msg.Type == tea.KeyEnter {
				return a.handleMainMenuSelection()
			}
		case stateModifyMenu:
			if msg.Type == tea.KeyEnter {
				return a.handleModifyMenuSelection()
			}
		case stateReportMenu:
			if msg.Type == tea.KeyEnter {
				return a.handleReportMenuSelection()
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateMenu:
		a.mainMenu, cmd = a.mainMenu.Update(msg)
	case stateModifyMenu:
		a.modifyMenu, cmd = a.modifyMenu.Update(msg)
	case stateReportMenu:
		a.reportMenu, cmd = a.reportMenu.Update(msg)
	}
	return a, cmd
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.activeForm == nil {
		return a.returnToMenu("Seleccione una operacion")
	}
	finished, cmd := a.activeForm.handleKey(msg)
	if !finished {
		return a, cmd
	}
	values := a.activeForm.values
	submit := a.onSubmit
	a.activeForm = nil
	a.onSubmit = nil
	if submit == nil {
		return a.returnToMenu("Seleccione una operacion")
	}
	return a.showOutcome(submit(values))
}

func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.title {
	case "Registrar personal":
		return a.openForm(a.registerForm(), a.submitRegister)
	case "Buscar por DNI":
		return a.openForm(newForm("BUSCAR PERSONAL", []formField{
			{key: "dni", label: "DNI a buscar", placeholder: "8 digitos"},
		}), a.submitSearch)
	case "Modificar personal":
		a.state = stateModifyMenu
		a.statusMsg = "¿Que desea modificar?"
		return a, nil
	case "Dar de baja":
		return a.openForm(newForm("DAR DE BAJA PERSONAL", []formField{
			{key: "id", label: "ID del personal", placeholder: "numero"},
			{key: "fecha_baja", label: "Fecha de baja", placeholder: "dd/mm/aaaa"},
			{key: "motivo", label: "Motivo de baja", options: a.cat.TerminationReasons},
		}), a.submitDeactivate)
	case "Personal activo":
		res := a.controller.ListActive()
		out := outcome{res: res}
		if res.OK && len(res.Staff) > 0 {
			out.body = staffTable(res.Staff)
		}
		return a.showOutcome(out)
	case "Personal por departamento":
		return a.openForm(newForm("PERSONAL POR DEPARTAMENTO", []formField{
			{key: "id_departamento", label: "ID del departamento", placeholder: a.departmentHint()},
		}), a.submitListByDepartment)
	case "Contratos del personal":
		return a.openForm(newForm("CONTRATOS DEL PERSONAL", []formField{
			{key: "id", label: "ID del personal", placeholder: "numero"},
		}), a.submitContractsFor)
	case "Contratos por vencer":
		return a.openForm(newForm("CONTRATOS POR VENCER", []formField{
			{key: "dias", label: "Ventana de alerta en dias", placeholder: "60", defaultValue: "60"},
		}), a.submitExpiring)
	case "Actualizar contratos":
		return a.showOutcome(outcome{res: a.controller.RefreshContracts()})
	case "Finalizar contrato":
		return a.openForm(newForm("FINALIZAR CONTRATO", []formField{
			{key: "id_contrato", label: "ID del contrato", placeholder: "numero"},
		}), a.submitFinalize)
	case "Reportes PDF":
		a.state = stateReportMenu
		a.statusMsg = "Seleccione un reporte"
		return a, nil
	case "Salir":
		a.logInfo("sesion cerrada desde el menu")
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleModifyMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.modifyMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	idField := formField{key: "id", label: "ID del personal", placeholder: "numero"}
	switch item.title {
	case "Agregar departamento":
		return a.openForm(newForm("AGREGAR DEPARTAMENTO", []formField{
			idField,
			{key: "id_departamento", label: "ID del departamento a agregar", placeholder: a.departmentHint()},
		}), a.modifySubmit(func(v formValues) (staffing.ModifyCommand, error) {
			departmentID, err := parseID(v["id_departamento"])
			if err != nil {
				return nil, err
			}
			return staffing.AddDepartment{DepartmentID: departmentID}, nil
		}))
	case "Eliminar departamento":
		return a.openForm(newForm("ELIMINAR DEPARTAMENTO", []formField{
			idField,
			{key: "id_departamento", label: "ID del departamento a eliminar", placeholder: a.departmentHint()},
		}), a.modifySubmit(func(v formValues) (staffing.ModifyCommand, error) {
			departmentID, err := parseID(v["id_departamento"])
			if err != nil {
				return nil, err
			}
			return staffing.RemoveDepartment{DepartmentID: departmentID}, nil
		}))
	case "Cambiar especialidad":
		return a.openForm(newForm("CAMBIAR ESPECIALIDAD", []formField{
			idField,
			{key: "especialidad", label: "Nueva especialidad", options: a.cat.Specialties},
		}), a.modifySubmit(func(v formValues) (staffing.ModifyCommand, error) {
			return staffing.SetSpecialty{Specialty: v["especialidad"]}, nil
		}))
	case "Cambiar turno":
		return a.openForm(newForm("CAMBIAR TURNO", []formField{
			idField,
			{key: "turno", label: "Nuevo turno", options: a.cat.Shifts},
		}), a.modifySubmit(func(v formValues) (staffing.ModifyCommand, error) {
			return staffing.SetShift{Shift: v["turno"]}, nil
		}))
	case "Cambiar jornada":
		return a.openForm(newForm("CAMBIAR JORNADA", []formField{
			idField,
			{key: "jornada", label: "Nueva jornada", options: a.cat.Schedules},
			{key: "turno", label: "Turno", options: a.cat.Shifts, when: func(v formValues) bool {
				return v["jornada"] == catalog.ScheduleShiftBased
			}},
		}), a.modifySubmit(func(v formValues) (staffing.ModifyCommand, error) {
			return staffing.SetSchedule{Schedule: v["jornada"], Shift: v["turno"]}, nil
		}))
	case "Aumentar salario base":
		return a.openForm(newForm("AUMENTAR SALARIO BASE", []formField{
			idField,
			{key: "salario", label: "Nuevo salario base", placeholder: "monto en soles"},
		}), a.modifySubmit(func(v formValues) (staffing.ModifyCommand, error) {
			amount, err := parseAmount(v["salario"])
			if err != nil {
				return nil, err
			}
			return staffing.RaiseBaseSalary{Amount: amount}, nil
		}))
	}
	return a, nil
}

func (a *App) handleReportMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.reportMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.title {
	case "Personal activo (PDF)":
		return a.showOutcome(a.rosterReport())
	case "Resumen salarial (PDF)":
		return a.openForm(newForm("RESUMEN SALARIAL", []formField{
			{key: "bono", label: "Bono mensual a aplicar", placeholder: "0", defaultValue: "0"},
		}), a.submitSalaryReport)
	case "Contratos por vencer (PDF)":
		return a.openForm(newForm("REPORTE DE CONTRATOS POR VENCER", []formField{
			{key: "dias", label: "Ventana de alerta en dias", placeholder: "60", defaultValue: "60"},
		}), a.submitExpiryReport)
	}
	return a, nil
}

// ----- form submissions -----

func (a *App) registerForm() *form {
	return newForm("REGISTRAR NUEVO PERSONAL", []formField{
		{key: "dni", label: "DNI", placeholder: "8 digitos"},
		{key: "nombre", label: "Nombre completo", placeholder: "nombre y apellidos"},
		{key: "fecha_nacimiento", label: "Fecha de nacimiento", placeholder: "dd/mm/aaaa"},
		{key: "telefono", label: "Telefono", placeholder: "9 digitos, empieza en 9"},
		{key: "rol", label: "Rol", options: a.cat.Roles},
		{key: "especialidad", label: "Especialidad", options: a.cat.Specialties, when: func(v formValues) bool {
			return v["rol"] == catalog.RoleDoctor
		}},
		{key: "departamentos", label: "Departamentos", placeholder: "IDs separados por comas, ej. 1,3"},
		{key: "jornada", label: "Jornada", options: a.cat.Schedules},
		{key: "turno", label: "Turno", options: a.cat.Shifts, when: func(v formValues) bool {
			return v["jornada"] == catalog.ScheduleShiftBased
		}},
		{key: "fecha_contratacion", label: "Fecha de contratacion", placeholder: "dd/mm/aaaa"},
		{key: "tipo_contrato", label: "Tipo de contrato", options: a.cat.ContractTypes},
		{key: "fecha_fin", label: "Fecha fin del contrato", placeholder: "dd/mm/aaaa", when: func(v formValues) bool {
			return v["tipo_contrato"] == catalog.ContractTemporary
		}},
	})
}

func (a *App) submitRegister(values formValues) outcome {
	birth, err := parseInputDate(values["fecha_nacimiento"])
	if err != nil {
		return failureOutcome(err)
	}
	hire, err := parseInputDate(values["fecha_contratacion"])
	if err != nil {
		return failureOutcome(err)
	}
	departments, err := parseIDList(values["departamentos"])
	if err != nil {
		return failureOutcome(err)
	}
	params := staffing.RegisterParams{
		DNI:          values["dni"],
		Name:         values["nombre"],
		BirthDate:    birth,
		Phone:        values["telefono"],
		Role:         values["rol"],
		Specialty:    values["especialidad"],
		Departments:  departments,
		Schedule:     values["jornada"],
		Shift:        values["turno"],
		HireDate:     hire,
		ContractType: values["tipo_contrato"],
	}
	// The base salary is fixed per role, never typed in.
	if salary, ok := a.cat.BaseSalaryFor(params.Role); ok {
		params.BaseSalary = salary
	}
	if end := values["fecha_fin"]; end != "" {
		endDate, err := parseInputDate(end)
		if err != nil {
			return failureOutcome(err)
		}
		params.ContractEnd = endDate
	}
	res := a.controller.Register(params)
	out := outcome{res: res}
	if res.OK && res.Personnel != nil {
		out.body = personnelDetail(res.Personnel)
	}
	return out
}

func (a *App) submitSearch(values formValues) outcome {
	res := a.controller.FindByDNI(values["dni"])
	out := outcome{res: res}
	if res.OK && res.Personnel != nil {
		out.body = personnelDetail(res.Personnel)
	}
	return out
}

// modifySubmit wraps a command builder into a form submission: parse the
// personnel ID, build the typed command, run Modify.
func (a *App) modifySubmit(build func(formValues) (staffing.ModifyCommand, error)) func(formValues) outcome {
	return func(values formValues) outcome {
		personnelID, err := parseID(values["id"])
		if err != nil {
			return failureOutcome(err)
		}
		cmd, err := build(values)
		if err != nil {
			return failureOutcome(err)
		}
		res := a.controller.Modify(personnelID, cmd)
		out := outcome{res: res}
		if res.OK && res.Personnel != nil {
			out.body = personnelDetail(res.Personnel)
		}
		return out
	}
}

func (a *App) submitDeactivate(values formValues) outcome {
	personnelID, err := parseID(values["id"])
	if err != nil {
		return failureOutcome(err)
	}
	date, err := parseInputDate(values["fecha_baja"])
	if err != nil {
		return failureOutcome(err)
	}
	res := a.controller.Deactivate(personnelID, date, values["motivo"])
	out := outcome{res: res}
	if res.OK && res.Personnel != nil {
		out.body = personnelDetail(res.Personnel)
	}
	return out
}

func (a *App) submitListByDepartment(values formValues) outcome {
	departmentID, err := parseID(values["id_departamento"])
	if err != nil {
		return failureOutcome(err)
	}
	res := a.controller.ListByDepartment(departmentID)
	out := outcome{res: res}
	if res.OK && len(res.Staff) > 0 {
		out.body = staffTable(res.Staff)
	}
	return out
}

func (a *App) submitContractsFor(values formValues) outcome {
	personnelID, err := parseID(values["id"])
	if err != nil {
		return failureOutcome(err)
	}
	res := a.controller.ContractsFor(personnelID)
	out := outcome{res: res}
	if res.OK && len(res.Contracts) > 0 {
		out.body = contractTable(res.Contracts)
	}
	return out
}

func (a *App) submitExpiring(values formValues) outcome {
	days, err := parseID(values["dias"])
	if err != nil {
		return failureOutcome(err)
	}
	res := a.controller.ExpiringContracts(days)
	out := outcome{res: res}
	if res.OK && len(res.Contracts) > 0 {
		out.body = contractTable(res.Contracts)
	}
	return out
}

func (a *App) submitFinalize(values formValues) outcome {
	contractID, err := parseID(values["id_contrato"])
	if err != nil {
		return failureOutcome(err)
	}
	return outcome{res: a.controller.FinalizeContract(contractID)}
}

// ----- PDF reports -----

func (a *App) rosterReport() outcome {
	res := a.controller.ListActive()
	if !res.OK || len(res.Staff) == 0 {
		return outcome{res: res}
	}
	path, err := a.reports.ActiveRoster(res.Staff)
	if err != nil {
		a.logger.Error("roster report failed", zap.Error(err))
		return failureOutcome(err)
	}
	a.logInfo("reporte de personal activo generado: %s", filepath.Base(path))
	return outcome{res: staffing.Result{OK: true, Message: fmt.Sprintf("Reporte generado: %s", path)}}
}

func (a *App) submitSalaryReport(values formValues) outcome {
	bonus, err := parseBonus(values["bono"])
	if err != nil {
		return failureOutcome(err)
	}
	res := a.controller.ListActive()
	if !res.OK || len(res.Staff) == 0 {
		return outcome{res: res}
	}
	path, err := a.reports.SalarySummary(res.Staff, bonus)
	if err != nil {
		a.logger.Error("salary report failed", zap.Error(err))
		return failureOutcome(err)
	}
	a.logInfo("resumen salarial generado: %s", filepath.Base(path))
	return outcome{res: staffing.Result{OK: true, Message: fmt.Sprintf("Reporte generado: %s", path)}}
}

func (a *App) submitExpiryReport(values formValues) outcome {
	days, err := parseID(values["dias"])
	if err != nil {
		return failureOutcome(err)
	}
	res := a.controller.ExpiringContracts(days)
	if !res.OK {
		return outcome{res: res}
	}
	path, err := a.reports.ExpiringContracts(res.Contracts, days)
	if err != nil {
		a.logger.Error("expiry report failed", zap.Error(err))
		return failureOutcome(err)
	}
	a.logInfo("reporte de contratos por vencer generado: %s", filepath.Base(path))
	return outcome{res: staffing.Result{OK: true, Message: fmt.Sprintf("Reporte generado: %s", path)}}
}

// ----- state transitions -----

func (a *App) openForm(f *form, submit func(formValues) outcome) (tea.Model, tea.Cmd) {
	a.state = stateForm
	a.activeForm = f
	a.onSubmit = submit
	a.statusMsg = "Complete los campos"
	return a, nil
}

func (a *App) showOutcome(out outcome) (tea.Model, tea.Cmd) {
	a.state = stateOutcome
	a.lastOutcome = out
	if out.res.OK {
		a.statusMsg = "Operacion completada · Enter → volver al menu"
	} else {
		a.statusMsg = "Operacion fallida · Enter → volver al menu"
	}
	return a, nil
}

func (a *App) returnToMenu(status string) (tea.Model, tea.Cmd) {
	a.state = stateMenu
	a.activeForm = nil
	a.onSubmit = nil
	a.statusMsg = status
	return a, nil
}

func (a *App) departmentHint() string {
	ids := a.cat.DepartmentIDs()
	if len(ids) == 0 {
		return "numero"
	}
	return fmt.Sprintf("%d-%d", ids[0], ids[len(ids)-1])
}

func (a *App) logInfo(format string, args ...any) {
	if a.journal == nil {
		return
	}
	a.journal.Info(format, args...)
}

// ----- rendering -----

// View renders the current screen inside the framed layout: header, body
// panel, journal tail and status footer.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⚕ HOSPITAL · RECURSOS HUMANOS")

	var content string
	switch a.state {
	case stateMenu:
		content = a.mainMenu.View()
	case stateModifyMenu:
		content = a.modifyMenu.View()
	case stateReportMenu:
		content = a.reportMenu.View()
	case stateForm:
		if a.activeForm != nil {
			content = a.activeForm.View()
		}
	case stateOutcome:
		content = a.renderOutcome()
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(maxInt(40, width-2)).
		Render(content)

	sections := []string{header, body}
	if panel := a.renderJournalPanel(); panel != "" {
		sections = append(sections, panel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderOutcome() string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	prefix := "✓"
	if !a.lastOutcome.res.OK {
		style = style.Foreground(lipgloss.Color("#FF6B6B"))
		prefix = "✗"
	}
	message := style.Render(fmt.Sprintf("%s %s", prefix, a.lastOutcome.res.Message))
	if a.lastOutcome.body == "" {
		return message
	}
	return lipgloss.JoinVertical(lipgloss.Left, message, "", a.lastOutcome.body)
}

func (a *App) renderJournalPanel() string {
	if a.journal == nil {
		return ""
	}
	lines := a.journal.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.journal.Path())
	if fileName == "." || fileName == "" {
		fileName = "operaciones"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("OPERACIONES · %s", fileName))
	tail := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, tail))
}

func failureOutcome(err error) outcome {
	return outcome{res: staffing.Result{OK: false, Message: fmt.Sprintf("Error: %v", err)}}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
