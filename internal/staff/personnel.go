package staff

import (
	"time"

	"github.com/yourusername/rrhh/internal/catalog"
	"github.com/yourusername/rrhh/internal/hospital"
)

// PersonnelParams carries the raw construction inputs for a staff member.
// Optional strings use "" and optional dates use the zero time.
type PersonnelParams struct {
	DNI       string
	Name      string
	BirthDate time.Time
	Phone     string

	ID          int
	Role        string
	Specialty   string
	Departments []int
	Schedule    string
	Shift       string
	BaseSalary  float64
	Status      string
	HireDate    time.Time

	TerminationDate   time.Time
	TerminationReason string
}

// Personnel is one validated staff member. Instances only exist in a
// consistent state: construction and every mutator enforce the full rule set.
type Personnel struct {
	person Person

	id          int
	role        string
	specialty   string
	departments []int
	schedule    string
	shift       string
	baseSalary  float64
	status      string
	hireDate    time.Time

	terminationDate   time.Time
	terminationReason string

	cat *catalog.Catalog
}

// NewPersonnel validates params against the reference catalogs and builds a
// staff member. Validation is fail-fast: the first violated rule is returned.
func NewPersonnel(params PersonnelParams, cat *catalog.Catalog) (*Personnel, error) {
	person, err := newPerson(params.DNI, params.Name, params.BirthDate, params.Phone)
	if err != nil {
		return nil, err
	}

	if params.ID <= 0 {
		return nil, hospital.NewValidation("Formato invalido del ID del personal. Debe ser un numero entero positivo")
	}

	role := normalizeWord(params.Role)
	if !cat.HasRole(role) {
		return nil, hospital.NewValidation("Formato invalido del rol del personal: %s", params.Role)
	}

	specialty := normalizeTitle(params.Specialty)
	if role == catalog.RoleDoctor {
		if specialty == "" {
			return nil, hospital.NewValidation("Los doctores deben tener una especialidad")
		}
		if !cat.HasSpecialty(specialty) {
			return nil, hospital.NewValidation("Especialidad no reconocida: %s", params.Specialty)
		}
	} else if specialty != "" {
		return nil, hospital.NewValidation("Solamente los doctores pueden tener especialidades en su registro")
	}

	if len(params.Departments) == 0 {
		return nil, hospital.NewValidation("El personal debe tener al menos un departamento asignado")
	}
	for _, dept := range params.Departments {
		if dept <= 0 {
			return nil, hospital.NewValidation("Los IDs de departamentos deben ser enteros positivos")
		}
	}

	schedule := normalizeWord(params.Schedule)
	if !cat.HasSchedule(schedule) {
		return nil, hospital.NewValidation("Jornada no reconocida: %s", params.Schedule)
	}

	shift := normalizeWord(params.Shift)
	if schedule == catalog.ScheduleShiftBased {
		if shift == "" {
			return nil, hospital.NewValidation("El personal con jornada de 'Por turnos' debe tener un turno asignado")
		}
		if !cat.HasShift(shift) {
			return nil, hospital.NewValidation("Turno no reconocido: %s", params.Shift)
		}
	} else if shift != "" {
		return nil, hospital.NewValidation("Solamente el personal con jornada de 'Por turnos' puede tener un turno")
	}

	if params.BaseSalary < 0 {
		return nil, hospital.NewValidation("Formato invalido del salario base. Debe ser un numero positivo")
	}
	if base, ok := cat.BaseSalaryFor(role); !ok || params.BaseSalary != base {
		return nil, hospital.NewValidation("El salario %.2f no concuerda con el salario base definido para un personal '%s'", params.BaseSalary, role).
			With("rol", role).
			With("salario", params.BaseSalary)
	}

	status := normalizeWord(params.Status)
	if !cat.HasStaffStatus(status) {
		return nil, hospital.NewValidation("Estado de personal no reconocido: %s", params.Status)
	}

	if params.HireDate.IsZero() {
		return nil, hospital.NewValidation("La fecha de contratacion es obligatoria")
	}
	if isFutureDate(params.HireDate) {
		return nil, hospital.NewValidation("La fecha de contratacion no puede ser futura")
	}

	reason := normalizeWord(params.TerminationReason)
	if status == catalog.StatusActive {
		if !params.TerminationDate.IsZero() {
			return nil, hospital.NewValidation("Personal activo no puede tener fecha de baja")
		}
		if reason != "" {
			return nil, hospital.NewValidation("Personal activo no puede tener motivo de baja")
		}
	} else {
		if params.TerminationDate.IsZero() {
			return nil, hospital.NewValidation("Personal inactivo debe tener fecha de baja")
		}
		if dateOnly(params.TerminationDate).Before(dateOnly(params.HireDate)) {
			return nil, hospital.NewValidation("La fecha de baja no puede ser anterior a la fecha de contratacion")
		}
		if isFutureDate(params.TerminationDate) {
			return nil, hospital.NewValidation("La fecha de baja no puede ser futura")
		}
		if reason == "" {
			return nil, hospital.NewValidation("Personal inactivo debe tener motivo de baja")
		}
		if !cat.HasTerminationReason(reason) {
			return nil, hospital.NewValidation("Motivo de baja no reconocido: %s", params.TerminationReason)
		}
	}

	p := &Personnel{
		person:      person,
		id:          params.ID,
		role:        role,
		specialty:   specialty,
		departments: append([]int(nil), params.Departments...),
		schedule:    schedule,
		shift:       shift,
		baseSalary:  params.BaseSalary,
		status:      status,
		hireDate:    dateOnly(params.HireDate),
		cat:         cat,
	}
	if status == catalog.StatusInactive {
		p.terminationDate = dateOnly(params.TerminationDate)
		p.terminationReason = reason
	}
	return p, nil
}

// Person returns the shared identity fields.
func (p *Personnel) Person() Person { return p.person }

// DNI returns the national ID.
func (p *Personnel) DNI() string { return p.person.DNI }

// Name returns the full name.
func (p *Personnel) Name() string { return p.person.Name }

// ID returns the personnel ID.
func (p *Personnel) ID() int { return p.id }

// Role returns the staff role.
func (p *Personnel) Role() string { return p.role }

// Specialty returns the medical specialty, or "" for non-doctors.
func (p *Personnel) Specialty() string { return p.specialty }

// Departments returns a copy of the assigned department IDs. Mutating the
// returned slice never affects the entity.
func (p *Personnel) Departments() []int {
	return append([]int(nil), p.departments...)
}

// Schedule returns the work schedule.
func (p *Personnel) Schedule() string { return p.schedule }

// Shift returns the assigned shift, or "" when the schedule is not
// shift-based.
func (p *Personnel) Shift() string { return p.shift }

// BaseSalary returns the base salary.
func (p *Personnel) BaseSalary() float64 { return p.baseSalary }

// Status returns the lifecycle status.
func (p *Personnel) Status() string { return p.status }

// HireDate returns the hire date.
func (p *Personnel) HireDate() time.Time { return p.hireDate }

// TerminationDate returns the termination date (zero while active).
func (p *Personnel) TerminationDate() time.Time { return p.terminationDate }

// TerminationReason returns the termination reason ("" while active).
func (p *Personnel) TerminationReason() string { return p.terminationReason }

// IsActive reports whether the member is active.
func (p *Personnel) IsActive() bool {
	return p.status == catalog.StatusActive
}

// IsDoctor reports whether the member's role is Doctor.
func (p *Personnel) IsDoctor() bool {
	return p.role == catalog.RoleDoctor
}

// InDepartment reports whether the member is assigned to a department.
func (p *Personnel) InDepartment(departmentID int) bool {
	for _, d := range p.departments {
		if d == departmentID {
			return true
		}
	}
	return false
}

// MonthlySalary returns the base salary plus a non-negative bonus.
func (p *Personnel) MonthlySalary(bonus float64) (float64, error) {
	if bonus < 0 {
		return 0, hospital.NewValidation("El bono no puede ser negativo: %.2f", bonus)
	}
	return p.baseSalary + bonus, nil
}

// AssignDepartment adds a department to the member's assignment list.
func (p *Personnel) AssignDepartment(departmentID int) error {
	if departmentID <= 0 {
		return hospital.NewValidation("ID de departamento invalido: %d. Debe ser un numero entero positivo", departmentID)
	}
	if !p.IsActive() {
		return hospital.NewInvalidState("No se le puede asignar un departamento a un personal inactivo")
	}
	if p.InDepartment(departmentID) {
		return hospital.NewInvalidState("El departamento %d ya esta asignado al personal %d", departmentID, p.id)
	}
	p.departments = append(p.departments, departmentID)
	return nil
}

// RemoveDepartment drops a department from the assignment list. The last
// remaining department can never be removed.
func (p *Personnel) RemoveDepartment(departmentID int) error {
	if departmentID <= 0 {
		return hospital.NewValidation("ID de departamento invalido: %d. Debe ser un numero entero positivo", departmentID)
	}
	if !p.IsActive() {
		return hospital.NewInvalidState("No se puede remover un departamento a un personal inactivo")
	}
	if !p.InDepartment(departmentID) {
		return hospital.NewInvalidState("El departamento %d no se encuentra asignado al personal %s", departmentID, p.person.DNI)
	}
	if len(p.departments) == 1 {
		return hospital.NewInvalidState("No se puede remover el unico departamento de un personal")
	}
	for i, d := range p.departments {
		if d == departmentID {
			p.departments = append(p.departments[:i], p.departments[i+1:]...)
			break
		}
	}
	return nil
}

// ChangeShift moves a shift-based member to a different shift.
func (p *Personnel) ChangeShift(newShift string) error {
	shift := normalizeWord(newShift)
	if shift == "" {
		return hospital.NewValidation("Formato de turno invalido. Debe ser texto y no puede estar vacio")
	}
	if !p.cat.HasShift(shift) {
		return hospital.NewValidation("Turno no reconocido: %s", newShift)
	}
	if !p.IsActive() {
		return hospital.NewInvalidState("No se puede cambiar el turno a un personal inactivo")
	}
	if p.schedule != catalog.ScheduleShiftBased {
		return hospital.NewInvalidState("El personal %s no cuenta con una jornada por turnos", p.person.DNI)
	}
	if p.shift == shift {
		return hospital.NewInvalidState("El personal %s ya cuenta con el turno %s", p.person.DNI, shift)
	}
	p.shift = shift
	return nil
}

// Deactivate moves the member to Inactive, stamping the termination date and
// reason. Hospital policy never hard-deletes personnel records.
func (p *Personnel) Deactivate(date time.Time, reason string) error {
	if date.IsZero() {
		return hospital.NewValidation("La fecha de baja es obligatoria")
	}
	normalized := normalizeWord(reason)
	if normalized == "" {
		return hospital.NewValidation("Formato de motivo invalido. Debe ser texto y no puede estar vacio")
	}
	if !p.cat.HasTerminationReason(normalized) {
		return hospital.NewValidation("Motivo de baja no reconocido: %s", reason)
	}
	if !p.IsActive() {
		return hospital.NewInvalidState("El personal %s ya se encuentra inactivo", p.person.DNI)
	}
	if dateOnly(date).Before(p.hireDate) {
		return hospital.NewInvalidState("La fecha de baja no puede ser menor a la fecha de contratacion")
	}
	if isFutureDate(date) {
		return hospital.NewInvalidState("La fecha de baja no puede ser futura")
	}
	p.status = catalog.StatusInactive
	p.terminationDate = dateOnly(date)
	p.terminationReason = normalized
	return nil
}

// Record serializes the member to the stored representation. Optional fields
// serialize as null.
func (p *Personnel) Record() map[string]any {
	return map[string]any{
		"dni":                p.person.DNI,
		"nombre":             p.person.Name,
		"fecha_nacimiento":   FormatDate(p.person.BirthDate),
		"telefono":           p.person.Phone,
		"id_personal":        p.id,
		"rol":                p.role,
		"especialidad":       nullableString(p.specialty),
		"departamentos":      p.Departments(),
		"jornada":            p.schedule,
		"turno":              nullableString(p.shift),
		"salario_base":       p.baseSalary,
		"estado":             p.status,
		"fecha_contratacion": FormatDate(p.hireDate),
		"fecha_baja":         nullableDate(p.terminationDate),
		"motivo_baja":        nullableString(p.terminationReason),
	}
}

// PersonnelFromRecord rebuilds a member from its stored representation. Any
// failure, missing field or business-rule violation alike, comes back wrapped
// in ErrReconstruction so callers can tell a corrupt record from bad input.
func PersonnelFromRecord(record map[string]any, cat *catalog.Catalog) (*Personnel, error) {
	fields := newRecordReader(record)
	params := PersonnelParams{
		DNI:               fields.str("dni"),
		Name:              fields.str("nombre"),
		BirthDate:         fields.date("fecha_nacimiento"),
		Phone:             fields.str("telefono"),
		ID:                fields.num("id_personal"),
		Role:              fields.str("rol"),
		Specialty:         fields.optStr("especialidad"),
		Departments:       fields.intList("departamentos"),
		Schedule:          fields.str("jornada"),
		Shift:             fields.optStr("turno"),
		BaseSalary:        fields.float("salario_base"),
		Status:            fields.str("estado"),
		HireDate:          fields.date("fecha_contratacion"),
		TerminationDate:   fields.optDate("fecha_baja"),
		TerminationReason: fields.optStr("motivo_baja"),
	}
	if err := fields.err(); err != nil {
		return nil, reconstructionError("personal", err)
	}
	p, err := NewPersonnel(params, cat)
	if err != nil {
		return nil, reconstructionError("personal", err)
	}
	return p, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return FormatDate(t)
}
