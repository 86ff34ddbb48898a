package staff

import (
	"strings"

	"github.com/yourusername/rrhh/internal/hospital"
)

// DepartmentParams carries the raw construction inputs for a department.
type DepartmentParams struct {
	ID          int
	Name        string
	Description string
	HeadID      int
	Members     []int
}

// Department is one organizational unit. The roster is never empty and the
// head is always a roster member.
type Department struct {
	id          int
	name        string
	description string
	headID      int
	members     []int
}

// NewDepartment validates params and builds a department.
func NewDepartment(params DepartmentParams) (*Department, error) {
	if params.ID <= 0 {
		return nil, hospital.NewValidation("Formato invalido del ID del departamento: %d. Debe ser un numero entero positivo", params.ID)
	}

	name := strings.TrimSpace(params.Name)
	if len([]rune(name)) < 5 {
		return nil, hospital.NewValidation("El nombre del departamento debe tener al menos 5 caracteres")
	}

	description := strings.TrimSpace(params.Description)
	if description != "" && len([]rune(description)) < 10 {
		return nil, hospital.NewValidation("La descripcion del departamento debe tener al menos 10 caracteres")
	}

	if params.HeadID <= 0 {
		return nil, hospital.NewValidation("Formato invalido del ID del jefe de departamento: %d", params.HeadID)
	}

	if len(params.Members) == 0 {
		return nil, hospital.NewValidation("El departamento debe tener al menos un personal asignado")
	}
	headPresent := false
	for _, member := range params.Members {
		if member <= 0 {
			return nil, hospital.NewValidation("Los IDs del personal deben ser enteros positivos")
		}
		if member == params.HeadID {
			headPresent = true
		}
	}
	if !headPresent {
		return nil, hospital.NewValidation("El jefe designado (ID %d) debe estar incluido en la lista de personal asignado", params.HeadID)
	}

	return &Department{
		id:          params.ID,
		name:        normalizeWord(name),
		description: normalizeWord(description),
		headID:      params.HeadID,
		members:     append([]int(nil), params.Members...),
	}, nil
}

// ID returns the department ID.
func (d *Department) ID() int { return d.id }

// Name returns the department name.
func (d *Department) Name() string { return d.name }

// Description returns the optional description ("" when absent).
func (d *Department) Description() string { return d.description }

// HeadID returns the current head of department.
func (d *Department) HeadID() int { return d.headID }

// Members returns a copy of the roster. Mutating the returned slice never
// affects the entity.
func (d *Department) Members() []int {
	return append([]int(nil), d.members...)
}

// MemberCount returns the roster size.
func (d *Department) MemberCount() int { return len(d.members) }

// HasMember reports whether a staff member belongs to the roster.
func (d *Department) HasMember(personnelID int) bool {
	for _, member := range d.members {
		if member == personnelID {
			return true
		}
	}
	return false
}

// AssignHead promotes an existing roster member to head of department.
func (d *Department) AssignHead(personnelID int) error {
	if personnelID <= 0 {
		return hospital.NewValidation("El ID del personal debe ser un numero entero positivo")
	}
	if !d.HasMember(personnelID) {
		return hospital.NewInvalidState("No se puede asignar como jefe al personal %d. Debe estar registrado en el departamento primero", personnelID)
	}
	if d.headID == personnelID {
		return hospital.NewInvalidState("El personal %d ya se encuentra asignado como jefe del departamento", personnelID)
	}
	d.headID = personnelID
	return nil
}

// AddMember adds a staff member to the roster.
func (d *Department) AddMember(personnelID int) error {
	if personnelID <= 0 {
		return hospital.NewValidation("El ID del personal debe ser un numero entero positivo")
	}
	if d.HasMember(personnelID) {
		return hospital.NewInvalidState("El personal %d ya se encuentra registrado en el departamento %s", personnelID, d.name)
	}
	d.members = append(d.members, personnelID)
	return nil
}

// RemoveMember drops a staff member from the roster. The sole remaining
// member and the current head can never be removed.
func (d *Department) RemoveMember(personnelID int) error {
	if personnelID <= 0 {
		return hospital.NewValidation("El ID del personal debe ser un numero entero positivo")
	}
	if !d.HasMember(personnelID) {
		return hospital.NewInvalidState("El personal %d no se encuentra asignado al departamento %s", personnelID, d.name)
	}
	if len(d.members) == 1 {
		return hospital.NewInvalidState("El departamento no puede quedar sin personal")
	}
	if personnelID == d.headID {
		return hospital.NewInvalidState("No se puede eliminar al jefe del departamento (ID %d). Debe cambiarlo por otro personal primero", personnelID)
	}
	for i, member := range d.members {
		if member == personnelID {
			d.members = append(d.members[:i], d.members[i+1:]...)
			break
		}
	}
	return nil
}

// Record serializes the department to the stored representation.
func (d *Department) Record() map[string]any {
	return map[string]any{
		"id_departamento":   d.id,
		"nombre":            d.name,
		"descripcion":       nullableString(d.description),
		"id_jefe":           d.headID,
		"personal_asignado": d.Members(),
	}
}

// DepartmentFromRecord rebuilds a department from its stored representation.
// Failures come back wrapped in ErrReconstruction.
func DepartmentFromRecord(record map[string]any) (*Department, error) {
	fields := newRecordReader(record)
	params := DepartmentParams{
		ID:          fields.num("id_departamento"),
		Name:        fields.str("nombre"),
		Description: fields.optStr("descripcion"),
		HeadID:      fields.num("id_jefe"),
		Members:     fields.intList("personal_asignado"),
	}
	if err := fields.err(); err != nil {
		return nil, reconstructionError("departamento", err)
	}
	d, err := NewDepartment(params)
	if err != nil {
		return nil, reconstructionError("departamento", err)
	}
	return d, nil
}
