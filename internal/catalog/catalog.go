// Package catalog holds the read-only reference data the hospital business
// rules validate against: roles, specialties, the department catalog, the
// contract and schedule enumerations and the base-salary table. The catalog
// is supplied to the entities as configuration; nothing in the domain layer
// hard-codes these lists.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Literal values the business rules pivot on. The catalog lists may grow,
// but these specific literals carry fixed meaning in the state machines and
// in the stored JSON, so they are named here rather than configured.
const (
	RoleDoctor = "Doctor"

	ScheduleShiftBased = "Por turnos"

	StatusActive   = "Activo"
	StatusInactive = "Inactivo"

	ContractTemporary = "Temporal"
	ContractActive    = "Activo"
	ContractExpired   = "Vencido"
	ContractFinalized = "Finalizado"
)

const defaultCatalogYAML = `# Catalogos de referencia del hospital.
# Los literales se conservan en espanol: son los valores que viajan a los
# archivos JSON de datos y deben coincidir con los registros existentes.

roles:
  - Doctor
  - Enfermera
  - Administrativo

especialidades:
  - Medicina General
  - Pediatria
  - Cardiologia

departamentos:
  1: {nombre: Emergencia, descripcion: "Atención de urgencias y emergencias médicas"}
  2: {nombre: Pediatría, descripcion: "Atención médica para niños y adolescentes"}
  3: {nombre: Cardiología, descripcion: "Diagnóstico y tratamiento de enfermedades del corazón"}
  4: {nombre: Traumatología, descripcion: "Tratamiento de lesiones del sistema musculoesquelético"}
  5: {nombre: Ginecología, descripcion: "Atención de la salud femenina y reproductiva"}
  6: {nombre: Medicina General, descripcion: "Consultas médicas generales"}
  7: {nombre: Farmacia, descripcion: "Dispensación y control de medicamentos"}
  8: {nombre: Laboratorio, descripcion: "Análisis clínicos y diagnósticos"}
  9: {nombre: Radiología, descripcion: "Estudios de imagen y diagnóstico por imagen"}
  10: {nombre: Administración, descripcion: "Gestión administrativa del hospital"}

tipos_contrato:
  - Temporal
  - Indefinido
  - Por honorarios

estados_contrato:
  - Activo
  - Vencido
  - Finalizado

jornadas:
  - Medio tiempo
  - Tiempo completo
  - Por turnos

turnos:
  - Manana
  - Tarde
  - Noche

estados_personal:
  - Activo
  - Inactivo

motivos_baja:
  - Renuncia
  - Despido
  - Fin de contrato

salarios_base:
  Doctor: 5000.00
  Enfermera: 2500.00
  Administrativo: 1800.00

# Tope institucional para aumentos de salario.
salario_maximo: 20000.00
`

// Department is one entry of the fixed department catalog.
type Department struct {
	Name        string `yaml:"nombre"`
	Description string `yaml:"descripcion"`
}

// Catalog models the catalogos.yaml document.
type Catalog struct {
	Roles              []string           `yaml:"roles"`
	Specialties        []string           `yaml:"especialidades"`
	Departments        map[int]Department `yaml:"departamentos"`
	ContractTypes      []string           `yaml:"tipos_contrato"`
	ContractStatuses   []string           `yaml:"estados_contrato"`
	Schedules          []string           `yaml:"jornadas"`
	Shifts             []string           `yaml:"turnos"`
	StaffStatuses      []string           `yaml:"estados_personal"`
	TerminationReasons []string           `yaml:"motivos_baja"`
	BaseSalaries       map[string]float64 `yaml:"salarios_base"`
	SalaryCeiling      float64            `yaml:"salario_maximo"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal([]byte(defaultCatalogYAML), &cat); err != nil {
		return nil, fmt.Errorf("catalog: parse built-in defaults: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("catalog: built-in defaults: %w", err)
	}
	return &cat, nil
}

// Load reads the catalog document at path. A missing file is bootstrapped
// with the built-in defaults first, so a fresh data directory starts from
// the canonical hospital catalogs.
func Load(path string) (*Catalog, error) {
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return &cat, nil
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("catalog: stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("catalog: ensure catalog dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultCatalogYAML), 0o644); err != nil {
		return fmt.Errorf("catalog: write default catalog: %w", err)
	}
	return nil
}

func (c *Catalog) validate() error {
	lists := []struct {
		name   string
		values []string
	}{
		{"roles", c.Roles},
		{"especialidades", c.Specialties},
		{"tipos_contrato", c.ContractTypes},
		{"estados_contrato", c.ContractStatuses},
		{"jornadas", c.Schedules},
		{"turnos", c.Shifts},
		{"estados_personal", c.StaffStatuses},
		{"motivos_baja", c.TerminationReasons},
	}
	for _, list := range lists {
		if len(list.values) == 0 {
			return fmt.Errorf("%s must not be empty", list.name)
		}
		for _, v := range list.values {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s contains a blank entry", list.name)
			}
		}
	}
	if len(c.Departments) == 0 {
		return fmt.Errorf("departamentos must not be empty")
	}
	for id, dep := range c.Departments {
		if id <= 0 {
			return fmt.Errorf("departamentos: id %d must be positive", id)
		}
		if strings.TrimSpace(dep.Name) == "" {
			return fmt.Errorf("departamentos[%d]: nombre is required", id)
		}
	}
	for _, role := range c.Roles {
		if _, ok := c.BaseSalaries[role]; !ok {
			return fmt.Errorf("salarios_base: missing entry for role %s", role)
		}
	}
	for role, salary := range c.BaseSalaries {
		if salary <= 0 {
			return fmt.Errorf("salarios_base[%s]: must be positive", role)
		}
	}
	if c.SalaryCeiling <= 0 {
		return fmt.Errorf("salario_maximo must be positive")
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// HasRole reports whether role is a recognized staff role.
func (c *Catalog) HasRole(role string) bool { return contains(c.Roles, role) }

// HasSpecialty reports whether specialty is a recognized medical specialty.
func (c *Catalog) HasSpecialty(specialty string) bool { return contains(c.Specialties, specialty) }

// HasContractType reports whether t is a recognized contract type.
func (c *Catalog) HasContractType(t string) bool { return contains(c.ContractTypes, t) }

// HasContractStatus reports whether s is a recognized contract status.
func (c *Catalog) HasContractStatus(s string) bool { return contains(c.ContractStatuses, s) }

// HasSchedule reports whether s is a recognized work schedule.
func (c *Catalog) HasSchedule(s string) bool { return contains(c.Schedules, s) }

// HasShift reports whether s is a recognized shift.
func (c *Catalog) HasShift(s string) bool { return contains(c.Shifts, s) }

// HasStaffStatus reports whether s is a recognized personnel status.
func (c *Catalog) HasStaffStatus(s string) bool { return contains(c.StaffStatuses, s) }

// HasTerminationReason reports whether r is a recognized termination reason.
func (c *Catalog) HasTerminationReason(r string) bool { return contains(c.TerminationReasons, r) }

// BaseSalaryFor returns the fixed base salary for a role.
func (c *Catalog) BaseSalaryFor(role string) (float64, bool) {
	salary, ok := c.BaseSalaries[role]
	return salary, ok
}

// IsBaseSalary reports whether amount matches any role's fixed base salary.
func (c *Catalog) IsBaseSalary(amount float64) bool {
	for _, salary := range c.BaseSalaries {
		if salary == amount {
			return true
		}
	}
	return false
}

// DepartmentByID returns the catalog entry for a department ID.
func (c *Catalog) DepartmentByID(id int) (Department, bool) {
	dep, ok := c.Departments[id]
	return dep, ok
}

// DepartmentIDs returns the catalog's department IDs in ascending order.
func (c *Catalog) DepartmentIDs() []int {
	ids := make([]int, 0, len(c.Departments))
	for id := range c.Departments {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
