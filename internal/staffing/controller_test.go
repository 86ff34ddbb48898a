package staffing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/yourusername/rrhh/internal/catalog"
	"github.com/yourusername/rrhh/internal/docstore"
)

func newTestController(t *testing.T) (*Controller, *docstore.Store, *docstore.Store) {
	t.Helper()
	dir := t.TempDir()
	personnel, err := docstore.New(filepath.Join(dir, "personal.json"))
	if err != nil {
		t.Fatal(err)
	}
	contracts, err := docstore.New(filepath.Join(dir, "contratos.json"))
	if err != nil {
		t.Fatal(err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	return New(personnel, contracts, cat), personnel, contracts
}

func doctorRegistration() RegisterParams {
	return RegisterParams{
		DNI:          "12345678",
		Name:         "Ana Torres Quispe",
		BirthDate:    time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		Phone:        "987654321",
		Role:         "Doctor",
		Specialty:    "Pediatria",
		Departments:  []int{2},
		Schedule:     "Tiempo completo",
		BaseSalary:   5000.00,
		HireDate:     time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
		ContractType: "Indefinido",
	}
}

func nurseRegistration() RegisterParams {
	p := doctorRegistration()
	p.DNI = "87654321"
	p.Phone = "912345678"
	p.Role = "Enfermera"
	p.Specialty = ""
	p.Departments = []int{1}
	p.BaseSalary = 2500.00
	return p
}

func TestRegisterCreatesPersonnelAndContract(t *testing.T) {
	c, personnel, contracts := newTestController(t)

	res := c.Register(doctorRegistration())
	if !res.OK {
		t.Fatalf("Register failed: %s", res.Message)
	}
	if res.ID != 1 {
		t.Fatalf("id_personal = %d, want 1", res.ID)
	}

	record, found, err := personnel.FindByID(1)
	if err != nil || !found {
		t.Fatalf("personnel record not persisted: found=%v err=%v", found, err)
	}
	if record["estado"] != "Activo" || record["dni"] != "12345678" {
		t.Fatalf("wrong personnel record: %v", record)
	}

	contractRecord, found, err := contracts.FindByID(1)
	if err != nil || !found {
		t.Fatalf("contract record not persisted: found=%v err=%v", found, err)
	}
	if contractRecord["estado"] != "Activo" || contractRecord["fecha_fin"] != nil {
		t.Fatalf("wrong contract record: %v", contractRecord)
	}
	if contractRecord["id_personal"] != float64(1) {
		t.Fatalf("contract not linked: %v", contractRecord["id_personal"])
	}
}

func TestRegisterDuplicateDNIWritesNothing(t *testing.T) {
	c, personnel, contracts := newTestController(t)

	if res := c.Register(doctorRegistration()); !res.OK {
		t.Fatalf("first registration failed: %s", res.Message)
	}

	dup := doctorRegistration()
	dup.Name = "Otra Persona Distinta"
	res := c.Register(dup)
	if res.OK {
		t.Fatal("duplicate DNI registration should fail")
	}

	people, _ := personnel.ReadAll()
	deals, _ := contracts.ReadAll()
	if len(people) != 1 || len(deals) != 1 {
		t.Fatalf("collections mutated on failure: %d personnel, %d contracts", len(people), len(deals))
	}
}

func TestRegisterInvalidEntityWritesNothing(t *testing.T) {
	c, personnel, contracts := newTestController(t)

	params := doctorRegistration()
	params.Specialty = ""
	if res := c.Register(params); res.OK {
		t.Fatal("doctor without specialty should fail")
	}

	people, _ := personnel.ReadAll()
	deals, _ := contracts.ReadAll()
	if len(people) != 0 || len(deals) != 0 {
		t.Fatal("collections mutated on validation failure")
	}
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	c, _, _ := newTestController(t)

	first := c.Register(doctorRegistration())
	second := c.Register(nurseRegistration())
	if !first.OK || !second.OK {
		t.Fatalf("registrations failed: %s / %s", first.Message, second.Message)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d", first.ID, second.ID)
	}
}

func TestFindByDNI(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Register(doctorRegistration())

	res := c.FindByDNI("12345678")
	if !res.OK || res.Personnel == nil {
		t.Fatalf("FindByDNI failed: %s", res.Message)
	}
	if res.Personnel.Name() != "Ana Torres Quispe" {
		t.Fatalf("wrong member: %s", res.Personnel.Name())
	}

	if res := c.FindByDNI("99999999"); res.OK {
		t.Fatal("unknown DNI should not be found")
	}
	if res := c.FindByDNI("123"); res.OK {
		t.Fatal("malformed DNI should fail")
	}
}

func TestModifyAddAndRemoveDepartment(t *testing.T) {
	c, personnel, _ := newTestController(t)
	c.Register(doctorRegistration())

	res := c.Modify(1, AddDepartment{DepartmentID: 3})
	if !res.OK {
		t.Fatalf("AddDepartment failed: %s", res.Message)
	}
	record, _, _ := personnel.FindByID(1)
	depts := record["departamentos"].([]any)
	if len(depts) != 2 {
		t.Fatalf("departamentos = %v", depts)
	}

	if res := c.Modify(1, AddDepartment{DepartmentID: 3}); res.OK {
		t.Fatal("duplicate department should fail")
	}

	res = c.Modify(1, RemoveDepartment{DepartmentID: 2})
	if !res.OK {
		t.Fatalf("RemoveDepartment failed: %s", res.Message)
	}
	if res := c.Modify(1, RemoveDepartment{DepartmentID: 3}); res.OK {
		t.Fatal("removing the sole department should fail")
	}
}

func TestModifySpecialty(t *testing.T) {
	c, personnel, _ := newTestController(t)
	c.Register(doctorRegistration())
	c.Register(nurseRegistration())

	res := c.Modify(1, SetSpecialty{Specialty: "cardiologia"})
	if !res.OK {
		t.Fatalf("SetSpecialty failed: %s", res.Message)
	}
	record, _, _ := personnel.FindByID(1)
	if record["especialidad"] != "Cardiologia" {
		t.Fatalf("especialidad = %v", record["especialidad"])
	}

	if res := c.Modify(1, SetSpecialty{Specialty: "Cardiologia"}); res.OK {
		t.Fatal("unchanged specialty should fail")
	}
	if res := c.Modify(1, SetSpecialty{Specialty: "Telepatia"}); res.OK {
		t.Fatal("unknown specialty should fail")
	}
	if res := c.Modify(2, SetSpecialty{Specialty: "Pediatria"}); res.OK {
		t.Fatal("specialty on a nurse should fail")
	}
}

func TestModifySchedule(t *testing.T) {
	c, personnel, _ := newTestController(t)
	c.Register(nurseRegistration())

	if res := c.Modify(1, SetSchedule{Schedule: "Por turnos"}); res.OK {
		t.Fatal("shift-based schedule without shift should fail")
	}

	res := c.Modify(1, SetSchedule{Schedule: "Por turnos", Shift: "Noche"})
	if !res.OK {
		t.Fatalf("SetSchedule failed: %s", res.Message)
	}
	record, _, _ := personnel.FindByID(1)
	if record["jornada"] != "Por turnos" || record["turno"] != "Noche" {
		t.Fatalf("wrong record: %v", record)
	}

	res = c.Modify(1, SetShift{Shift: "Tarde"})
	if !res.OK {
		t.Fatalf("SetShift failed: %s", res.Message)
	}

	// Leaving the shift-based schedule clears the shift.
	res = c.Modify(1, SetSchedule{Schedule: "Medio tiempo"})
	if !res.OK {
		t.Fatalf("SetSchedule failed: %s", res.Message)
	}
	record, _, _ = personnel.FindByID(1)
	if record["turno"] != nil {
		t.Fatalf("turno should be cleared, got %v", record["turno"])
	}
}

func TestModifyRaiseBaseSalary(t *testing.T) {
	c, personnel, _ := newTestController(t)
	c.Register(doctorRegistration())

	if res := c.Modify(1, RaiseBaseSalary{Amount: 5000.00}); res.OK {
		t.Fatal("equal salary should fail")
	}
	if res := c.Modify(1, RaiseBaseSalary{Amount: 4000.00}); res.OK {
		t.Fatal("lower salary should fail")
	}
	if res := c.Modify(1, RaiseBaseSalary{Amount: 20001.00}); res.OK {
		t.Fatal("salary above the ceiling should fail")
	}

	res := c.Modify(1, RaiseBaseSalary{Amount: 6000.00})
	if !res.OK {
		t.Fatalf("raise failed: %s", res.Message)
	}
	record, _, _ := personnel.FindByID(1)
	if record["salario_base"] != 6000.00 {
		t.Fatalf("salario_base = %v", record["salario_base"])
	}
}

func TestModifyUnknownCommandLeavesStorageUntouched(t *testing.T) {
	c, personnel, _ := newTestController(t)
	c.Register(doctorRegistration())
	before, _, _ := personnel.FindByID(1)

	res := c.Modify(1, nil)
	if res.OK {
		t.Fatal("nil command should fail")
	}

	after, _, _ := personnel.FindByID(1)
	if len(before) != len(after) {
		t.Fatal("storage mutated by rejected command")
	}
	for k, v := range before {
		switch v.(type) {
		case []any:
		default:
			if after[k] != v {
				t.Fatalf("field %s changed: %v -> %v", k, v, after[k])
			}
		}
	}
}

func TestModifyMissingPersonnel(t *testing.T) {
	c, _, _ := newTestController(t)
	if res := c.Modify(42, AddDepartment{DepartmentID: 1}); res.OK {
		t.Fatal("missing personnel should fail")
	}
	if res := c.Modify(0, AddDepartment{DepartmentID: 1}); res.OK {
		t.Fatal("invalid id should fail")
	}
}

func TestDeactivate(t *testing.T) {
	c, personnel, _ := newTestController(t)
	c.Register(doctorRegistration())

	res := c.Deactivate(1, time.Now(), "Renuncia")
	if !res.OK {
		t.Fatalf("Deactivate failed: %s", res.Message)
	}
	record, _, _ := personnel.FindByID(1)
	if record["estado"] != "Inactivo" || record["motivo_baja"] != "Renuncia" {
		t.Fatalf("wrong record after deactivation: %v", record)
	}
	if record["fecha_baja"] == nil {
		t.Fatal("fecha_baja not stamped")
	}

	if res := c.Deactivate(1, time.Now(), "Despido"); res.OK {
		t.Fatal("double deactivation should fail")
	}
}

func TestListActive(t *testing.T) {
	c, _, _ := newTestController(t)

	res := c.ListActive()
	if !res.OK || len(res.Staff) != 0 {
		t.Fatalf("empty collection: %+v", res)
	}

	c.Register(doctorRegistration())
	c.Register(nurseRegistration())
	c.Deactivate(2, time.Now(), "Renuncia")

	res = c.ListActive()
	if !res.OK || len(res.Staff) != 1 {
		t.Fatalf("expected 1 active member, got %d (%s)", len(res.Staff), res.Message)
	}
	if res.Staff[0].DNI() != "12345678" {
		t.Fatalf("wrong member: %s", res.Staff[0].DNI())
	}
}

func TestListByDepartment(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Register(doctorRegistration())     // department 2
	c.Register(nurseRegistration())      // department 1
	c.Modify(1, AddDepartment{DepartmentID: 1})

	res := c.ListByDepartment(1)
	if !res.OK || len(res.Staff) != 2 {
		t.Fatalf("expected 2 members in department 1, got %d (%s)", len(res.Staff), res.Message)
	}

	c.Deactivate(2, time.Now(), "Despido")
	res = c.ListByDepartment(1)
	if !res.OK || len(res.Staff) != 1 {
		t.Fatalf("inactive members must be filtered, got %d", len(res.Staff))
	}

	if res := c.ListByDepartment(9); res.OK {
		t.Fatal("empty department should report not found")
	}
}

func TestContractsForAndExpiry(t *testing.T) {
	c, _, contracts := newTestController(t)
	c.Register(doctorRegistration())

	res := c.ContractsFor(1)
	if !res.OK || len(res.Contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d (%s)", len(res.Contracts), res.Message)
	}

	// A temporary contract ending in 30 days for the same member.
	end := time.Now().AddDate(0, 0, 30)
	if err := contracts.Append(docstore.Record{
		"id_contrato":  2,
		"id_personal":  1,
		"tipo":         "Temporal",
		"fecha_inicio": time.Now().AddDate(0, -6, 0).Format("2006-01-02"),
		"fecha_fin":    end.Format("2006-01-02"),
		"salario_base": 5000.00,
		"estado":       "Activo",
	}); err != nil {
		t.Fatal(err)
	}

	res = c.ExpiringContracts(60)
	if !res.OK || len(res.Contracts) != 1 {
		t.Fatalf("expected 1 expiring contract, got %d (%s)", len(res.Contracts), res.Message)
	}
	if res.Contracts[0].ID() != 2 {
		t.Fatalf("wrong contract: %d", res.Contracts[0].ID())
	}

	res = c.ExpiringContracts(10)
	if len(res.Contracts) != 0 {
		t.Fatalf("no contract should expire within 10 days, got %d", len(res.Contracts))
	}
}

func TestRefreshContracts(t *testing.T) {
	c, _, contracts := newTestController(t)

	if err := contracts.Append(docstore.Record{
		"id_contrato":  1,
		"id_personal":  1,
		"tipo":         "Temporal",
		"fecha_inicio": time.Now().AddDate(-1, 0, 0).Format("2006-01-02"),
		"fecha_fin":    time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
		"salario_base": 2500.00,
		"estado":       "Activo",
	}); err != nil {
		t.Fatal(err)
	}

	res := c.RefreshContracts()
	if !res.OK || res.ID != 1 {
		t.Fatalf("expected 1 expired contract, got %+v", res)
	}
	record, _, _ := contracts.FindByID(1)
	if record["estado"] != "Vencido" {
		t.Fatalf("estado = %v", record["estado"])
	}

	// Second pass finds nothing to do.
	res = c.RefreshContracts()
	if !res.OK || res.ID != 0 {
		t.Fatalf("second refresh should be a no-op, got %+v", res)
	}
}

func TestFinalizeContract(t *testing.T) {
	c, _, contracts := newTestController(t)
	c.Register(doctorRegistration())

	res := c.FinalizeContract(1)
	if !res.OK {
		t.Fatalf("FinalizeContract failed: %s", res.Message)
	}
	record, _, _ := contracts.FindByID(1)
	if record["estado"] != "Finalizado" || record["fecha_fin"] == nil {
		t.Fatalf("wrong record: %v", record)
	}

	if res := c.FinalizeContract(1); res.OK {
		t.Fatal("double finalize should fail")
	}
	if res := c.FinalizeContract(42); res.OK {
		t.Fatal("missing contract should fail")
	}
}
