package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if !cat.HasRole("Doctor") || !cat.HasRole("Enfermera") || !cat.HasRole("Administrativo") {
		t.Fatalf("missing roles: %v", cat.Roles)
	}
	if !cat.HasSpecialty("Pediatria") {
		t.Fatalf("missing specialty: %v", cat.Specialties)
	}
	if len(cat.Departments) != 10 {
		t.Fatalf("expected 10 departments, got %d", len(cat.Departments))
	}
	if dep, ok := cat.DepartmentByID(1); !ok || dep.Name != "Emergencia" {
		t.Fatalf("department 1 = %+v, ok=%v", dep, ok)
	}
	if salary, ok := cat.BaseSalaryFor("Doctor"); !ok || salary != 5000.00 {
		t.Fatalf("doctor base salary = %v, ok=%v", salary, ok)
	}
	if !cat.IsBaseSalary(1800.00) {
		t.Fatal("1800.00 should match the administrative base salary")
	}
	if cat.IsBaseSalary(1234.56) {
		t.Fatal("1234.56 matches no role base salary")
	}
	if cat.SalaryCeiling != 20000.00 {
		t.Fatalf("salary ceiling = %v", cat.SalaryCeiling)
	}
}

func TestLoadBootstrapsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "catalogos.yaml")
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("catalog file was not bootstrapped: %v", statErr)
	}
	if !cat.HasTerminationReason("Renuncia") {
		t.Fatalf("bootstrapped catalog incomplete: %v", cat.TerminationReasons)
	}
}

func TestLoadParsesCustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogos.yaml")
	doc := strings.TrimSpace(`
roles: [Doctor]
especialidades: [Cardiologia]
departamentos:
  3: {nombre: Cardiología, descripcion: "Corazón"}
tipos_contrato: [Temporal]
estados_contrato: [Activo, Vencido, Finalizado]
jornadas: [Por turnos]
turnos: [Noche]
estados_personal: [Activo, Inactivo]
motivos_baja: [Renuncia]
salarios_base:
  Doctor: 6000.00
salario_maximo: 25000.00
`)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if salary, _ := cat.BaseSalaryFor("Doctor"); salary != 6000.00 {
		t.Fatalf("doctor base salary = %v", salary)
	}
	if ids := cat.DepartmentIDs(); len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("department ids = %v", ids)
	}
}

func TestLoadRejectsIncompleteCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogos.yaml")
	doc := strings.TrimSpace(`
roles: [Doctor, Enfermera]
especialidades: [Pediatria]
departamentos:
  1: {nombre: Emergencia}
tipos_contrato: [Temporal]
estados_contrato: [Activo]
jornadas: [Tiempo completo]
turnos: [Manana]
estados_personal: [Activo, Inactivo]
motivos_baja: [Despido]
salarios_base:
  Doctor: 5000.00
salario_maximo: 20000.00
`)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for role without base salary")
	}
}
