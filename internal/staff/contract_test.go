package staff

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/yourusername/rrhh/internal/hospital"
)

func permanentContractParams() ContractParams {
	return ContractParams{
		ID:          1,
		PersonnelID: 1,
		Type:        "Indefinido",
		Start:       time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
		BaseSalary:  5000.00,
		Status:      "Activo",
	}
}

func temporaryContractParams(end time.Time) ContractParams {
	p := permanentContractParams()
	p.Type = "Temporal"
	p.End = end
	return p
}

func TestNewContractValid(t *testing.T) {
	cat := testCatalog(t)
	c, err := NewContract(permanentContractParams(), cat)
	if err != nil {
		t.Fatalf("NewContract returned error: %v", err)
	}
	if c.Status() != "Activo" || !c.End().IsZero() {
		t.Fatalf("wrong state: estado=%q fin=%v", c.Status(), c.End())
	}
}

func TestContractValidationFailures(t *testing.T) {
	cat := testCatalog(t)
	future := time.Now().AddDate(1, 0, 0)
	cases := []struct {
		name   string
		params ContractParams
	}{
		{"id invalido", func() ContractParams { p := permanentContractParams(); p.ID = 0; return p }()},
		{"personal invalido", func() ContractParams { p := permanentContractParams(); p.PersonnelID = -1; return p }()},
		{"tipo desconocido", func() ContractParams { p := permanentContractParams(); p.Type = "Eventual"; return p }()},
		{"inicio futuro", func() ContractParams { p := permanentContractParams(); p.Start = future; return p }()},
		{"temporal sin fin", func() ContractParams { p := permanentContractParams(); p.Type = "Temporal"; return p }()},
		{"fin antes de inicio", temporaryContractParams(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))},
		{"indefinido con fin", func() ContractParams { p := permanentContractParams(); p.End = future; return p }()},
		{"salario no tabulado", func() ContractParams { p := permanentContractParams(); p.BaseSalary = 4321.00; return p }()},
		{"estado desconocido", func() ContractParams { p := permanentContractParams(); p.Status = "Pausado"; return p }()},
		{"vencido sin fecha pasada", func() ContractParams {
			p := temporaryContractParams(future)
			p.Status = "Vencido"
			return p
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewContract(tc.params, cat); !hospital.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRemainingDays(t *testing.T) {
	cat := testCatalog(t)

	c, err := NewContract(temporaryContractParams(time.Now().AddDate(0, 0, 30)), cat)
	if err != nil {
		t.Fatal(err)
	}
	days, err := c.RemainingDays()
	if err != nil {
		t.Fatalf("RemainingDays returned error: %v", err)
	}
	if days < 29 || days > 30 {
		t.Fatalf("days = %d, want ~30", days)
	}

	permanent, _ := NewContract(permanentContractParams(), cat)
	if _, err := permanent.RemainingDays(); !hospital.IsInvalidState(err) {
		t.Fatalf("permanent contract should fail, got %v", err)
	}

	expired, err := NewContract(temporaryContractParams(time.Now().AddDate(0, 0, -10)), cat)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := expired.RemainingDays(); !hospital.IsInvalidState(err) {
		t.Fatalf("past end date should fail, got %v", err)
	}
}

func TestNearingExpiry(t *testing.T) {
	cat := testCatalog(t)

	soon, _ := NewContract(temporaryContractParams(time.Now().AddDate(0, 0, 30)), cat)
	if !soon.NearingExpiry(60) {
		t.Fatal("contract ending in 30 days should near expiry at 60")
	}
	if soon.NearingExpiry(10) {
		t.Fatal("contract ending in 30 days should not near expiry at 10")
	}

	permanent, _ := NewContract(permanentContractParams(), cat)
	if permanent.NearingExpiry(365) {
		t.Fatal("contract without end date never nears expiry")
	}
}

func TestRefreshStatusIsIdempotent(t *testing.T) {
	cat := testCatalog(t)

	c, err := NewContract(temporaryContractParams(time.Now().AddDate(0, 0, -5)), cat)
	if err != nil {
		t.Fatal(err)
	}
	if !c.RefreshStatus() {
		t.Fatal("first refresh past the end date should expire the contract")
	}
	if c.Status() != "Vencido" {
		t.Fatalf("estado = %q", c.Status())
	}
	if c.RefreshStatus() {
		t.Fatal("second refresh must be a no-op")
	}

	permanent, _ := NewContract(permanentContractParams(), cat)
	if permanent.RefreshStatus() {
		t.Fatal("permanent contract must never expire via refresh")
	}
	if permanent.Status() != "Activo" {
		t.Fatalf("estado = %q", permanent.Status())
	}
}

func TestFinalize(t *testing.T) {
	cat := testCatalog(t)

	c, err := NewContract(temporaryContractParams(time.Now().AddDate(0, 0, 90)), cat)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if c.Status() != "Finalizado" {
		t.Fatalf("estado = %q", c.Status())
	}
	if FormatDate(c.End()) != FormatDate(time.Now()) {
		t.Fatalf("end date not stamped to today: %v", c.End())
	}
	if err := c.Finalize(); !hospital.IsInvalidState(err) {
		t.Fatalf("double finalize should fail, got %v", err)
	}

	expired, _ := NewContract(temporaryContractParams(time.Now().AddDate(0, 0, -5)), cat)
	expired.RefreshStatus()
	if err := expired.Finalize(); !hospital.IsInvalidState(err) {
		t.Fatalf("finalizing an expired contract should fail, got %v", err)
	}
}

func TestContractRoundTripIsIdempotent(t *testing.T) {
	cat := testCatalog(t)
	c, err := NewContract(temporaryContractParams(time.Now().AddDate(0, 6, 0)), cat)
	if err != nil {
		t.Fatal(err)
	}

	first, err := json.Marshal(c.Record())
	if err != nil {
		t.Fatal(err)
	}
	var stored map[string]any
	if err := json.Unmarshal(first, &stored); err != nil {
		t.Fatal(err)
	}
	rebuilt, err := ContractFromRecord(stored, cat)
	if err != nil {
		t.Fatalf("ContractFromRecord returned error: %v", err)
	}
	second, err := json.Marshal(rebuilt.Record())
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatalf("round trip not idempotent:\n%s\n%s", first, second)
	}
}

func TestContractFromRecordReportsCorruption(t *testing.T) {
	cat := testCatalog(t)
	c, _ := NewContract(permanentContractParams(), cat)

	record := c.Record()
	record["fecha_inicio"] = "10/01/2023"
	if _, err := ContractFromRecord(record, cat); !errors.Is(err, ErrReconstruction) {
		t.Fatalf("bad date format should report reconstruction error, got %v", err)
	}
}
