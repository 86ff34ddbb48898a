package staff

import (
	"encoding/json"
	"testing"

	"github.com/yourusername/rrhh/internal/hospital"
)

func emergencyParams() DepartmentParams {
	return DepartmentParams{
		ID:          1,
		Name:        "Emergencia",
		Description: "Atencion de urgencias y emergencias medicas",
		HeadID:      1,
		Members:     []int{1, 2, 3},
	}
}

func TestNewDepartmentValid(t *testing.T) {
	d, err := NewDepartment(emergencyParams())
	if err != nil {
		t.Fatalf("NewDepartment returned error: %v", err)
	}
	if d.MemberCount() != 3 || d.HeadID() != 1 {
		t.Fatalf("wrong state: members=%d jefe=%d", d.MemberCount(), d.HeadID())
	}
}

func TestDepartmentValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DepartmentParams)
	}{
		{"id invalido", func(p *DepartmentParams) { p.ID = 0 }},
		{"nombre corto", func(p *DepartmentParams) { p.Name = "Lab" }},
		{"descripcion corta", func(p *DepartmentParams) { p.Description = "Corta" }},
		{"jefe invalido", func(p *DepartmentParams) { p.HeadID = -1 }},
		{"sin personal", func(p *DepartmentParams) { p.Members = nil }},
		{"personal negativo", func(p *DepartmentParams) { p.Members = []int{1, 0} }},
		{"jefe fuera de la lista", func(p *DepartmentParams) { p.HeadID = 9 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := emergencyParams()
			tc.mutate(&params)
			if _, err := NewDepartment(params); !hospital.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAssignHead(t *testing.T) {
	d, err := NewDepartment(emergencyParams())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AssignHead(9); !hospital.IsInvalidState(err) {
		t.Fatalf("non-member head should fail, got %v", err)
	}
	if err := d.AssignHead(1); !hospital.IsInvalidState(err) {
		t.Fatalf("reassigning the current head should fail, got %v", err)
	}
	if err := d.AssignHead(2); err != nil {
		t.Fatalf("AssignHead returned error: %v", err)
	}
	if d.HeadID() != 2 {
		t.Fatalf("jefe = %d", d.HeadID())
	}
}

func TestAddAndRemoveMember(t *testing.T) {
	d, err := NewDepartment(emergencyParams())
	if err != nil {
		t.Fatal(err)
	}

	if err := d.AddMember(2); !hospital.IsInvalidState(err) {
		t.Fatalf("duplicate member should fail, got %v", err)
	}
	if err := d.AddMember(4); err != nil {
		t.Fatalf("AddMember returned error: %v", err)
	}

	if err := d.RemoveMember(9); !hospital.IsInvalidState(err) {
		t.Fatalf("removing an absent member should fail, got %v", err)
	}
	if err := d.RemoveMember(1); !hospital.IsInvalidState(err) {
		t.Fatalf("removing the head should fail, got %v", err)
	}
	if err := d.RemoveMember(4); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
}

func TestRemoveSoleMemberFails(t *testing.T) {
	d, err := NewDepartment(DepartmentParams{
		ID:      7,
		Name:    "Farmacia",
		HeadID:  5,
		Members: []int{5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveMember(5); !hospital.IsInvalidState(err) {
		t.Fatalf("removing the sole member should fail, got %v", err)
	}
}

func TestMembersAccessorReturnsCopy(t *testing.T) {
	d, err := NewDepartment(emergencyParams())
	if err != nil {
		t.Fatal(err)
	}
	members := d.Members()
	members[0] = 99
	if d.Members()[0] != 1 {
		t.Fatal("internal roster was aliased by the accessor")
	}
}

func TestDepartmentRoundTripIsIdempotent(t *testing.T) {
	d, err := NewDepartment(emergencyParams())
	if err != nil {
		t.Fatal(err)
	}
	first, err := json.Marshal(d.Record())
	if err != nil {
		t.Fatal(err)
	}
	var stored map[string]any
	if err := json.Unmarshal(first, &stored); err != nil {
		t.Fatal(err)
	}
	rebuilt, err := DepartmentFromRecord(stored)
	if err != nil {
		t.Fatalf("DepartmentFromRecord returned error: %v", err)
	}
	second, err := json.Marshal(rebuilt.Record())
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatalf("round trip not idempotent:\n%s\n%s", first, second)
	}
}
