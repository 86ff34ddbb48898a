package hospital

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindHelpers(t *testing.T) {
	cases := []struct {
		err   error
		check func(error) bool
		want  string
	}{
		{NewValidation("dni invalido"), IsValidation, "validation"},
		{NewInvalidState("ya inactivo"), IsInvalidState, "invalid-state"},
		{NewNotFound("personal %d no existe", 7), IsNotFound, "not-found"},
		{NewStorage("no se pudo escribir"), IsStorage, "storage"},
	}
	for _, tc := range cases {
		if !tc.check(tc.err) {
			t.Fatalf("expected %s kind for %v", tc.want, tc.err)
		}
	}
	if IsValidation(NewStorage("x")) {
		t.Fatal("storage error misclassified as validation")
	}
	if IsNotFound(errors.New("plain")) {
		t.Fatal("plain error misclassified as not-found")
	}
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	inner := NewInvalidState("el contrato 3 ya se encuentra finalizado")
	wrapped := fmt.Errorf("finalize: %w", inner)
	if !IsInvalidState(wrapped) {
		t.Fatalf("expected wrapped error to keep its kind")
	}
	var herr *Error
	if !errors.As(wrapped, &herr) {
		t.Fatal("errors.As failed on wrapped *Error")
	}
	if herr.Kind != KindInvalidState {
		t.Fatalf("wrong kind: %v", herr.Kind)
	}
}

func TestContextAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorage("no se pudo guardar la coleccion").Wrap(cause).
		With("collection", "personal").
		With("records", 12)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	if err.Context["collection"] != "personal" {
		t.Fatalf("missing context: %v", err.Context)
	}
	if err.Context["records"] != 12 {
		t.Fatalf("missing context: %v", err.Context)
	}
}
