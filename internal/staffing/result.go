package staffing

import "github.com/yourusername/rrhh/internal/staff"

// Result is the uniform outcome returned by every controller operation. No
// error value crosses the controller boundary: failures set OK to false and
// carry a user-facing message.
type Result struct {
	OK      bool
	Message string

	// ID is the personnel or contract ID an operation created or touched.
	ID int

	// Personnel is the single-entity payload of lookups and modifications.
	Personnel *staff.Personnel

	// Staff is the payload of list operations.
	Staff []*staff.Personnel

	// Contracts is the payload of contract queries.
	Contracts []*staff.Contract
}

func failure(message string) Result {
	return Result{Message: message}
}

func success(message string) Result {
	return Result{OK: true, Message: message}
}
