package staffing

// ModifyCommand is one supported modification of a personnel record. The set
// is closed: each supported field has its own typed command carrying its
// payload, and the controller rejects anything else.
type ModifyCommand interface {
	isModifyCommand()
}

// AddDepartment assigns an additional department to the member.
type AddDepartment struct {
	DepartmentID int
}

// RemoveDepartment drops a department assignment. The last remaining
// department cannot be removed.
type RemoveDepartment struct {
	DepartmentID int
}

// SetSpecialty changes a doctor's medical specialty.
type SetSpecialty struct {
	Specialty string
}

// SetShift moves a shift-based member to a different shift.
type SetShift struct {
	Shift string
}

// SetSchedule changes the work schedule. When the new schedule is
// shift-based a companion Shift must be supplied; otherwise any current
// shift is cleared.
type SetSchedule struct {
	Schedule string
	Shift    string
}

// RaiseBaseSalary raises the base salary. The new amount must be strictly
// greater than the current salary and within the institutional ceiling.
type RaiseBaseSalary struct {
	Amount float64
}

func (AddDepartment) isModifyCommand()    {}
func (RemoveDepartment) isModifyCommand() {}
func (SetSpecialty) isModifyCommand()     {}
func (SetShift) isModifyCommand()         {}
func (SetSchedule) isModifyCommand()      {}
func (RaiseBaseSalary) isModifyCommand()  {}
