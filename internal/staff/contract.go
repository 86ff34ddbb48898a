package staff

import (
	"time"

	"github.com/yourusername/rrhh/internal/catalog"
	"github.com/yourusername/rrhh/internal/hospital"
)

// ContractParams carries the raw construction inputs for a contract. An
// absent end date is the zero time.
type ContractParams struct {
	ID          int
	PersonnelID int
	Type        string
	Start       time.Time
	End         time.Time
	BaseSalary  float64
	Status      string
}

// Contract is one employment contract of a staff member. The personnel ID is
// a foreign key by convention; the store does not enforce it.
type Contract struct {
	id          int
	personnelID int
	contractTyp string
	start       time.Time
	end         time.Time
	baseSalary  float64
	status      string

	cat *catalog.Catalog
}

// NewContract validates params against the reference catalogs and builds a
// contract. Only temporary contracts carry an end date, and the Expired
// status is only accepted when that end date has already passed.
func NewContract(params ContractParams, cat *catalog.Catalog) (*Contract, error) {
	if params.ID <= 0 {
		return nil, hospital.NewValidation("Formato de ID de contrato invalido. Debe ser un numero entero positivo")
	}
	if params.PersonnelID <= 0 {
		return nil, hospital.NewValidation("Formato de ID de personal invalido. Debe ser un numero entero positivo")
	}

	contractType := normalizeWord(params.Type)
	if !cat.HasContractType(contractType) {
		return nil, hospital.NewValidation("Tipo de contrato no reconocido: %s", params.Type)
	}

	if params.Start.IsZero() {
		return nil, hospital.NewValidation("La fecha de inicio del contrato es obligatoria")
	}
	if isFutureDate(params.Start) {
		return nil, hospital.NewValidation("La fecha de inicio del contrato no puede ser futura")
	}

	if contractType == catalog.ContractTemporary {
		if params.End.IsZero() {
			return nil, hospital.NewValidation("Los contratos temporales deben tener fecha limite")
		}
		if !dateOnly(params.End).After(dateOnly(params.Start)) {
			return nil, hospital.NewValidation("La fecha limite debe ser mayor a la fecha de inicio del contrato")
		}
	} else if !params.End.IsZero() {
		return nil, hospital.NewValidation("Solo los contratos temporales pueden tener fecha limite")
	}

	if params.BaseSalary <= 0 {
		return nil, hospital.NewValidation("Formato de salario invalido. Debe ser un numero positivo")
	}
	if !cat.IsBaseSalary(params.BaseSalary) {
		return nil, hospital.NewValidation("El salario base no concuerda con los salarios definidos por el hospital")
	}

	status := normalizeWord(params.Status)
	if !cat.HasContractStatus(status) {
		return nil, hospital.NewValidation("Estado de contrato no reconocido: %s", params.Status)
	}
	if status == catalog.ContractExpired {
		if params.End.IsZero() || today().Before(dateOnly(params.End)) {
			return nil, hospital.NewValidation("El estado 'Vencido' solo es valido si la fecha fin ya paso")
		}
	}

	c := &Contract{
		id:          params.ID,
		personnelID: params.PersonnelID,
		contractTyp: contractType,
		start:       dateOnly(params.Start),
		baseSalary:  params.BaseSalary,
		status:      status,
		cat:         cat,
	}
	if !params.End.IsZero() {
		c.end = dateOnly(params.End)
	}
	return c, nil
}

// ID returns the contract ID.
func (c *Contract) ID() int { return c.id }

// PersonnelID returns the staff member this contract belongs to.
func (c *Contract) PersonnelID() int { return c.personnelID }

// Type returns the contract type.
func (c *Contract) Type() string { return c.contractTyp }

// Start returns the start date.
func (c *Contract) Start() time.Time { return c.start }

// End returns the end date (zero for non-temporary contracts).
func (c *Contract) End() time.Time { return c.end }

// BaseSalary returns the contracted base salary.
func (c *Contract) BaseSalary() float64 { return c.baseSalary }

// Status returns the lifecycle status.
func (c *Contract) Status() string { return c.status }

// RemainingDays returns the days left until the end date.
func (c *Contract) RemainingDays() (int, error) {
	if c.end.IsZero() {
		return 0, hospital.NewInvalidState("El contrato %d no es un contrato temporal (no posee fecha fin)", c.id)
	}
	if c.end.Before(today()) {
		return 0, hospital.NewInvalidState("El contrato %d se encuentra vencido. Fecha de vencimiento: %s", c.id, FormatDate(c.end))
	}
	return daysUntil(c.end), nil
}

// NearingExpiry reports whether today falls within thresholdDays of the end
// date. Contracts without an end date never near expiry.
func (c *Contract) NearingExpiry(thresholdDays int) bool {
	if c.end.IsZero() {
		return false
	}
	alertStart := c.end.AddDate(0, 0, -thresholdDays)
	now := today()
	return !now.Before(alertStart) && !now.After(c.end)
}

// RefreshStatus flips a temporary contract to Expired once its end date has
// passed. It reports whether the status changed; repeated calls and calls on
// non-temporary contracts are no-ops.
func (c *Contract) RefreshStatus() bool {
	if c.contractTyp != catalog.ContractTemporary || c.end.IsZero() {
		return false
	}
	if today().Before(c.end) {
		return false
	}
	if c.status == catalog.ContractExpired {
		return false
	}
	c.status = catalog.ContractExpired
	return true
}

// Finalize closes the contract administratively, stamping today as the end
// date. Expired and already-finalized contracts cannot be finalized.
func (c *Contract) Finalize() error {
	if c.status == catalog.ContractExpired {
		return hospital.NewInvalidState("El contrato %d es de tipo temporal y ya se encuentra vencido", c.id)
	}
	if c.status == catalog.ContractFinalized {
		return hospital.NewInvalidState("El contrato %d ya se encuentra finalizado", c.id)
	}
	c.status = catalog.ContractFinalized
	c.end = today()
	return nil
}

// Record serializes the contract to the stored representation.
func (c *Contract) Record() map[string]any {
	return map[string]any{
		"id_contrato":  c.id,
		"id_personal":  c.personnelID,
		"tipo":         c.contractTyp,
		"fecha_inicio": FormatDate(c.start),
		"fecha_fin":    nullableDate(c.end),
		"salario_base": c.baseSalary,
		"estado":       c.status,
	}
}

// ContractFromRecord rebuilds a contract from its stored representation.
// Failures come back wrapped in ErrReconstruction.
func ContractFromRecord(record map[string]any, cat *catalog.Catalog) (*Contract, error) {
	fields := newRecordReader(record)
	params := ContractParams{
		ID:          fields.num("id_contrato"),
		PersonnelID: fields.num("id_personal"),
		Type:        fields.str("tipo"),
		Start:       fields.date("fecha_inicio"),
		End:         fields.optDate("fecha_fin"),
		BaseSalary:  fields.float("salario_base"),
		Status:      fields.str("estado"),
	}
	if err := fields.err(); err != nil {
		return nil, reconstructionError("contrato", err)
	}
	c, err := NewContract(params, cat)
	if err != nil {
		return nil, reconstructionError("contrato", err)
	}
	return c, nil
}
