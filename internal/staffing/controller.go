// Package staffing implements the personnel controller: the orchestration
// layer that loads entities from the document stores, applies the business
// rules and persists the outcome. Every operation returns a uniform Result;
// the console UI renders messages and payloads without ever touching the
// stores directly.
package staffing

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/rrhh/internal/catalog"
	"github.com/yourusername/rrhh/internal/docstore"
	"github.com/yourusername/rrhh/internal/hospital"
	"github.com/yourusername/rrhh/internal/journal"
	"github.com/yourusername/rrhh/internal/staff"
)

// DefaultExpiryThresholdDays is the alert window for contracts nearing their
// end date.
const DefaultExpiryThresholdDays = 60

// Controller coordinates the personnel and contract collections. It holds no
// entity state: every operation reloads from the stores, mutates an
// in-memory entity and writes the result back.
type Controller struct {
	personnel *docstore.Store
	contracts *docstore.Store
	cat       *catalog.Catalog
	journal   *journal.Journal
	logger    *zap.Logger
}

// Option customizes a Controller during construction.
type Option func(*Controller)

// WithJournal attaches the operation journal for the audit trail.
func WithJournal(j *journal.Journal) Option {
	return func(c *Controller) {
		c.journal = j
	}
}

// WithLogger attaches a logger for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New builds a controller over the personnel and contract stores.
func New(personnel, contracts *docstore.Store, cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		personnel: personnel,
		contracts: contracts,
		cat:       cat,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterParams carries the inputs for registering a staff member together
// with their initial contract. The contract starts on the hire date; a
// temporary contract additionally needs ContractEnd.
type RegisterParams struct {
	DNI         string
	Name        string
	BirthDate   time.Time
	Phone       string
	Role        string
	Specialty   string
	Departments []int
	Schedule    string
	Shift       string
	BaseSalary  float64
	HireDate    time.Time

	ContractType string
	ContractEnd  time.Time
}

// Register creates a staff member and their initial Active contract. The two
// writes are sequential and best-effort: if the contract write fails after
// the personnel write succeeded, the orphan personnel record stays and the
// problem is logged.
func (c *Controller) Register(params RegisterParams) Result {
	exists, err := c.dniExists(params.DNI)
	if err != nil {
		return c.storageFailure("register", err)
	}
	if exists {
		return failure(fmt.Sprintf("El DNI %s ya se encuentra registrado", params.DNI))
	}

	personnelID, err := c.personnel.NextID()
	if err != nil {
		return c.storageFailure("register", err)
	}

	member, err := staff.NewPersonnel(staff.PersonnelParams{
		DNI:         params.DNI,
		Name:        params.Name,
		BirthDate:   params.BirthDate,
		Phone:       params.Phone,
		ID:          personnelID,
		Role:        params.Role,
		Specialty:   params.Specialty,
		Departments: params.Departments,
		Schedule:    params.Schedule,
		Shift:       params.Shift,
		BaseSalary:  params.BaseSalary,
		Status:      catalog.StatusActive,
		HireDate:    params.HireDate,
	}, c.cat)
	if err != nil {
		return failure(fmt.Sprintf("Datos invalidos: %v", err))
	}

	contractID, err := c.contracts.NextID()
	if err != nil {
		return c.storageFailure("register", err)
	}
	contract, err := staff.NewContract(staff.ContractParams{
		ID:          contractID,
		PersonnelID: personnelID,
		Type:        params.ContractType,
		Start:       params.HireDate,
		End:         params.ContractEnd,
		BaseSalary:  params.BaseSalary,
		Status:      catalog.ContractActive,
	}, c.cat)
	if err != nil {
		return failure(fmt.Sprintf("Datos invalidos: %v", err))
	}

	if err := c.personnel.Append(member.Record()); err != nil {
		return c.storageFailure("register", err)
	}
	if err := c.contracts.Append(contract.Record()); err != nil {
		// The personnel record is already persisted; registration is not
		// transactional across the two collections.
		c.logger.Warn("contract write failed after personnel write, orphan record left",
			zap.Int("id_personal", personnelID),
			zap.Error(err))
		c.journal.Error("registro incompleto: personal %d quedo sin contrato", personnelID)
		return c.storageFailure("register", err)
	}

	c.journal.Info("personal %d registrado (DNI %s, contrato %d)", personnelID, params.DNI, contractID)
	c.logger.Info("personnel registered",
		zap.Int("id_personal", personnelID),
		zap.Int("id_contrato", contractID),
		zap.String("rol", member.Role()))

	res := success("Personal registrado exitosamente")
	res.ID = personnelID
	res.Personnel = member
	return res
}

// FindByDNI looks a staff member up by national ID.
func (c *Controller) FindByDNI(dni string) Result {
	if !staff.ValidDNI(dni) {
		return failure("Formato de DNI invalido")
	}
	records, err := c.personnel.FindByCriteria(map[string]any{"dni": dni})
	if err != nil {
		return c.storageFailure("findByDNI", err)
	}
	if len(records) == 0 {
		return failure("Personal no encontrado")
	}
	member, err := staff.PersonnelFromRecord(records[0], c.cat)
	if err != nil {
		return failure(fmt.Sprintf("Error al leer el registro: %v", err))
	}
	res := success("Personal encontrado")
	res.ID = member.ID()
	res.Personnel = member
	return res
}

// Modify applies one typed modification command to a personnel record.
func (c *Controller) Modify(personnelID int, cmd ModifyCommand) Result {
	if personnelID <= 0 {
		return failure("Formato de ID invalido")
	}
	member, res, ok := c.loadPersonnel(personnelID)
	if !ok {
		return res
	}

	var fields map[string]any
	switch command := cmd.(type) {
	case AddDepartment:
		if err := member.AssignDepartment(command.DepartmentID); err != nil {
			return failure(fmt.Sprintf("Error: %v", err))
		}
		fields = map[string]any{"departamentos": member.Departments()}

	case RemoveDepartment:
		if err := member.RemoveDepartment(command.DepartmentID); err != nil {
			return failure(fmt.Sprintf("Error: %v", err))
		}
		fields = map[string]any{"departamentos": member.Departments()}

	case SetSpecialty:
		value, res, ok := c.specialtyValue(member, command.Specialty)
		if !ok {
			return res
		}
		fields = map[string]any{"especialidad": value}

	case SetShift:
		if err := member.ChangeShift(command.Shift); err != nil {
			return failure(fmt.Sprintf("Error: %v", err))
		}
		fields = map[string]any{"turno": member.Shift()}

	case SetSchedule:
		scheduleFields, res, ok := c.scheduleFields(member, command)
		if !ok {
			return res
		}
		fields = scheduleFields

	case RaiseBaseSalary:
		if command.Amount <= member.BaseSalary() {
			return failure("Politicas del hospital: el nuevo sueldo debe ser mayor al sueldo actual")
		}
		if command.Amount > c.cat.SalaryCeiling {
			return failure("Sueldo demasiado elevado para el cargo del personal")
		}
		fields = map[string]any{"salario_base": command.Amount}

	default:
		return failure("Campo a modificar invalido")
	}

	found, err := c.personnel.Update(personnelID, fields)
	if err != nil {
		return c.storageFailure("modify", err)
	}
	if !found {
		return failure(fmt.Sprintf("No se encontro un personal con ID %d", personnelID))
	}

	c.journal.Info("personal %d modificado", personnelID)

	result := success("Datos actualizados exitosamente")
	result.ID = personnelID
	record, found, err := c.personnel.FindByID(personnelID)
	if err == nil && found {
		if updated, rerr := staff.PersonnelFromRecord(record, c.cat); rerr == nil {
			result.Personnel = updated
		}
	}
	return result
}

func (c *Controller) specialtyValue(member *staff.Personnel, specialty string) (string, Result, bool) {
	if !member.IsDoctor() {
		return "", failure("Solo los doctores pueden tener especialidades registradas"), false
	}
	value := staff.NormalizeSpecialty(specialty)
	if !c.cat.HasSpecialty(value) {
		return "", failure("Especialidad invalida"), false
	}
	if value == member.Specialty() {
		return "", failure(fmt.Sprintf("Esta especialidad ya esta registrada para el personal con ID %d", member.ID())), false
	}
	return value, Result{}, true
}

func (c *Controller) scheduleFields(member *staff.Personnel, command SetSchedule) (map[string]any, Result, bool) {
	schedule := staff.NormalizeEnum(command.Schedule)
	if !c.cat.HasSchedule(schedule) {
		return nil, failure("Jornada invalida"), false
	}
	if schedule == member.Schedule() {
		return nil, failure("Esta jornada ya esta registrada para este personal"), false
	}
	if schedule == catalog.ScheduleShiftBased {
		shift := staff.NormalizeEnum(command.Shift)
		if !c.cat.HasShift(shift) {
			return nil, failure("La jornada 'Por turnos' requiere un turno valido"), false
		}
		return map[string]any{"jornada": schedule, "turno": shift}, Result{}, true
	}
	return map[string]any{"jornada": schedule, "turno": nil}, Result{}, true
}

// Deactivate moves a staff member to Inactive, stamping the termination date
// and reason. Hospital policy forbids deleting personnel records.
func (c *Controller) Deactivate(personnelID int, date time.Time, reason string) Result {
	if personnelID <= 0 {
		return failure("Formato de ID invalido")
	}
	if date.IsZero() {
		return failure("Formato de fecha invalido")
	}
	member, res, ok := c.loadPersonnel(personnelID)
	if !ok {
		return res
	}
	if err := member.Deactivate(date, reason); err != nil {
		return failure(fmt.Sprintf("Error: %v", err))
	}

	fields := map[string]any{
		"estado":      member.Status(),
		"fecha_baja":  staff.FormatDate(member.TerminationDate()),
		"motivo_baja": member.TerminationReason(),
	}
	found, err := c.personnel.Update(personnelID, fields)
	if err != nil {
		return c.storageFailure("deactivate", err)
	}
	if !found {
		return failure(fmt.Sprintf("No se pudo inactivar el personal %d", personnelID))
	}

	c.journal.Info("personal %d dado de baja (%s)", personnelID, member.TerminationReason())
	c.logger.Info("personnel deactivated",
		zap.Int("id_personal", personnelID),
		zap.String("motivo", member.TerminationReason()))

	result := success(fmt.Sprintf("Se inactivo el personal con ID %d de forma exitosa", personnelID))
	result.ID = personnelID
	result.Personnel = member
	return result
}

// ListActive returns every active staff member. Records that fail to
// reconstruct are skipped, not fatal.
func (c *Controller) ListActive() Result {
	records, err := c.personnel.FindByCriteria(map[string]any{"estado": catalog.StatusActive})
	if err != nil {
		return c.storageFailure("listActive", err)
	}
	members := c.reconstructAll(records)
	if len(members) == 0 {
		if len(records) > 0 {
			return failure("Los registros activos encontrados estan corruptos")
		}
		return success("Actualmente no hay personal activo")
	}
	res := success(fmt.Sprintf("Se encontraron %d empleados activos", len(members)))
	res.Staff = members
	return res
}

// ListByDepartment returns the active staff assigned to a department.
func (c *Controller) ListByDepartment(departmentID int) Result {
	if departmentID <= 0 {
		return failure("Formato de ID invalido")
	}
	records, err := c.personnel.ReadAll()
	if err != nil {
		return c.storageFailure("listByDepartment", err)
	}
	var members []*staff.Personnel
	for _, record := range records {
		member, rerr := staff.PersonnelFromRecord(record, c.cat)
		if rerr != nil {
			c.logger.Debug("skipping unreadable personnel record", zap.Error(rerr))
			continue
		}
		if member.IsActive() && member.InDepartment(departmentID) {
			members = append(members, member)
		}
	}
	if len(members) == 0 {
		return failure(fmt.Sprintf("No se encontro personal en el departamento %d", departmentID))
	}
	res := success(fmt.Sprintf("Se encontraron %d empleados", len(members)))
	res.Staff = members
	return res
}

// ContractsFor returns every contract of a staff member.
func (c *Controller) ContractsFor(personnelID int) Result {
	if personnelID <= 0 {
		return failure("Formato de ID invalido")
	}
	records, err := c.contracts.FindByCriteria(map[string]any{"id_personal": personnelID})
	if err != nil {
		return c.storageFailure("contractsFor", err)
	}
	contracts := c.reconstructContracts(records)
	if len(contracts) == 0 {
		return failure(fmt.Sprintf("No se encontraron contratos para el personal %d", personnelID))
	}
	res := success(fmt.Sprintf("Se encontraron %d contratos", len(contracts)))
	res.Contracts = contracts
	return res
}

// ExpiringContracts returns the contracts whose end date falls within
// thresholdDays from today.
func (c *Controller) ExpiringContracts(thresholdDays int) Result {
	if thresholdDays <= 0 {
		thresholdDays = DefaultExpiryThresholdDays
	}
	records, err := c.contracts.ReadAll()
	if err != nil {
		return c.storageFailure("expiringContracts", err)
	}
	var expiring []*staff.Contract
	for _, contract := range c.reconstructContracts(records) {
		if contract.NearingExpiry(thresholdDays) {
			expiring = append(expiring, contract)
		}
	}
	if len(expiring) == 0 {
		return success(fmt.Sprintf("No hay contratos por vencer en los proximos %d dias", thresholdDays))
	}
	res := success(fmt.Sprintf("%d contratos vencen en los proximos %d dias", len(expiring), thresholdDays))
	res.Contracts = expiring
	return res
}

// RefreshContracts expires every temporary contract whose end date has
// passed and persists the status changes. It reports how many contracts
// flipped.
func (c *Controller) RefreshContracts() Result {
	records, err := c.contracts.ReadAll()
	if err != nil {
		return c.storageFailure("refreshContracts", err)
	}
	expired := 0
	for _, record := range records {
		contract, rerr := staff.ContractFromRecord(record, c.cat)
		if rerr != nil {
			c.logger.Debug("skipping unreadable contract record", zap.Error(rerr))
			continue
		}
		if !contract.RefreshStatus() {
			continue
		}
		if _, uerr := c.contracts.Update(contract.ID(), map[string]any{"estado": contract.Status()}); uerr != nil {
			return c.storageFailure("refreshContracts", uerr)
		}
		c.journal.Warn("contrato %d marcado como vencido", contract.ID())
		expired++
	}
	if expired == 0 {
		return success("No hay contratos vencidos por actualizar")
	}
	res := success(fmt.Sprintf("%d contratos marcados como vencidos", expired))
	res.ID = expired
	return res
}

// FinalizeContract closes a contract administratively, stamping today as its
// end date.
func (c *Controller) FinalizeContract(contractID int) Result {
	if contractID <= 0 {
		return failure("Formato de ID invalido")
	}
	record, found, err := c.contracts.FindByID(contractID)
	if err != nil {
		return c.storageFailure("finalizeContract", err)
	}
	if !found {
		return failure(fmt.Sprintf("No se encontro un contrato con ID %d", contractID))
	}
	contract, rerr := staff.ContractFromRecord(record, c.cat)
	if rerr != nil {
		return failure(fmt.Sprintf("Error al leer el contrato: %v", rerr))
	}
	if err := contract.Finalize(); err != nil {
		return failure(fmt.Sprintf("Error: %v", err))
	}

	fields := map[string]any{
		"estado":    contract.Status(),
		"fecha_fin": staff.FormatDate(contract.End()),
	}
	if _, err := c.contracts.Update(contractID, fields); err != nil {
		return c.storageFailure("finalizeContract", err)
	}

	c.journal.Info("contrato %d finalizado", contractID)

	res := success(fmt.Sprintf("Contrato %d finalizado", contractID))
	res.ID = contractID
	return res
}

func (c *Controller) dniExists(dni string) (bool, error) {
	records, err := c.personnel.FindByCriteria(map[string]any{"dni": dni})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func (c *Controller) loadPersonnel(personnelID int) (*staff.Personnel, Result, bool) {
	record, found, err := c.personnel.FindByID(personnelID)
	if err != nil {
		return nil, c.storageFailure("load", err), false
	}
	if !found {
		return nil, failure(fmt.Sprintf("No se encontro un personal con ID %d", personnelID)), false
	}
	member, rerr := staff.PersonnelFromRecord(record, c.cat)
	if rerr != nil {
		return nil, failure(fmt.Sprintf("Error al leer el registro: %v", rerr)), false
	}
	return member, Result{}, true
}

func (c *Controller) reconstructAll(records []docstore.Record) []*staff.Personnel {
	var members []*staff.Personnel
	for _, record := range records {
		member, err := staff.PersonnelFromRecord(record, c.cat)
		if err != nil {
			c.logger.Debug("skipping unreadable personnel record", zap.Error(err))
			continue
		}
		members = append(members, member)
	}
	return members
}

func (c *Controller) reconstructContracts(records []docstore.Record) []*staff.Contract {
	var contracts []*staff.Contract
	for _, record := range records {
		contract, err := staff.ContractFromRecord(record, c.cat)
		if err != nil {
			c.logger.Debug("skipping unreadable contract record", zap.Error(err))
			continue
		}
		contracts = append(contracts, contract)
	}
	return contracts
}

func (c *Controller) storageFailure(operation string, err error) Result {
	c.logger.Error("storage failure", zap.String("operation", operation), zap.Error(err))
	if hospital.IsStorage(err) {
		return failure(fmt.Sprintf("Error de almacenamiento: %v", err))
	}
	return failure(fmt.Sprintf("Error interno del sistema: %v", err))
}
