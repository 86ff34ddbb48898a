// Package report renders PDF reports from the staff collections: the active
// roster and a monthly salary summary. Files land in the reports directory
// with a date-stamped name.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/yourusername/rrhh/internal/staff"
)

// Generator writes PDF reports into one output directory.
type Generator struct {
	dir string
}

// NewGenerator builds a generator rooted at dir.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

// ActiveRoster renders one line per active staff member: ID, DNI, name,
// role, schedule and status. Returns the written file path.
func (g *Generator) ActiveRoster(members []*staff.Personnel) (string, error) {
	path, err := g.outputPath("personal-activo")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Personal activo del hospital")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	g.rosterRow(pdf, "ID", "DNI", "Nombre", "Rol", "Jornada")
	pdf.SetFont("Helvetica", "", 10)
	for _, member := range members {
		g.rosterRow(pdf,
			fmt.Sprintf("%d", member.ID()),
			member.DNI(),
			member.Name(),
			member.Role(),
			member.Schedule(),
		)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d empleados activos", len(members)))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// SalarySummary renders the monthly salary of each member (base plus bonus)
// and the aggregate payroll total. Returns the written file path.
func (g *Generator) SalarySummary(members []*staff.Personnel, bonus float64) (string, error) {
	path, err := g.outputPath("resumen-salarial")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Resumen salarial mensual")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generado: %s  |  Bono aplicado: S/. %.2f", time.Now().Format("2006-01-02"), bonus))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(20, 7, "ID")
	pdf.Cell(70, 7, "Nombre")
	pdf.Cell(40, 7, "Rol")
	pdf.Cell(40, 7, "Salario mensual")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)

	total := 0.0
	for _, member := range members {
		salary, err := member.MonthlySalary(bonus)
		if err != nil {
			return "", fmt.Errorf("report: salary for %d: %w", member.ID(), err)
		}
		total += salary
		pdf.Cell(20, 7, fmt.Sprintf("%d", member.ID()))
		pdf.Cell(70, 7, member.Name())
		pdf.Cell(40, 7, member.Role())
		pdf.Cell(40, 7, fmt.Sprintf("S/. %.2f", salary))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Planilla total: S/. %.2f", total))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// ExpiringContracts renders the contracts whose end date falls inside the
// alert window. Returns the written file path.
func (g *Generator) ExpiringContracts(contracts []*staff.Contract, thresholdDays int) (string, error) {
	path, err := g.outputPath("contratos-por-vencer")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Contratos por vencer")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Ventana de alerta: %d dias", thresholdDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(25, 7, "Contrato")
	pdf.Cell(25, 7, "Personal")
	pdf.Cell(40, 7, "Tipo")
	pdf.Cell(40, 7, "Fecha fin")
	pdf.Cell(30, 7, "Dias restantes")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)

	for _, contract := range contracts {
		remaining := "-"
		if days, err := contract.RemainingDays(); err == nil {
			remaining = fmt.Sprintf("%d", days)
		}
		pdf.Cell(25, 7, fmt.Sprintf("%d", contract.ID()))
		pdf.Cell(25, 7, fmt.Sprintf("%d", contract.PersonnelID()))
		pdf.Cell(40, 7, contract.Type())
		pdf.Cell(40, 7, staff.FormatDate(contract.End()))
		pdf.Cell(30, 7, remaining)
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

func (g *Generator) rosterRow(pdf *gofpdf.Fpdf, id, dni, name, role, schedule string) {
	pdf.Cell(15, 7, id)
	pdf.Cell(30, 7, dni)
	pdf.Cell(65, 7, name)
	pdf.Cell(35, 7, role)
	pdf.Cell(40, 7, schedule)
	pdf.Ln(7)
}

func (g *Generator) outputPath(name string) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("report: ensure output dir: %w", err)
	}
	file := fmt.Sprintf("%s-%s.pdf", name, time.Now().Format("20060102"))
	return filepath.Join(g.dir, file), nil
}
