package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// SlipDocument carries everything the PDF needs; the generator does no
// lookups of its own.
type SlipDocument struct {
	SlipNumber  string
	Month       string
	EmployeeID  string
	FullName    string
	Department  string
	Designation string

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal

	PresentDays int
	AbsentDays  int
	HalfDays    int
	Leaves      int

	Notes string
}

// RenderSlip produces a single-page A4 salary slip.
func RenderSlip(doc SlipDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Slip")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Slip No: %s", doc.SlipNumber))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Pay Period: %s", doc.Month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 8, "Employee")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s (%s)", doc.FullName, doc.EmployeeID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("%s, %s", doc.Designation, doc.Department))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 8, "Attendance")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Present: %d    Absent: %d    Half Days: %d    Leaves: %d",
		doc.PresentDays, doc.AbsentDays, doc.HalfDays, doc.Leaves))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 8, "Earnings & Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Basic Salary: %s", doc.BasicSalary.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Allowances: %s", doc.Allowances.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Deductions: %s", doc.Deductions.StringFixed(2)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: %s", doc.NetSalary.StringFixed(2)))

	if doc.Notes != "" {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Notes: %s", doc.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render slip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
