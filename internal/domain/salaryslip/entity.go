package salaryslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalarySlip is a one-shot numbered document derived from a payroll record.
// The money figures are copied at generation time and never resynced.
type SalarySlip struct {
	ID         string
	PayrollID  string
	EmployeeID string
	Month      string // payroll month, YYYY-MM

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal

	PresentDays int
	AbsentDays  int
	HalfDays    int
	Leaves      int

	// SlipNumber is SS/YYYY/MM/NNNN, scoped to the calendar year-month of
	// generation (not the payroll month).
	SlipNumber string

	EmailSent   bool
	EmailSentAt *time.Time
	Notes       *string

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
