package payroll

import (
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/shopspring/decimal"
)

// CalculationResult holds the money figures produced for one employee-month.
// The invariant net = basic + allowances - deductions holds unless the
// subtraction went negative and was clamped.
type CalculationResult struct {
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
}

// Calculator prorates a salary structure by attendance. It is pure: no I/O,
// no clock, deterministic for a given structure and attendance.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

var two = decimal.NewFromInt(2)

// Calculate derives the payable figures. A non-positive working-day count
// zeroes the daily rate, so attendance has no effect and only allowances
// minus deductions remain. Negative intermediates clamp to zero; absences
// can never drive a salary below zero.
func (c *Calculator) Calculate(structure salarystructure.SalaryStructure, att payroll.Attendance) CalculationResult {
	dailyRate := decimal.Zero
	if att.TotalWorkingDays > 0 {
		dailyRate = structure.BasicSalary.Div(decimal.NewFromInt(int64(att.TotalWorkingDays)))
	}
	halfDayRate := dailyRate.Div(two)

	earnedBasic := dailyRate.Mul(decimal.NewFromInt(int64(att.PresentDays))).
		Add(halfDayRate.Mul(decimal.NewFromInt(int64(att.HalfDays))))
	salaryLoss := dailyRate.Mul(decimal.NewFromInt(int64(att.AbsentDays + att.Leaves)))

	netBasic := earnedBasic.Sub(salaryLoss)
	if netBasic.IsNegative() {
		netBasic = decimal.Zero
	}

	allowances := structure.TotalAllowances()
	deductions := structure.TotalDeductions()

	netSalary := netBasic.Add(allowances).Sub(deductions)
	if netSalary.IsNegative() {
		netSalary = decimal.Zero
	}

	return CalculationResult{
		BasicSalary: netBasic,
		Allowances:  allowances,
		Deductions:  deductions,
		NetSalary:   netSalary,
	}
}
