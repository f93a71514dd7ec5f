package payroll

import (
	"testing"

	domain "github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func structureWithBasic(basic int64) salarystructure.SalaryStructure {
	return salarystructure.SalaryStructure{
		BasicSalary: decimal.NewFromInt(basic),
	}
}

func TestCalculateFullAttendance(t *testing.T) {
	calc := NewCalculator()

	result := calc.Calculate(structureWithBasic(22000), domain.Attendance{
		PresentDays:      22,
		TotalWorkingDays: 22,
	})

	assert.Equal(t, "22000.00", result.BasicSalary.StringFixed(2))
	assert.Equal(t, "22000.00", result.NetSalary.StringFixed(2))
	assert.Equal(t, "0.00", result.Allowances.StringFixed(2))
	assert.Equal(t, "0.00", result.Deductions.StringFixed(2))
}

func TestCalculateProration(t *testing.T) {
	calc := NewCalculator()

	// daily rate 1000: earned 10*1000 + 2*500 = 11000, loss 10*1000 = 10000
	result := calc.Calculate(structureWithBasic(22000), domain.Attendance{
		PresentDays:      10,
		AbsentDays:       10,
		HalfDays:         2,
		TotalWorkingDays: 22,
	})

	assert.Equal(t, "1000.00", result.BasicSalary.StringFixed(2))
	assert.Equal(t, "1000.00", result.NetSalary.StringFixed(2))
}

func TestCalculateLeavesCountAsLoss(t *testing.T) {
	calc := NewCalculator()

	result := calc.Calculate(structureWithBasic(22000), domain.Attendance{
		PresentDays:      20,
		Leaves:           2,
		TotalWorkingDays: 22,
	})

	assert.Equal(t, "18000.00", result.NetSalary.StringFixed(2))
}

func TestCalculateNeverNegative(t *testing.T) {
	calc := NewCalculator()

	// Absences far beyond working days must clamp to zero, not go negative.
	result := calc.Calculate(structureWithBasic(22000), domain.Attendance{
		PresentDays:      1,
		AbsentDays:       40,
		Leaves:           10,
		TotalWorkingDays: 22,
	})

	assert.Equal(t, "0.00", result.BasicSalary.StringFixed(2))
	assert.Equal(t, "0.00", result.NetSalary.StringFixed(2))
	assert.False(t, result.NetSalary.IsNegative())
}

func TestCalculateZeroWorkingDays(t *testing.T) {
	calc := NewCalculator()

	structure := structureWithBasic(22000)
	structure.HRA = decimal.NewFromInt(5000)
	structure.ProvidentFund = decimal.NewFromInt(1800)

	// Zero working days disables proration; only allowances minus
	// deductions remain payable.
	result := calc.Calculate(structure, domain.Attendance{
		PresentDays:      22,
		TotalWorkingDays: 0,
	})

	assert.Equal(t, "0.00", result.BasicSalary.StringFixed(2))
	assert.Equal(t, "3200.00", result.NetSalary.StringFixed(2))
}

func TestCalculateDeductionsExceedEarnings(t *testing.T) {
	calc := NewCalculator()

	structure := structureWithBasic(1000)
	structure.ProvidentFund = decimal.NewFromInt(5000)

	result := calc.Calculate(structure, domain.Attendance{
		PresentDays:      22,
		TotalWorkingDays: 22,
	})

	assert.Equal(t, "0.00", result.NetSalary.StringFixed(2))
}

func TestCalculateWithAllComponents(t *testing.T) {
	calc := NewCalculator()

	structure := salarystructure.SalaryStructure{
		BasicSalary:      decimal.NewFromInt(44000),
		HRA:              decimal.NewFromInt(10000),
		DA:               decimal.NewFromInt(2000),
		SpecialAllowance: decimal.NewFromInt(3000),
		ProvidentFund:    decimal.NewFromInt(1800),
		ProfessionalTax:  decimal.NewFromInt(200),
	}

	// daily rate 2000: earned 11*2000 = 22000
	result := calc.Calculate(structure, domain.Attendance{
		PresentDays:      11,
		AbsentDays:       11,
		TotalWorkingDays: 22,
	})

	assert.Equal(t, "0.00", result.BasicSalary.StringFixed(2))
	assert.Equal(t, "15000.00", result.Allowances.StringFixed(2))
	assert.Equal(t, "2000.00", result.Deductions.StringFixed(2))
	assert.Equal(t, "13000.00", result.NetSalary.StringFixed(2))
}
