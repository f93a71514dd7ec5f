package salarystructure

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure is a versioned compensation template for one employee.
// Validity is the interval [EffectiveFrom, EffectiveTo); an open-ended row
// (EffectiveTo == nil) is the active structure. A partial unique index keeps
// at most one open-ended row per employee.
type SalaryStructure struct {
	ID         string
	EmployeeID string

	// Additive components
	BasicSalary      decimal.Decimal
	HRA              decimal.Decimal
	DA               decimal.Decimal
	SpecialAllowance decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	OtherAllowances  decimal.Decimal
	LeaveEncashment  decimal.Decimal
	Arrears          decimal.Decimal

	// Subtractive components
	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal
	ESIC            decimal.Decimal
	Advance         decimal.Decimal
	MLWF            decimal.Decimal

	EffectiveFrom time.Time
	EffectiveTo   *time.Time

	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s SalaryStructure) IsActive() bool {
	return s.EffectiveTo == nil
}

// TotalAllowances sums every additive component except the basic salary.
func (s SalaryStructure) TotalAllowances() decimal.Decimal {
	return s.HRA.
		Add(s.DA).
		Add(s.SpecialAllowance).
		Add(s.Conveyance).
		Add(s.MedicalAllowance).
		Add(s.OtherAllowances).
		Add(s.LeaveEncashment).
		Add(s.Arrears)
}

// TotalDeductions sums every subtractive component.
func (s SalaryStructure) TotalDeductions() decimal.Decimal {
	return s.ProvidentFund.
		Add(s.ProfessionalTax).
		Add(s.IncomeTax).
		Add(s.OtherDeductions).
		Add(s.ESIC).
		Add(s.Advance).
		Add(s.MLWF)
}
