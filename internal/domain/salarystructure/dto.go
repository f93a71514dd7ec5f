package salarystructure

import (
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryStructureRequest struct {
	EmployeeID string `json:"employee_id"`

	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	LeaveEncashment  decimal.Decimal `json:"leave_encashment"`
	Arrears          decimal.Decimal `json:"arrears"`

	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	ESIC            decimal.Decimal `json:"esic"`
	Advance         decimal.Decimal `json:"advance"`
	MLWF            decimal.Decimal `json:"mlwf"`

	EffectiveFrom *string `json:"effective_from,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	for field, amount := range map[string]decimal.Decimal{
		"hra":               r.HRA,
		"da":                r.DA,
		"special_allowance": r.SpecialAllowance,
		"conveyance":        r.Conveyance,
		"medical_allowance": r.MedicalAllowance,
		"other_allowances":  r.OtherAllowances,
		"leave_encashment":  r.LeaveEncashment,
		"arrears":           r.Arrears,
		"provident_fund":    r.ProvidentFund,
		"professional_tax":  r.ProfessionalTax,
		"income_tax":        r.IncomeTax,
		"other_deductions":  r.OtherDeductions,
		"esic":              r.ESIC,
		"advance":           r.Advance,
		"mlwf":              r.MLWF,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.EffectiveFrom != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	LeaveEncashment  decimal.Decimal `json:"leave_encashment"`
	Arrears          decimal.Decimal `json:"arrears"`

	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	ESIC            decimal.Decimal `json:"esic"`
	Advance         decimal.Decimal `json:"advance"`
	MLWF            decimal.Decimal `json:"mlwf"`

	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	IsActive      bool    `json:"is_active"`
}

type ListSalaryStructureResponse struct {
	Data []SalaryStructureResponse `json:"data"`
}
