package salaryslip

import (
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateSlipRequest struct {
	PayrollID string `json:"payroll_id"`
}

func (r *GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSlipNotesRequest struct {
	ID    string
	Notes *string `json:"notes"`
}

type SalarySlipResponse struct {
	ID         string `json:"id"`
	PayrollID  string `json:"payroll_id"`
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`

	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	HalfDays    int `json:"half_days"`
	Leaves      int `json:"leaves"`

	SlipNumber  string  `json:"slip_number"`
	EmailSent   bool    `json:"email_sent"`
	EmailSentAt *string `json:"email_sent_at,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt string `json:"created_at"`
}

type SlipFilter struct {
	EmployeeID *string
	Month      *string
	Page       int
	Limit      int
}

type ListSalarySlipResponse struct {
	Data       []SalarySlipResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
