package payroll

import (
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DefaultWorkingDays is assumed when a request omits total_working_days.
const DefaultWorkingDays = 22

// AttendanceInput is the wire form of attendance counts. A nil
// total_working_days defaults to DefaultWorkingDays; an explicit value <= 0
// disables proration entirely (zero daily rate).
type AttendanceInput struct {
	PresentDays      int  `json:"present_days"`
	AbsentDays       int  `json:"absent_days"`
	HalfDays         int  `json:"half_days"`
	Leaves           int  `json:"leaves"`
	TotalWorkingDays *int `json:"total_working_days,omitempty"`
}

func (a AttendanceInput) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for field, v := range map[string]int{
		"present_days": a.PresentDays,
		"absent_days":  a.AbsentDays,
		"half_days":    a.HalfDays,
		"leaves":       a.Leaves,
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	return errs
}

// ToAttendance applies the working-days default.
func (a AttendanceInput) ToAttendance() Attendance {
	workingDays := DefaultWorkingDays
	if a.TotalWorkingDays != nil {
		workingDays = *a.TotalWorkingDays
	}
	return Attendance{
		PresentDays:      a.PresentDays,
		AbsentDays:       a.AbsentDays,
		HalfDays:         a.HalfDays,
		Leaves:           a.Leaves,
		TotalWorkingDays: workingDays,
	}
}

type ProcessPayrollRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	Attendance AttendanceInput `json:"attendance"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	errs = append(errs, r.Attendance.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkProcessRequest struct {
	Month       string                     `json:"month"`
	EmployeeIDs []string                   `json:"employee_ids"`
	Attendance  map[string]AttendanceInput `json:"attendance,omitempty"` // keyed by employee ID
}

func (r *BulkProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentStatusRequest struct {
	ID            string
	PaymentStatus string           `json:"payment_status"`
	PaidAmount    *decimal.Decimal `json:"paid_amount,omitempty"`
	PaymentDate   *string          `json:"payment_date,omitempty"` // YYYY-MM-DD, defaults to now
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidPaymentStatus(r.PaymentStatus) {
		errs = append(errs, validator.ValidationError{Field: "payment_status", Message: "must be one of pending, paid, hold, part-paid"})
	}
	if PaymentStatus(r.PaymentStatus) == PaymentStatusPartPaid && r.PaidAmount == nil {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "is required for part-paid"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`

	PresentDays      int `json:"present_days"`
	AbsentDays       int `json:"absent_days"`
	HalfDays         int `json:"half_days"`
	Leaves           int `json:"leaves"`
	TotalWorkingDays int `json:"total_working_days"`

	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PaymentDate   *string         `json:"payment_date,omitempty"`

	EmployeeDetails EmployeeDetails `json:"employee_details"`

	CreatedAt string `json:"created_at"`
}

type PayrollFilter struct {
	Month         *string
	Status        *string
	PaymentStatus *string
	Department    *string
	Search        *string // matches employee ID or snapshot full name
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type BulkItemResult struct {
	EmployeeID string           `json:"employee_id"`
	Payroll    *PayrollResponse `json:"payroll,omitempty"`
	Error      *string          `json:"error,omitempty"`
}

type BulkProcessResponse struct {
	Month     string           `json:"month"`
	Requested int              `json:"requested"`
	Processed int              `json:"processed"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}

type PayrollSummaryResponse struct {
	Month           *string         `json:"month,omitempty"`
	TotalRecords    int             `json:"total_records"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
	PendingCount    int             `json:"pending_count"`
	PaidCount       int             `json:"paid_count"`
	HoldCount       int             `json:"hold_count"`
	PartPaidCount   int             `json:"part_paid_count"`
}
