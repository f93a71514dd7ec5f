package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the processing state of a payroll record. Records only exist
// after successful processing, so the single value is set at creation and
// never changes. Disbursement progress lives in PaymentStatus.
type Status string

const (
	StatusProcessed Status = "processed"
)

// PaymentStatus is the disbursement state of a payroll record, independent
// of its processing state.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusHold     PaymentStatus = "hold"
	PaymentStatusPartPaid PaymentStatus = "part-paid"
)

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusHold, PaymentStatusPartPaid:
		return true
	}
	return false
}

// Attendance carries the caller-supplied attendance counts for one
// employee-month. The counts drive proration; they are not computed here.
type Attendance struct {
	PresentDays      int
	AbsentDays       int
	HalfDays         int
	Leaves           int
	TotalWorkingDays int
}

// EmployeeDetails is an immutable snapshot of the employee's bank and
// identity fields taken at processing time. Bank exports must reflect the
// employee as of the payroll run, not as of today.
type EmployeeDetails struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Department        string `json:"department"`
	Designation       string `json:"designation"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankIFSC          string `json:"bank_ifsc"`
	PAN               string `json:"pan"`
}

// Payroll is the system-of-record fact: one per (employeeID, month).
// Money fields are fixed at creation; only payment fields mutate afterwards.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      string // YYYY-MM

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal

	PresentDays      int
	AbsentDays       int
	HalfDays         int
	Leaves           int
	TotalWorkingDays int

	Status        Status
	PaymentStatus PaymentStatus
	PaidAmount    decimal.Decimal
	PaymentDate   *time.Time

	EmployeeDetails EmployeeDetails

	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
