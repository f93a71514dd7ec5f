package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll record already exists for this employee and month")
	ErrPayrollHasSlip       = errors.New("payroll record is referenced by a salary slip")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
