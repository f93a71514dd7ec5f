package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	// Create inserts a processed payroll record. The unique constraint on
	// (employee_id, month) is the authoritative duplicate guard; a violation
	// is returned as ErrPayrollAlreadyExists.
	Create(ctx context.Context, record Payroll) (Payroll, error)

	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)

	// UpdatePayment persists a payment-status transition. paymentDate nil
	// clears the stored date.
	UpdatePayment(ctx context.Context, id string, status PaymentStatus, paidAmount decimal.Decimal, paymentDate *time.Time, actor string) (Payroll, error)

	Delete(ctx context.Context, id string) error

	Summary(ctx context.Context, month *string) (PayrollSummaryResponse, error)
}
