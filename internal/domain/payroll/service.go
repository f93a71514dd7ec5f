package payroll

import "context"

// PayrollService defines the payroll-processing business logic.
type PayrollService interface {
	// Process turns attendance plus the active salary structure into a
	// persisted payroll record, exactly once per (employee, month).
	Process(ctx context.Context, req ProcessPayrollRequest, actor string) (PayrollResponse, error)

	// ProcessBulk applies Process across many employees for one month.
	// Per-employee failures are captured in the result, never fatal.
	ProcessBulk(ctx context.Context, req BulkProcessRequest, actor string) (BulkProcessResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	Summary(ctx context.Context, month *string) (PayrollSummaryResponse, error)

	// UpdatePaymentStatus applies one disbursement transition atomically.
	UpdatePaymentStatus(ctx context.Context, req UpdatePaymentStatusRequest, actor string) (PayrollResponse, error)

	// Delete removes a payroll record unless a salary slip references it.
	Delete(ctx context.Context, id string) error

	// ExportCSV renders a month's payroll rows as CSV using the employee
	// details captured at processing time.
	ExportCSV(ctx context.Context, month string) ([]byte, error)
}
