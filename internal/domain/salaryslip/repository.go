package salaryslip

import "context"

type SalarySlipRepository interface {
	// Create inserts a slip. Unique constraints on payroll_id and
	// slip_number are the authoritative guards against duplicates.
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)

	GetByID(ctx context.Context, id string) (SalarySlip, error)
	GetByPayrollID(ctx context.Context, payrollID string) (SalarySlip, error)
	ExistsByPayrollID(ctx context.Context, payrollID string) (bool, error)
	List(ctx context.Context, filter SlipFilter) ([]SalarySlip, int64, error)

	// MaxSequenceForPeriod returns the highest NNNN among slip numbers
	// matching SS/<year>/<month>/*, or 0 when none exist.
	MaxSequenceForPeriod(ctx context.Context, year int, month int) (int, error)

	MarkEmailed(ctx context.Context, id string) (SalarySlip, error)
	UpdateNotes(ctx context.Context, id string, notes *string) (SalarySlip, error)
}
