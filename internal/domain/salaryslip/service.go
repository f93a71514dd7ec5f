package salaryslip

import "context"

// SalarySlipService defines slip issuance and follow-up operations.
type SalarySlipService interface {
	// Generate issues the slip for a payroll record, at most once.
	Generate(ctx context.Context, req GenerateSlipRequest, actor string) (SalarySlipResponse, error)

	Get(ctx context.Context, id string) (SalarySlipResponse, error)
	List(ctx context.Context, filter SlipFilter) (ListSalarySlipResponse, error)

	// MarkEmailed records that the slip was delivered by email.
	MarkEmailed(ctx context.Context, id string) (SalarySlipResponse, error)

	// UpdateNotes changes the slip's free-text notes; identity fields are
	// immutable.
	UpdateNotes(ctx context.Context, req UpdateSlipNotesRequest) (SalarySlipResponse, error)

	// RenderPDF produces a printable PDF of the slip.
	RenderPDF(ctx context.Context, id string) ([]byte, string, error)
}
