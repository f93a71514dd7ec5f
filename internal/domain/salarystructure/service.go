package salarystructure

import "context"

// SalaryStructureService defines business logic for compensation templates.
type SalaryStructureService interface {
	// Create adds a new active structure; fails if the employee already has one.
	Create(ctx context.Context, req CreateSalaryStructureRequest, actor string) (SalaryStructureResponse, error)

	// Get retrieves a single structure version by ID.
	Get(ctx context.Context, id string) (SalaryStructureResponse, error)

	// GetActiveByEmployee retrieves the structure currently in effect.
	GetActiveByEmployee(ctx context.Context, employeeID string) (SalaryStructureResponse, error)

	// ListByEmployee returns the full version history, newest first.
	ListByEmployee(ctx context.Context, employeeID string) (ListSalaryStructureResponse, error)

	// Deactivate closes the active structure so a successor can be created.
	Deactivate(ctx context.Context, id string, actor string) (SalaryStructureResponse, error)
}
