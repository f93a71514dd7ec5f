package employee

import "context"

// EmployeeRepository is the read-only view of the employee directory that the
// payroll core consumes. Employee lifecycle management lives elsewhere.
type EmployeeRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	GetByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]Employee, error)
}
