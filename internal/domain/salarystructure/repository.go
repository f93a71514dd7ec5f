package salarystructure

import (
	"context"
	"time"
)

type SalaryStructureRepository interface {
	Create(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	GetByID(ctx context.Context, id string) (SalaryStructure, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]SalaryStructure, error)
	Deactivate(ctx context.Context, id string, effectiveTo time.Time, actor string) error
}
