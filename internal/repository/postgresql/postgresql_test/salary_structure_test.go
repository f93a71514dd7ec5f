package postgresql_test

import (
	"context"
	"testing"

	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	structureService "github.com/paydesk/payroll-backend-go/internal/service/salarystructure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStructureService(t *testing.T) salarystructure.SalaryStructureService {
	t.Helper()
	db := requireTestDB(t)
	setupTestData(t, db)

	return structureService.NewSalaryStructureService(
		db,
		postgresql.NewSalaryStructureRepository(db),
		postgresql.NewEmployeeRepository(db),
	)
}

func TestCreateStructureEnforcesSingleActive(t *testing.T) {
	svc := newStructureService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")

	req := salarystructure.CreateSalaryStructureRequest{
		EmployeeID:  "EMP001",
		BasicSalary: decimal.NewFromInt(22000),
		HRA:         decimal.NewFromInt(5000),
	}

	created, err := svc.Create(ctx, req, "tester")
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "22000.00", created.BasicSalary.StringFixed(2))

	_, err = svc.Create(ctx, req, "tester")
	require.ErrorIs(t, err, salarystructure.ErrActiveStructureExists)
}

func TestDeactivateThenCreateSuccessor(t *testing.T) {
	svc := newStructureService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")

	first, err := svc.Create(ctx, salarystructure.CreateSalaryStructureRequest{
		EmployeeID:  "EMP001",
		BasicSalary: decimal.NewFromInt(22000),
	}, "tester")
	require.NoError(t, err)

	closed, err := svc.Deactivate(ctx, first.ID, "tester")
	require.NoError(t, err)
	assert.False(t, closed.IsActive)
	assert.NotNil(t, closed.EffectiveTo)

	// Deactivating twice conflicts.
	_, err = svc.Deactivate(ctx, first.ID, "tester")
	require.ErrorIs(t, err, salarystructure.ErrStructureNotActive)

	second, err := svc.Create(ctx, salarystructure.CreateSalaryStructureRequest{
		EmployeeID:  "EMP001",
		BasicSalary: decimal.NewFromInt(30000),
	}, "tester")
	require.NoError(t, err)
	assert.True(t, second.IsActive)

	active, err := svc.GetActiveByEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	history, err := svc.ListByEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, history.Data, 2)
}

func TestCreateStructureUnknownEmployee(t *testing.T) {
	svc := newStructureService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, salarystructure.CreateSalaryStructureRequest{
		EmployeeID:  "EMP999",
		BasicSalary: decimal.NewFromInt(22000),
	}, "tester")
	require.Error(t, err)
}
