package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salaryslip"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/paydesk/payroll-backend-go/internal/service/payroll"
	slipService "github.com/paydesk/payroll-backend-go/internal/service/salaryslip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlipFixture(t *testing.T) (payroll.PayrollService, salaryslip.SalarySlipService) {
	t.Helper()
	db := requireTestDB(t)
	setupTestData(t, db)

	payrollRepo := postgresql.NewPayrollRepository(db)
	slipRepo := postgresql.NewSalarySlipRepository(db)

	paySvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		postgresql.NewSalaryStructureRepository(db),
		postgresql.NewEmployeeRepository(db),
		slipRepo,
	)
	return paySvc, slipService.NewSalarySlipService(db, slipRepo, payrollRepo)
}

func processForMonth(t *testing.T, svc payroll.PayrollService, code, month string) payroll.PayrollResponse {
	t.Helper()

	processed, err := svc.Process(context.Background(), payroll.ProcessPayrollRequest{
		EmployeeID: code,
		Month:      month,
		Attendance: fullAttendance(),
	}, "tester")
	require.NoError(t, err)
	return processed
}

func TestGenerateSlipNumbersAreSequential(t *testing.T) {
	paySvc, slipSvc := newSlipFixture(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)

	now := time.Now()
	prefix := fmt.Sprintf("SS/%04d/%02d", now.Year(), int(now.Month()))

	for i, month := range []string{"2024-01", "2024-02", "2024-03"} {
		processed := processForMonth(t, paySvc, "EMP001", month)

		slip, err := slipSvc.Generate(ctx, salaryslip.GenerateSlipRequest{PayrollID: processed.ID}, "tester")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s/%04d", prefix, i+1), slip.SlipNumber)
		assert.Equal(t, month, slip.Month)
		assert.Equal(t, "22000.00", slip.NetSalary.StringFixed(2))
		assert.False(t, slip.EmailSent)
	}
}

func TestGenerateSlipAtMostOncePerPayroll(t *testing.T) {
	paySvc, slipSvc := newSlipFixture(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)
	processed := processForMonth(t, paySvc, "EMP001", "2024-03")

	_, err := slipSvc.Generate(ctx, salaryslip.GenerateSlipRequest{PayrollID: processed.ID}, "tester")
	require.NoError(t, err)

	_, err = slipSvc.Generate(ctx, salaryslip.GenerateSlipRequest{PayrollID: processed.ID}, "tester")
	require.ErrorIs(t, err, salaryslip.ErrSlipAlreadyExists)

	count := countRows(t, ctx, db, "SELECT COUNT(*) FROM salary_slips")
	assert.Equal(t, 1, count)
}

func TestGenerateSlipForMissingPayroll(t *testing.T) {
	_, slipSvc := newSlipFixture(t)
	ctx := context.Background()

	_, err := slipSvc.Generate(ctx, salaryslip.GenerateSlipRequest{
		PayrollID: "0195f1e0-0000-7000-8000-000000000000",
	}, "tester")
	require.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestDeletePayrollBlockedBySlip(t *testing.T) {
	paySvc, slipSvc := newSlipFixture(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)
	processed := processForMonth(t, paySvc, "EMP001", "2024-03")

	_, err := slipSvc.Generate(ctx, salaryslip.GenerateSlipRequest{PayrollID: processed.ID}, "tester")
	require.NoError(t, err)

	err = paySvc.Delete(ctx, processed.ID)
	require.ErrorIs(t, err, payroll.ErrPayrollHasSlip)

	count := countRows(t, ctx, db, "SELECT COUNT(*) FROM payrolls")
	assert.Equal(t, 1, count)
}

func TestSlipMutableFields(t *testing.T) {
	paySvc, slipSvc := newSlipFixture(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)
	processed := processForMonth(t, paySvc, "EMP001", "2024-03")

	slip, err := slipSvc.Generate(ctx, salaryslip.GenerateSlipRequest{PayrollID: processed.ID}, "tester")
	require.NoError(t, err)

	emailed, err := slipSvc.MarkEmailed(ctx, slip.ID)
	require.NoError(t, err)
	assert.True(t, emailed.EmailSent)
	assert.NotNil(t, emailed.EmailSentAt)

	notes := "Reissued after bank detail correction"
	updated, err := slipSvc.UpdateNotes(ctx, salaryslip.UpdateSlipNotesRequest{ID: slip.ID, Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	assert.Equal(t, slip.SlipNumber, updated.SlipNumber)

	pdf, filename, err := slipSvc.RenderPDF(ctx, slip.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, ".pdf")
}
