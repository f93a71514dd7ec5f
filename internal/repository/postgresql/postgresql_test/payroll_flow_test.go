package postgresql_test

import (
	"context"
	"testing"

	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/paydesk/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayrollService(t *testing.T) payroll.PayrollService {
	t.Helper()
	db := requireTestDB(t)
	setupTestData(t, db)

	return payrollService.NewPayrollService(
		db,
		postgresql.NewPayrollRepository(db),
		postgresql.NewSalaryStructureRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewSalarySlipRepository(db),
	)
}

func fullAttendance() payroll.AttendanceInput {
	days := 22
	return payroll.AttendanceInput{PresentDays: 22, TotalWorkingDays: &days}
}

func TestProcessCreatesExactlyOneRecordPerMonth(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)

	req := payroll.ProcessPayrollRequest{
		EmployeeID: "EMP001",
		Month:      "2024-03",
		Attendance: fullAttendance(),
	}

	first, err := svc.Process(ctx, req, "tester")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "22000.00", first.NetSalary.StringFixed(2))
	assert.Equal(t, "pending", first.PaymentStatus)
	assert.Equal(t, "processed", first.Status)
	assert.Equal(t, "Employee EMP001", first.EmployeeDetails.FullName)

	_, err = svc.Process(ctx, req, "tester")
	require.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)

	count := countRows(t, ctx, db,
		"SELECT COUNT(*) FROM payrolls WHERE employee_id = $1 AND month = $2", "EMP001", "2024-03")
	assert.Equal(t, 1, count)
}

func TestProcessFailsWithoutActiveStructure(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")

	_, err := svc.Process(ctx, payroll.ProcessPayrollRequest{
		EmployeeID: "EMP001",
		Month:      "2024-03",
		Attendance: fullAttendance(),
	}, "tester")
	require.ErrorIs(t, err, salarystructure.ErrActiveStructureNotFound)

	// The failed attempt must leave the store untouched.
	count := countRows(t, ctx, db, "SELECT COUNT(*) FROM payrolls")
	assert.Equal(t, 0, count)
}

func TestBulkProcessIsolatesFailures(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)

	result, err := svc.ProcessBulk(ctx, payroll.BulkProcessRequest{
		Month:       "2024-04",
		EmployeeIDs: []string{"EMP001", "EMP999"},
		Attendance: map[string]payroll.AttendanceInput{
			"EMP001": fullAttendance(),
		},
	}, "tester")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 2)
	assert.NotNil(t, result.Results[0].Payroll)
	assert.Nil(t, result.Results[0].Error)
	assert.Nil(t, result.Results[1].Payroll)
	require.NotNil(t, result.Results[1].Error)

	count := countRows(t, ctx, db, "SELECT COUNT(*) FROM payrolls WHERE month = $1", "2024-04")
	assert.Equal(t, 1, count)
}

func TestUpdatePaymentStatusClampsPaidAmount(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)

	processed, err := svc.Process(ctx, payroll.ProcessPayrollRequest{
		EmployeeID: "EMP001",
		Month:      "2024-03",
		Attendance: fullAttendance(),
	}, "tester")
	require.NoError(t, err)

	huge := decimal.NewFromInt(999999999)
	updated, err := svc.UpdatePaymentStatus(ctx, payroll.UpdatePaymentStatusRequest{
		ID:            processed.ID,
		PaymentStatus: "part-paid",
		PaidAmount:    &huge,
	}, "tester")
	require.NoError(t, err)

	assert.Equal(t, "part-paid", updated.PaymentStatus)
	assert.Equal(t, "22000.00", updated.PaidAmount.StringFixed(2))
	assert.NotNil(t, updated.PaymentDate)

	// Moving back to hold resets the disbursement fields.
	held, err := svc.UpdatePaymentStatus(ctx, payroll.UpdatePaymentStatusRequest{
		ID:            processed.ID,
		PaymentStatus: "hold",
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "0.00", held.PaidAmount.StringFixed(2))
	assert.Nil(t, held.PaymentDate)
}

func TestSummaryAggregatesByMonth(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createTestEmployee(t, ctx, db, "EMP002")
	createActiveStructure(t, ctx, db, "EMP001", 22000)
	createActiveStructure(t, ctx, db, "EMP002", 44000)

	for _, code := range []string{"EMP001", "EMP002"} {
		_, err := svc.Process(ctx, payroll.ProcessPayrollRequest{
			EmployeeID: code,
			Month:      "2024-03",
			Attendance: fullAttendance(),
		}, "tester")
		require.NoError(t, err)
	}

	month := "2024-03"
	summary, err := svc.Summary(ctx, &month)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalRecords)
	assert.Equal(t, "66000.00", summary.TotalNetSalary.StringFixed(2))
	assert.Equal(t, "0.00", summary.TotalPaidAmount.StringFixed(2))
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 0, summary.PaidCount)
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)

	for _, month := range []string{"2024-01", "2024-02", "2024-03"} {
		_, err := svc.Process(ctx, payroll.ProcessPayrollRequest{
			EmployeeID: "EMP001",
			Month:      month,
			Attendance: fullAttendance(),
		}, "tester")
		require.NoError(t, err)
	}

	month := "2024-02"
	filtered, err := svc.List(ctx, payroll.PayrollFilter{Month: &month})
	require.NoError(t, err)
	assert.Equal(t, int64(1), filtered.TotalCount)
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, "2024-02", filtered.Data[0].Month)

	paged, err := svc.List(ctx, payroll.PayrollFilter{Page: 2, Limit: 2, SortBy: "month", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), paged.TotalCount)
	require.Len(t, paged.Data, 1)
	assert.Equal(t, "2024-03", paged.Data[0].Month)
}

func TestExportCSVUsesSnapshotDetails(t *testing.T) {
	svc := newPayrollService(t)
	ctx := context.Background()
	db := requireTestDB(t)

	createTestEmployee(t, ctx, db, "EMP001")
	createActiveStructure(t, ctx, db, "EMP001", 22000)

	_, err := svc.Process(ctx, payroll.ProcessPayrollRequest{
		EmployeeID: "EMP001",
		Month:      "2024-03",
		Attendance: fullAttendance(),
	}, "tester")
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx, "2024-03")
	require.NoError(t, err)

	csv := string(data)
	assert.Contains(t, csv, "employee_id,full_name")
	assert.Contains(t, csv, "EMP001")
	assert.Contains(t, csv, "Employee EMP001")
	assert.Contains(t, csv, "22000.00")
}
