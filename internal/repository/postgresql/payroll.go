package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, month, basic_salary, allowances, deductions, net_salary,
	present_days, absent_days, half_days, leaves, total_working_days,
	status, payment_status, paid_amount, payment_date, employee_details,
	created_by, updated_by, created_at, updated_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var rec payroll.Payroll
	var detailsBytes []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
		&rec.PresentDays, &rec.AbsentDays, &rec.HalfDays, &rec.Leaves, &rec.TotalWorkingDays,
		&rec.Status, &rec.PaymentStatus, &rec.PaidAmount, &rec.PaymentDate, &detailsBytes,
		&rec.CreatedBy, &rec.UpdatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}
	_ = json.Unmarshal(detailsBytes, &rec.EmployeeDetails)
	return rec, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	detailsJSON, _ := json.Marshal(record.EmployeeDetails)

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, basic_salary, allowances, deductions, net_salary,
			present_days, absent_days, half_days, leaves, total_working_days,
			status, payment_status, paid_amount, payment_date, employee_details,
			created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + payrollColumns

	id := uuid.Must(uuid.NewV7()).String()

	rec, err := scanPayroll(q.QueryRow(ctx, query,
		id, record.EmployeeID, record.Month, record.BasicSalary, record.Allowances,
		record.Deductions, record.NetSalary,
		record.PresentDays, record.AbsentDays, record.HalfDays, record.Leaves, record.TotalWorkingDays,
		record.Status, record.PaymentStatus, record.PaidAmount, record.PaymentDate, detailsJSON,
		record.CreatedBy, record.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_month") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE id = $1`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE employee_id = $1 AND month = $2`

	rec, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM payrolls WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.PaymentStatus != nil {
		baseQuery += fmt.Sprintf(" AND payment_status = $%d", argIdx)
		args = append(args, *filter.PaymentStatus)
		argIdx++
	}
	if filter.Department != nil {
		baseQuery += fmt.Sprintf(" AND employee_details->>'department' = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Search != nil {
		baseQuery += fmt.Sprintf(" AND (employee_id ILIKE $%d OR employee_details->>'full_name' ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*)" + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Sort; unknown columns fall back to created_at
	sortColumn := "created_at"
	if validator.IsInSlice(filter.SortBy, []string{"created_at", "month", "net_salary", "employee_id"}) {
		sortColumn = filter.SortBy
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(
		"SELECT "+payrollColumns+" %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		baseQuery, sortColumn, sortOrder, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) UpdatePayment(ctx context.Context, id string, status payroll.PaymentStatus, paidAmount decimal.Decimal, paymentDate *time.Time, actor string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET payment_status = $2, paid_amount = $3, payment_date = $4, updated_by = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payrollColumns

	rec, err := scanPayroll(q.QueryRow(ctx, query, id, status, paidAmount, paymentDate, actor))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payment status: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payrolls WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) Summary(ctx context.Context, month *string) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as total_records,
			COALESCE(SUM(net_salary), 0) as total_net_salary,
			COALESCE(SUM(paid_amount), 0) as total_paid_amount,
			COUNT(*) FILTER (WHERE payment_status = 'pending') as pending_count,
			COUNT(*) FILTER (WHERE payment_status = 'paid') as paid_count,
			COUNT(*) FILTER (WHERE payment_status = 'hold') as hold_count,
			COUNT(*) FILTER (WHERE payment_status = 'part-paid') as part_paid_count
		FROM payrolls
	`
	args := []interface{}{}
	if month != nil {
		query += ` WHERE month = $1`
		args = append(args, *month)
	}

	var summary payroll.PayrollSummaryResponse
	err := q.QueryRow(ctx, query, args...).Scan(
		&summary.TotalRecords, &summary.TotalNetSalary, &summary.TotalPaidAmount,
		&summary.PendingCount, &summary.PaidCount, &summary.HoldCount, &summary.PartPaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	summary.Month = month

	return summary, nil
}
