package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/salaryslip"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type salarySlipRepository struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) salaryslip.SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

const slipColumns = `
	id, payroll_id, employee_id, month, basic_salary, allowances, deductions,
	net_salary, present_days, absent_days, half_days, leaves, slip_number,
	email_sent, email_sent_at, notes, created_by, created_at, updated_at
`

func scanSlip(row pgx.Row) (salaryslip.SalarySlip, error) {
	var s salaryslip.SalarySlip
	err := row.Scan(
		&s.ID, &s.PayrollID, &s.EmployeeID, &s.Month, &s.BasicSalary, &s.Allowances, &s.Deductions,
		&s.NetSalary, &s.PresentDays, &s.AbsentDays, &s.HalfDays, &s.Leaves, &s.SlipNumber,
		&s.EmailSent, &s.EmailSentAt, &s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *salarySlipRepository) Create(ctx context.Context, slip salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_slips (
			id, payroll_id, employee_id, month, basic_salary, allowances, deductions,
			net_salary, present_days, absent_days, half_days, leaves, slip_number,
			created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + slipColumns

	id := uuid.Must(uuid.NewV7()).String()

	s, err := scanSlip(q.QueryRow(ctx, query,
		id, slip.PayrollID, slip.EmployeeID, slip.Month, slip.BasicSalary, slip.Allowances,
		slip.Deductions, slip.NetSalary, slip.PresentDays, slip.AbsentDays, slip.HalfDays,
		slip.Leaves, slip.SlipNumber, slip.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_slip_payroll") {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipAlreadyExists
		}
		if strings.Contains(err.Error(), "uk_salary_slip_number") {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNumberTaken
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) GetByID(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + slipColumns + ` FROM salary_slips WHERE id = $1`

	s, err := scanSlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) GetByPayrollID(ctx context.Context, payrollID string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + slipColumns + ` FROM salary_slips WHERE payroll_id = $1`

	s, err := scanSlip(q.QueryRow(ctx, query, payrollID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) ExistsByPayrollID(ctx context.Context, payrollID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM salary_slips WHERE payroll_id = $1)`, payrollID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check salary slip existence: %w", err)
	}

	return exists, nil
}

func (r *salarySlipRepository) List(ctx context.Context, filter salaryslip.SlipFilter) ([]salaryslip.SalarySlip, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM salary_slips WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary slips: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(
		"SELECT "+slipColumns+" %s ORDER BY slip_number DESC LIMIT $%d OFFSET $%d",
		baseQuery, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	var slips []salaryslip.SalarySlip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, totalCount, nil
}

func (r *salarySlipRepository) MaxSequenceForPeriod(ctx context.Context, year int, month int) (int, error) {
	q := GetQuerier(ctx, r.db)

	prefix := fmt.Sprintf("SS/%04d/%02d/%%", year, month)

	query := `
		SELECT COALESCE(MAX(CAST(SPLIT_PART(slip_number, '/', 4) AS INT)), 0)
		FROM salary_slips
		WHERE slip_number LIKE $1
	`

	var maxSeq int
	if err := q.QueryRow(ctx, query, prefix).Scan(&maxSeq); err != nil {
		return 0, fmt.Errorf("failed to get max slip sequence: %w", err)
	}

	return maxSeq, nil
}

func (r *salarySlipRepository) MarkEmailed(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_slips
		SET email_sent = TRUE, email_sent_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + slipColumns

	s, err := scanSlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to mark salary slip emailed: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) UpdateNotes(ctx context.Context, id string, notes *string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_slips
		SET notes = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + slipColumns

	s, err := scanSlip(q.QueryRow(ctx, query, id, notes))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to update salary slip notes: %w", err)
	}

	return s, nil
}
