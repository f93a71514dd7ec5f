package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) salarystructure.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

const structureColumns = `
	id, employee_id, basic_salary, hra, da, special_allowance, conveyance,
	medical_allowance, other_allowances, leave_encashment, arrears,
	provident_fund, professional_tax, income_tax, other_deductions, esic,
	advance, mlwf, effective_from, effective_to, created_by, updated_by,
	created_at, updated_at
`

func scanStructure(row pgx.Row) (salarystructure.SalaryStructure, error) {
	var s salarystructure.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.HRA, &s.DA, &s.SpecialAllowance, &s.Conveyance,
		&s.MedicalAllowance, &s.OtherAllowances, &s.LeaveEncashment, &s.Arrears,
		&s.ProvidentFund, &s.ProfessionalTax, &s.IncomeTax, &s.OtherDeductions, &s.ESIC,
		&s.Advance, &s.MLWF, &s.EffectiveFrom, &s.EffectiveTo, &s.CreatedBy, &s.UpdatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *salaryStructureRepository) Create(ctx context.Context, structure salarystructure.SalaryStructure) (salarystructure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic_salary, hra, da, special_allowance, conveyance,
			medical_allowance, other_allowances, leave_encashment, arrears,
			provident_fund, professional_tax, income_tax, other_deductions, esic,
			advance, mlwf, effective_from, effective_to, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + structureColumns

	id := uuid.Must(uuid.NewV7()).String()

	s, err := scanStructure(q.QueryRow(ctx, query,
		id, structure.EmployeeID, structure.BasicSalary, structure.HRA, structure.DA,
		structure.SpecialAllowance, structure.Conveyance, structure.MedicalAllowance,
		structure.OtherAllowances, structure.LeaveEncashment, structure.Arrears,
		structure.ProvidentFund, structure.ProfessionalTax, structure.IncomeTax,
		structure.OtherDeductions, structure.ESIC, structure.Advance, structure.MLWF,
		structure.EffectiveFrom, structure.EffectiveTo, structure.CreatedBy, structure.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_active_salary_structure") {
			return salarystructure.SalaryStructure{}, salarystructure.ErrActiveStructureExists
		}
		return salarystructure.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) GetByID(ctx context.Context, id string) (salarystructure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + ` FROM salary_structures WHERE id = $1`

	s, err := scanStructure(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salarystructure.SalaryStructure{}, salarystructure.ErrStructureNotFound
		}
		return salarystructure.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (salarystructure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + ` FROM salary_structures WHERE employee_id = $1 AND effective_to IS NULL`

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salarystructure.SalaryStructure{}, salarystructure.ErrActiveStructureNotFound
		}
		return salarystructure.SalaryStructure{}, fmt.Errorf("failed to get active salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]salarystructure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + ` FROM salary_structures WHERE employee_id = $1 ORDER BY effective_from DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []salarystructure.SalaryStructure
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}

	return structures, nil
}

func (r *salaryStructureRepository) Deactivate(ctx context.Context, id string, effectiveTo time.Time, actor string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures
		SET effective_to = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $1 AND effective_to IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, effectiveTo, actor).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the row does not exist or it is already closed.
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM salary_structures WHERE id = $1)`, id).Scan(&exists); checkErr == nil && exists {
				return salarystructure.ErrStructureNotActive
			}
			return salarystructure.ErrStructureNotFound
		}
		return fmt.Errorf("failed to deactivate salary structure: %w", err)
	}

	return nil
}
