package salarystructure

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
)

type SalaryStructureServiceImpl struct {
	db            *database.DB
	structureRepo salarystructure.SalaryStructureRepository
	employeeRepo  employee.EmployeeRepository
}

func NewSalaryStructureService(
	db *database.DB,
	structureRepo salarystructure.SalaryStructureRepository,
	employeeRepo employee.EmployeeRepository,
) salarystructure.SalaryStructureService {
	return &SalaryStructureServiceImpl{
		db:            db,
		structureRepo: structureRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *SalaryStructureServiceImpl) Create(ctx context.Context, req salarystructure.CreateSalaryStructureRequest, actor string) (salarystructure.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return salarystructure.SalaryStructureResponse{}, err
	}

	effectiveFrom := time.Now()
	if req.EffectiveFrom != nil {
		if parsed, ok := validator.IsValidDate(*req.EffectiveFrom); ok {
			effectiveFrom = parsed
		}
	}

	var resp salarystructure.SalaryStructureResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.employeeRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		// The partial unique index on open-ended rows is the concurrent
		// guard; this check only produces a cleaner error for the common case.
		_, err = s.structureRepo.GetActiveByEmployeeID(txCtx, emp.EmployeeID)
		if err == nil {
			return salarystructure.ErrActiveStructureExists
		}
		if err != salarystructure.ErrActiveStructureNotFound {
			return err
		}

		created, err := s.structureRepo.Create(txCtx, salarystructure.SalaryStructure{
			EmployeeID:       emp.EmployeeID,
			BasicSalary:      req.BasicSalary,
			HRA:              req.HRA,
			DA:               req.DA,
			SpecialAllowance: req.SpecialAllowance,
			Conveyance:       req.Conveyance,
			MedicalAllowance: req.MedicalAllowance,
			OtherAllowances:  req.OtherAllowances,
			LeaveEncashment:  req.LeaveEncashment,
			Arrears:          req.Arrears,
			ProvidentFund:    req.ProvidentFund,
			ProfessionalTax:  req.ProfessionalTax,
			IncomeTax:        req.IncomeTax,
			OtherDeductions:  req.OtherDeductions,
			ESIC:             req.ESIC,
			Advance:          req.Advance,
			MLWF:             req.MLWF,
			EffectiveFrom:    effectiveFrom,
			CreatedBy:        actor,
		})
		if err != nil {
			return err
		}

		resp = toStructureResponse(created)
		return nil
	})
	if err != nil {
		return salarystructure.SalaryStructureResponse{}, err
	}

	return resp, nil
}

func (s *SalaryStructureServiceImpl) Get(ctx context.Context, id string) (salarystructure.SalaryStructureResponse, error) {
	if !validator.IsValidUUID(id) {
		return salarystructure.SalaryStructureResponse{}, salarystructure.ErrStructureNotFound
	}

	structure, err := s.structureRepo.GetByID(ctx, id)
	if err != nil {
		return salarystructure.SalaryStructureResponse{}, err
	}
	return toStructureResponse(structure), nil
}

func (s *SalaryStructureServiceImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (salarystructure.SalaryStructureResponse, error) {
	structure, err := s.structureRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return salarystructure.SalaryStructureResponse{}, err
	}
	return toStructureResponse(structure), nil
}

func (s *SalaryStructureServiceImpl) ListByEmployee(ctx context.Context, employeeID string) (salarystructure.ListSalaryStructureResponse, error) {
	structures, err := s.structureRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return salarystructure.ListSalaryStructureResponse{}, err
	}

	data := make([]salarystructure.SalaryStructureResponse, 0, len(structures))
	for _, structure := range structures {
		data = append(data, toStructureResponse(structure))
	}

	return salarystructure.ListSalaryStructureResponse{Data: data}, nil
}

func (s *SalaryStructureServiceImpl) Deactivate(ctx context.Context, id string, actor string) (salarystructure.SalaryStructureResponse, error) {
	if !validator.IsValidUUID(id) {
		return salarystructure.SalaryStructureResponse{}, salarystructure.ErrStructureNotFound
	}

	var resp salarystructure.SalaryStructureResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.structureRepo.Deactivate(txCtx, id, time.Now(), actor); err != nil {
			return err
		}

		structure, err := s.structureRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		resp = toStructureResponse(structure)
		return nil
	})
	if err != nil {
		return salarystructure.SalaryStructureResponse{}, err
	}

	return resp, nil
}

func toStructureResponse(s salarystructure.SalaryStructure) salarystructure.SalaryStructureResponse {
	var effectiveTo *string
	if s.EffectiveTo != nil {
		formatted := s.EffectiveTo.Format("2006-01-02")
		effectiveTo = &formatted
	}

	return salarystructure.SalaryStructureResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		BasicSalary:      s.BasicSalary,
		HRA:              s.HRA,
		DA:               s.DA,
		SpecialAllowance: s.SpecialAllowance,
		Conveyance:       s.Conveyance,
		MedicalAllowance: s.MedicalAllowance,
		OtherAllowances:  s.OtherAllowances,
		LeaveEncashment:  s.LeaveEncashment,
		Arrears:          s.Arrears,
		ProvidentFund:    s.ProvidentFund,
		ProfessionalTax:  s.ProfessionalTax,
		IncomeTax:        s.IncomeTax,
		OtherDeductions:  s.OtherDeductions,
		ESIC:             s.ESIC,
		Advance:          s.Advance,
		MLWF:             s.MLWF,
		EffectiveFrom:    s.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:      effectiveTo,
		IsActive:         s.IsActive(),
	}
}
