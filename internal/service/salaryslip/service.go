package salaryslip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salaryslip"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/pdfgen"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
)

type SalarySlipServiceImpl struct {
	db          *database.DB
	slipRepo    salaryslip.SalarySlipRepository
	payrollRepo payroll.PayrollRepository
}

func NewSalarySlipService(
	db *database.DB,
	slipRepo salaryslip.SalarySlipRepository,
	payrollRepo payroll.PayrollRepository,
) salaryslip.SalarySlipService {
	return &SalarySlipServiceImpl{
		db:          db,
		slipRepo:    slipRepo,
		payrollRepo: payrollRepo,
	}
}

func (s *SalarySlipServiceImpl) Generate(ctx context.Context, req salaryslip.GenerateSlipRequest, actor string) (salaryslip.SalarySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}
	if !validator.IsValidUUID(req.PayrollID) {
		return salaryslip.SalarySlipResponse{}, payroll.ErrPayrollNotFound
	}

	var resp salaryslip.SalarySlipResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetByID(txCtx, req.PayrollID)
		if err != nil {
			return err
		}

		exists, err := s.slipRepo.ExistsByPayrollID(txCtx, record.ID)
		if err != nil {
			return err
		}
		if exists {
			return salaryslip.ErrSlipAlreadyExists
		}

		// Numbering is scoped to the calendar year-month of generation,
		// not the payroll month. A March payroll slipped in April carries
		// an April number.
		now := time.Now()
		maxSeq, err := s.slipRepo.MaxSequenceForPeriod(txCtx, now.Year(), int(now.Month()))
		if err != nil {
			return err
		}

		created, err := s.slipRepo.Create(txCtx, salaryslip.SalarySlip{
			PayrollID:   record.ID,
			EmployeeID:  record.EmployeeID,
			Month:       record.Month,
			BasicSalary: record.BasicSalary,
			Allowances:  record.Allowances,
			Deductions:  record.Deductions,
			NetSalary:   record.NetSalary,
			PresentDays: record.PresentDays,
			AbsentDays:  record.AbsentDays,
			HalfDays:    record.HalfDays,
			Leaves:      record.Leaves,
			SlipNumber:  formatSlipNumber(now.Year(), now.Month(), maxSeq+1),
			CreatedBy:   actor,
		})
		if err != nil {
			return err
		}

		resp = toSlipResponse(created)
		return nil
	})
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}

	return resp, nil
}

func (s *SalarySlipServiceImpl) Get(ctx context.Context, id string) (salaryslip.SalarySlipResponse, error) {
	if !validator.IsValidUUID(id) {
		return salaryslip.SalarySlipResponse{}, salaryslip.ErrSlipNotFound
	}

	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *SalarySlipServiceImpl) List(ctx context.Context, filter salaryslip.SlipFilter) (salaryslip.ListSalarySlipResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	slips, totalCount, err := s.slipRepo.List(ctx, filter)
	if err != nil {
		return salaryslip.ListSalarySlipResponse{}, err
	}

	data := make([]salaryslip.SalarySlipResponse, 0, len(slips))
	for _, slip := range slips {
		data = append(data, toSlipResponse(slip))
	}

	return salaryslip.ListSalarySlipResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *SalarySlipServiceImpl) MarkEmailed(ctx context.Context, id string) (salaryslip.SalarySlipResponse, error) {
	if !validator.IsValidUUID(id) {
		return salaryslip.SalarySlipResponse{}, salaryslip.ErrSlipNotFound
	}

	slip, err := s.slipRepo.MarkEmailed(ctx, id)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *SalarySlipServiceImpl) UpdateNotes(ctx context.Context, req salaryslip.UpdateSlipNotesRequest) (salaryslip.SalarySlipResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return salaryslip.SalarySlipResponse{}, salaryslip.ErrSlipNotFound
	}

	slip, err := s.slipRepo.UpdateNotes(ctx, req.ID, req.Notes)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *SalarySlipServiceImpl) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	if !validator.IsValidUUID(id) {
		return nil, "", salaryslip.ErrSlipNotFound
	}

	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	doc := pdfgen.SlipDocument{
		SlipNumber:  slip.SlipNumber,
		Month:       slip.Month,
		EmployeeID:  slip.EmployeeID,
		BasicSalary: slip.BasicSalary,
		Allowances:  slip.Allowances,
		Deductions:  slip.Deductions,
		NetSalary:   slip.NetSalary,
		PresentDays: slip.PresentDays,
		AbsentDays:  slip.AbsentDays,
		HalfDays:    slip.HalfDays,
		Leaves:      slip.Leaves,
	}
	if slip.Notes != nil {
		doc.Notes = *slip.Notes
	}

	// The identity fields come from the payroll snapshot so the document
	// matches what was true at processing time.
	record, err := s.payrollRepo.GetByID(ctx, slip.PayrollID)
	if err != nil && !errors.Is(err, payroll.ErrPayrollNotFound) {
		return nil, "", err
	}
	if err == nil {
		doc.FullName = record.EmployeeDetails.FullName
		doc.Department = record.EmployeeDetails.Department
		doc.Designation = record.EmployeeDetails.Designation
	}

	data, err := pdfgen.RenderSlip(doc)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", strings.ReplaceAll(slip.SlipNumber, "/", "-"))
	return data, filename, nil
}

func toSlipResponse(slip salaryslip.SalarySlip) salaryslip.SalarySlipResponse {
	var emailSentAt *string
	if slip.EmailSentAt != nil {
		formatted := slip.EmailSentAt.Format(time.RFC3339)
		emailSentAt = &formatted
	}

	return salaryslip.SalarySlipResponse{
		ID:          slip.ID,
		PayrollID:   slip.PayrollID,
		EmployeeID:  slip.EmployeeID,
		Month:       slip.Month,
		BasicSalary: slip.BasicSalary,
		Allowances:  slip.Allowances,
		Deductions:  slip.Deductions,
		NetSalary:   slip.NetSalary,
		PresentDays: slip.PresentDays,
		AbsentDays:  slip.AbsentDays,
		HalfDays:    slip.HalfDays,
		Leaves:      slip.Leaves,
		SlipNumber:  slip.SlipNumber,
		EmailSent:   slip.EmailSent,
		EmailSentAt: emailSentAt,
		Notes:       slip.Notes,
		CreatedAt:   slip.CreatedAt.Format(time.RFC3339),
	}
}
