package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salaryslip"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db            *database.DB
	payrollRepo   payroll.PayrollRepository
	structureRepo salarystructure.SalaryStructureRepository
	employeeRepo  employee.EmployeeRepository
	slipRepo      salaryslip.SalarySlipRepository
	calculator    *Calculator
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	structureRepo salarystructure.SalaryStructureRepository,
	employeeRepo employee.EmployeeRepository,
	slipRepo salaryslip.SalarySlipRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:            db,
		payrollRepo:   payrollRepo,
		structureRepo: structureRepo,
		employeeRepo:  employeeRepo,
		slipRepo:      slipRepo,
		calculator:    NewCalculator(),
	}
}

func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessPayrollRequest, actor string) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var resp payroll.PayrollResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.employeeRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		structure, err := s.structureRepo.GetActiveByEmployeeID(txCtx, emp.EmployeeID)
		if err != nil {
			return err
		}

		// Pre-check for a friendlier conflict error. The unique index on
		// (employee_id, month) remains the guard against concurrent writers.
		_, err = s.payrollRepo.GetByEmployeeAndMonth(txCtx, emp.EmployeeID, req.Month)
		if err == nil {
			return payroll.ErrPayrollAlreadyExists
		}
		if !errors.Is(err, payroll.ErrPayrollNotFound) {
			return err
		}

		att := req.Attendance.ToAttendance()
		result := s.calculator.Calculate(structure, att)

		record := payroll.Payroll{
			EmployeeID:       emp.EmployeeID,
			Month:            req.Month,
			BasicSalary:      result.BasicSalary,
			Allowances:       result.Allowances,
			Deductions:       result.Deductions,
			NetSalary:        result.NetSalary,
			PresentDays:      att.PresentDays,
			AbsentDays:       att.AbsentDays,
			HalfDays:         att.HalfDays,
			Leaves:           att.Leaves,
			TotalWorkingDays: att.TotalWorkingDays,
			Status:           payroll.StatusProcessed,
			PaymentStatus:    payroll.PaymentStatusPending,
			PaidAmount:       decimal.Zero,
			EmployeeDetails: payroll.EmployeeDetails{
				FullName:          emp.FullName,
				Email:             emp.Email,
				Department:        emp.Department,
				Designation:       emp.Designation,
				BankName:          emp.BankName,
				BankAccountNumber: emp.BankAccountNumber,
				BankIFSC:          emp.BankIFSC,
				PAN:               emp.PAN,
			},
			CreatedBy: actor,
		}

		created, err := s.payrollRepo.Create(txCtx, record)
		if err != nil {
			return err
		}

		resp = toPayrollResponse(created)
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return resp, nil
}

func (s *PayrollServiceImpl) ProcessBulk(ctx context.Context, req payroll.BulkProcessRequest, actor string) (payroll.BulkProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkProcessResponse{}, err
	}

	resp := payroll.BulkProcessResponse{
		Month:     req.Month,
		Requested: len(req.EmployeeIDs),
		Results:   make([]payroll.BulkItemResult, 0, len(req.EmployeeIDs)),
	}

	// Each employee runs in its own transaction so one failure cannot roll
	// back another employee's record.
	for _, employeeID := range req.EmployeeIDs {
		item := payroll.BulkItemResult{EmployeeID: employeeID}

		processed, err := s.Process(ctx, payroll.ProcessPayrollRequest{
			EmployeeID: employeeID,
			Month:      req.Month,
			Attendance: req.Attendance[employeeID],
		}, actor)
		if err != nil {
			msg := err.Error()
			item.Error = &msg
			resp.Failed++
		} else {
			item.Payroll = &processed
			resp.Processed++
		}

		resp.Results = append(resp.Results, item)
	}

	return resp, nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	// A malformed ID can never match a row; reject before the uuid cast.
	if !validator.IsValidUUID(id) {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(record), nil
}

func (s *PayrollServiceImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(record), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	data := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		data = append(data, toPayrollResponse(record))
	}

	return payroll.ListPayrollResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) Summary(ctx context.Context, month *string) (payroll.PayrollSummaryResponse, error) {
	if month != nil && !validator.IsValidMonth(*month) {
		return payroll.PayrollSummaryResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}
	return s.payrollRepo.Summary(ctx, month)
}

func (s *PayrollServiceImpl) UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest, actor string) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !validator.IsValidUUID(req.ID) {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}

	var resp payroll.PayrollResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		if req.PaymentDate != nil {
			if parsed, ok := validator.IsValidDate(*req.PaymentDate); ok {
				now = parsed
			}
		}

		status := payroll.PaymentStatus(req.PaymentStatus)
		paidAmount, paymentDate := resolvePaymentTransition(status, req.PaidAmount, record.NetSalary, now)

		updated, err := s.payrollRepo.UpdatePayment(txCtx, record.ID, status, paidAmount, paymentDate, actor)
		if err != nil {
			return err
		}

		resp = toPayrollResponse(updated)
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return resp, nil
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return payroll.ErrPayrollNotFound
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		hasSlip, err := s.slipRepo.ExistsByPayrollID(txCtx, record.ID)
		if err != nil {
			return err
		}
		if hasSlip {
			return payroll.ErrPayrollHasSlip
		}

		return s.payrollRepo.Delete(txCtx, record.ID)
	})
}

func (s *PayrollServiceImpl) ExportCSV(ctx context.Context, month string) ([]byte, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	records, _, err := s.payrollRepo.List(ctx, payroll.PayrollFilter{
		Month:     &month,
		Page:      1,
		Limit:     10000,
		SortBy:    "employee_id",
		SortOrder: "asc",
	})
	if err != nil {
		return nil, err
	}

	// Bank and identity columns come from the processing-time snapshot;
	// only the employee's current status is looked up live.
	employeeIDs := make([]string, 0, len(records))
	for _, record := range records {
		employeeIDs = append(employeeIDs, record.EmployeeID)
	}
	statusByID := map[string]string{}
	if len(employeeIDs) > 0 {
		employees, err := s.employeeRepo.GetByEmployeeIDs(ctx, employeeIDs)
		if err != nil {
			return nil, err
		}
		for _, emp := range employees {
			statusByID[emp.EmployeeID] = string(emp.Status)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"employee_id", "full_name", "department", "designation", "month",
		"basic_salary", "allowances", "deductions", "net_salary",
		"payment_status", "paid_amount", "payment_date",
		"bank_name", "bank_account_number", "bank_ifsc", "pan",
		"employee_status",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, record := range records {
		paymentDate := ""
		if record.PaymentDate != nil {
			paymentDate = record.PaymentDate.Format("2006-01-02")
		}
		row := []string{
			record.EmployeeID,
			record.EmployeeDetails.FullName,
			record.EmployeeDetails.Department,
			record.EmployeeDetails.Designation,
			record.Month,
			record.BasicSalary.StringFixed(2),
			record.Allowances.StringFixed(2),
			record.Deductions.StringFixed(2),
			record.NetSalary.StringFixed(2),
			string(record.PaymentStatus),
			record.PaidAmount.StringFixed(2),
			paymentDate,
			record.EmployeeDetails.BankName,
			record.EmployeeDetails.BankAccountNumber,
			record.EmployeeDetails.BankIFSC,
			record.EmployeeDetails.PAN,
			statusByID[record.EmployeeID],
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func toPayrollResponse(record payroll.Payroll) payroll.PayrollResponse {
	var paymentDate *string
	if record.PaymentDate != nil {
		formatted := record.PaymentDate.Format("2006-01-02")
		paymentDate = &formatted
	}

	return payroll.PayrollResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		Month:            record.Month,
		BasicSalary:      record.BasicSalary,
		Allowances:       record.Allowances,
		Deductions:       record.Deductions,
		NetSalary:        record.NetSalary,
		PresentDays:      record.PresentDays,
		AbsentDays:       record.AbsentDays,
		HalfDays:         record.HalfDays,
		Leaves:           record.Leaves,
		TotalWorkingDays: record.TotalWorkingDays,
		Status:           string(record.Status),
		PaymentStatus:    string(record.PaymentStatus),
		PaidAmount:       record.PaidAmount,
		PaymentDate:      paymentDate,
		EmployeeDetails:  record.EmployeeDetails,
		CreatedAt:        record.CreatedAt.Format(time.RFC3339),
	}
}
