package response

import (
	"errors"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/salaryslip"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Salary structure domain errors
	case errors.Is(err, salarystructure.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, salarystructure.ErrActiveStructureNotFound):
		NotFound(w, "No active salary structure for employee")
	case errors.Is(err, salarystructure.ErrActiveStructureExists):
		Conflict(w, "Employee already has an active salary structure")
	case errors.Is(err, salarystructure.ErrStructureNotActive):
		Conflict(w, "Salary structure is already deactivated")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already processed for this employee and month")
	case errors.Is(err, payroll.ErrInvalidPaymentStatus):
		BadRequest(w, "Invalid payment status", nil)
	case errors.Is(err, payroll.ErrPayrollHasSlip):
		PreconditionFailed(w, "Payroll record has a salary slip; delete the slip first")

	// Salary slip domain errors
	case errors.Is(err, salaryslip.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, salaryslip.ErrSlipAlreadyExists):
		Conflict(w, "Salary slip already generated for this payroll")
	case errors.Is(err, salaryslip.ErrSlipNumberTaken):
		Conflict(w, "Slip number already taken, retry the request")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
