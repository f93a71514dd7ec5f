package payroll

import (
	"testing"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPayrollRequestValidate(t *testing.T) {
	valid := ProcessPayrollRequest{
		EmployeeID: "EMP001",
		Month:      "2024-03",
	}
	assert.NoError(t, valid.Validate())

	missing := ProcessPayrollRequest{}
	err := missing.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "month")

	badMonth := ProcessPayrollRequest{EmployeeID: "EMP001", Month: "03-2024"}
	err = badMonth.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "month")

	negative := ProcessPayrollRequest{
		EmployeeID: "EMP001",
		Month:      "2024-03",
		Attendance: AttendanceInput{PresentDays: -1},
	}
	err = negative.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "present_days")
}

func TestAttendanceInputDefaultsWorkingDays(t *testing.T) {
	att := AttendanceInput{PresentDays: 20}.ToAttendance()
	assert.Equal(t, DefaultWorkingDays, att.TotalWorkingDays)

	zero := 0
	explicit := AttendanceInput{PresentDays: 20, TotalWorkingDays: &zero}.ToAttendance()
	assert.Equal(t, 0, explicit.TotalWorkingDays)

	thirty := 30
	supplied := AttendanceInput{TotalWorkingDays: &thirty}.ToAttendance()
	assert.Equal(t, 30, supplied.TotalWorkingDays)
}

func TestBulkProcessRequestValidate(t *testing.T) {
	valid := BulkProcessRequest{Month: "2024-04", EmployeeIDs: []string{"EMP001"}}
	assert.NoError(t, valid.Validate())

	var errs validator.ValidationErrors

	empty := BulkProcessRequest{Month: "2024-04"}
	err := empty.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "employee_ids")

	noMonth := BulkProcessRequest{EmployeeIDs: []string{"EMP001"}}
	err = noMonth.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "month")
}

func TestUpdatePaymentStatusRequestValidate(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	valid := UpdatePaymentStatusRequest{PaymentStatus: "paid"}
	assert.NoError(t, valid.Validate())

	partPaid := UpdatePaymentStatusRequest{PaymentStatus: "part-paid", PaidAmount: &amount}
	assert.NoError(t, partPaid.Validate())

	var errs validator.ValidationErrors

	unknown := UpdatePaymentStatusRequest{PaymentStatus: "refunded"}
	err := unknown.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "payment_status")

	partPaidNoAmount := UpdatePaymentStatusRequest{PaymentStatus: "part-paid"}
	err = partPaidNoAmount.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "paid_amount")

	badDate := "2024/01/01"
	invalidDate := UpdatePaymentStatusRequest{PaymentStatus: "paid", PaymentDate: &badDate}
	err = invalidDate.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "payment_date")
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, status := range []string{"pending", "paid", "hold", "part-paid"} {
		assert.True(t, IsValidPaymentStatus(status), status)
	}
	assert.False(t, IsValidPaymentStatus("processed"))
	assert.False(t, IsValidPaymentStatus(""))
}
