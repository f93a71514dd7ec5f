package payroll

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// resolvePaymentTransition computes the paid amount and payment date for a
// target payment status. The result always satisfies 0 <= paid <= netSalary;
// an out-of-range requested amount is clamped, not rejected.
func resolvePaymentTransition(status payroll.PaymentStatus, requested *decimal.Decimal, netSalary decimal.Decimal, now time.Time) (decimal.Decimal, *time.Time) {
	switch status {
	case payroll.PaymentStatusPaid:
		return netSalary, &now
	case payroll.PaymentStatusPartPaid:
		amount := decimal.Zero
		if requested != nil {
			amount = *requested
		}
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		if amount.GreaterThan(netSalary) {
			amount = netSalary
		}
		return amount, &now
	default: // pending, hold
		return decimal.Zero, nil
	}
}
