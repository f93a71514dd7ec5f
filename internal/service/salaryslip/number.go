package salaryslip

import (
	"fmt"
	"time"
)

// formatSlipNumber renders SS/YYYY/MM/NNNN. The sequence restarts at 0001
// for every calendar year-month.
func formatSlipNumber(year int, month time.Month, sequence int) string {
	return fmt.Sprintf("SS/%04d/%02d/%04d", year, int(month), sequence)
}
