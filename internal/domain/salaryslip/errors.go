package salaryslip

import "errors"

var (
	ErrSlipNotFound      = errors.New("salary slip not found")
	ErrSlipAlreadyExists = errors.New("salary slip already exists for this payroll record")
	ErrSlipNumberTaken   = errors.New("slip number already taken")
)
