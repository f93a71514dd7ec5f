package salarystructure

import "errors"

var (
	ErrStructureNotFound       = errors.New("salary structure not found")
	ErrActiveStructureNotFound = errors.New("no active salary structure for employee")
	ErrActiveStructureExists   = errors.New("employee already has an active salary structure")
	ErrStructureNotActive      = errors.New("salary structure is not active")
)
