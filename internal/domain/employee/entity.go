package employee

import "time"

type Employee struct {
	ID                string
	EmployeeID        string // business code, e.g. EMP001
	FullName          string
	Email             string
	Department        string
	Designation       string
	Status            Status
	BankName          string
	BankAccountNumber string
	BankIFSC          string
	PAN               string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
