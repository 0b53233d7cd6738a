package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-go/internal/domain/employee"
)

// ComputeInput - the engine's single entry point. Callers wanting the legacy
// defaults construct the value with both flags false.
type ComputeInput struct {
	RegularHours      decimal.Decimal
	OvertimeHours     decimal.Decimal
	HourlyRate        decimal.Decimal
	HasLateness       bool
	ProrateDeductions bool
}

// PayslipDocument - a computed pay slip plus the identifying metadata and
// weekly attendance summary a sink needs to render it. Wire format is each
// sink's concern.
type PayslipDocument struct {
	DocumentID            string
	Employee              employee.Employee
	WeekStartDate         string
	Slip                  PaySlip
	WeeklyHours           decimal.Decimal
	RegularHours          decimal.Decimal
	OvertimeHours         decimal.Decimal
	TotalLateMinutes      int
	DeductibleLateMinutes int
	TotalUndertimeMinutes int
	GeneratedAt           time.Time
}
