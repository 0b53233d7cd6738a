package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-go/internal/domain/attendance"
	"github.com/motorph/payroll-go/internal/domain/employee"
)

// PayrollService defines the weekly payroll computation engine. The engine is
// a pure function of its inputs: identical inputs always yield identical
// slips, degenerate inputs yield all-zero slips, and no input produces an
// error.
type PayrollService interface {
	// Compute turns hours, an hourly rate, and the policy flags into a
	// pay slip.
	Compute(input ComputeInput) PaySlip

	// ComputeWeek derives the engine input from a weekly attendance record
	// and the employee's hourly rate, then computes the slip.
	ComputeWeek(week *attendance.WeekRecord, emp employee.Employee, prorateDeductions bool) PaySlip

	// LatePenalty returns the tardiness penalty for the given regular pay and
	// late minutes. Exposed for display; the engine does not deduct it.
	LatePenalty(regularPay decimal.Decimal, lateMinutes int) decimal.Decimal
}

// PayslipSink consumes a rendered pay-slip document. Implementations own the
// wire format.
type PayslipSink interface {
	Write(ctx context.Context, doc PayslipDocument) error
}
