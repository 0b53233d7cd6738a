package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-go/internal/domain/attendance"
	"github.com/motorph/payroll-go/internal/domain/employee"
	"github.com/motorph/payroll-go/internal/domain/payroll"
)

// PayrollServiceImpl computes weekly pay slips under a fixed policy and work
// schedule. The engine holds no mutable state; it is safe for concurrent use.
type PayrollServiceImpl struct {
	policy payroll.Policy
	sched  attendance.WorkSchedule
}

func NewPayrollService(policy payroll.Policy, sched attendance.WorkSchedule) payroll.PayrollService {
	return &PayrollServiceImpl{
		policy: policy,
		sched:  sched,
	}
}

// Compute implements payroll.PayrollService. Statutory contributions and tax
// apply only when HasLateness is set; overtime pay is forfeited on the same
// condition.
func (s *PayrollServiceImpl) Compute(input payroll.ComputeInput) payroll.PaySlip {
	regularPay := input.RegularHours.Mul(input.HourlyRate)

	overtimePay := decimal.Zero
	if !input.HasLateness && input.OvertimeHours.IsPositive() {
		overtimePay = input.OvertimeHours.Mul(input.HourlyRate).Mul(s.policy.OvertimeMultiplier)
	}

	gross := regularPay.Add(overtimePay)

	sss := decimal.Zero
	philHealth := decimal.Zero
	pagIbig := decimal.Zero
	if input.HasLateness {
		sss = s.sss(gross)
		philHealth = s.philHealth(gross)
		pagIbig = s.pagIbig(gross)
		if input.ProrateDeductions {
			sss = sss.Div(s.policy.MonthlyFactor)
			philHealth = philHealth.Div(s.policy.MonthlyFactor)
			pagIbig = pagIbig.Div(s.policy.MonthlyFactor)
		}
	}

	taxable := gross.Sub(sss).Sub(philHealth).Sub(pagIbig)

	tax := decimal.Zero
	if input.HasLateness {
		tax = s.withholdingTax(taxable)
		if input.ProrateDeductions {
			tax = tax.Div(s.policy.MonthlyFactor)
		}
	}

	net := taxable.Sub(tax)

	return payroll.PaySlip{
		Gross:       gross.Round(2),
		SSS:         sss.Round(2),
		PhilHealth:  philHealth.Round(2),
		PagIbig:     pagIbig.Round(2),
		Taxable:     taxable.Round(2),
		Tax:         tax.Round(2),
		Net:         net.Round(2),
		RegularPay:  regularPay.Round(2),
		OvertimePay: overtimePay.Round(2),
	}
}

// ComputeWeek implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeWeek(week *attendance.WeekRecord, emp employee.Employee, prorateDeductions bool) payroll.PaySlip {
	return s.Compute(payroll.ComputeInput{
		RegularHours:      week.RegularHours(s.sched),
		OvertimeHours:     week.OvertimeHours(s.sched),
		HourlyRate:        emp.HourlyRate,
		HasLateness:       week.HasDeductibleLateness(s.sched),
		ProrateDeductions: prorateDeductions,
	})
}

// LatePenalty implements payroll.PayrollService. The penalty scales with late
// minutes against a standard day and is capped at the policy's share of
// regular pay. It is informational; Compute never subtracts it.
func (s *PayrollServiceImpl) LatePenalty(regularPay decimal.Decimal, lateMinutes int) decimal.Decimal {
	if lateMinutes <= 0 {
		return decimal.Zero
	}

	lateShare := decimal.NewFromInt(int64(lateMinutes)).
		Div(decimal.NewFromInt(int64(s.sched.StandardDayMinutes)))
	penalty := regularPay.Mul(s.policy.LatePenaltyRate).Mul(lateShare)
	cap := regularPay.Mul(s.policy.LatePenaltyCapRate)

	return decimal.Min(penalty, cap).Round(2)
}

// Table lookups on a weekly figure. Each converts to the monthly basis first;
// the caller prorates the monthly result back down when needed.

func (s *PayrollServiceImpl) sss(weeklyGross decimal.Decimal) decimal.Decimal {
	return sssMonthly(weeklyGross.Mul(s.policy.MonthlyFactor))
}

func (s *PayrollServiceImpl) philHealth(weeklyGross decimal.Decimal) decimal.Decimal {
	return philHealthMonthly(weeklyGross.Mul(s.policy.MonthlyFactor))
}

func (s *PayrollServiceImpl) pagIbig(weeklyGross decimal.Decimal) decimal.Decimal {
	return pagIbigMonthly(weeklyGross.Mul(s.policy.MonthlyFactor))
}

func (s *PayrollServiceImpl) withholdingTax(weeklyTaxable decimal.Decimal) decimal.Decimal {
	return withholdingTaxMonthly(weeklyTaxable.Mul(s.policy.MonthlyFactor))
}
