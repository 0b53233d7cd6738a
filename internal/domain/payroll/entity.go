package payroll

import "github.com/shopspring/decimal"

// PaySlip - the nine-figure weekly payroll breakdown, PHP amounts rounded to
// two places. Immutable once emitted and freely shareable.
//
// Invariants: Gross = RegularPay + OvertimePay, Taxable = Gross - SSS -
// PhilHealth - PagIbig, Net = Taxable - Tax, and Net never exceeds Gross.
type PaySlip struct {
	Gross       decimal.Decimal
	SSS         decimal.Decimal
	PhilHealth  decimal.Decimal
	PagIbig     decimal.Decimal
	Taxable     decimal.Decimal
	Tax         decimal.Decimal
	Net         decimal.Decimal
	RegularPay  decimal.Decimal
	OvertimePay decimal.Decimal
}

// Policy - Company compensation policy applied by the engine. Immutable;
// tests vary thresholds by constructing their own value.
type Policy struct {
	OvertimeMultiplier decimal.Decimal
	LatePenaltyRate    decimal.Decimal
	LatePenaltyCapRate decimal.Decimal // ceiling as a share of regular pay
	MonthlyFactor      decimal.Decimal // weekly-to-monthly basis for table lookups
}

// DefaultPolicy returns the MotorPH policy: 1.25x overtime, 10% late penalty
// rate capped at 20% of regular pay, and the weekly-times-four monthly basis.
func DefaultPolicy() Policy {
	return Policy{
		OvertimeMultiplier: decimal.NewFromFloat(1.25),
		LatePenaltyRate:    decimal.NewFromFloat(0.10),
		LatePenaltyCapRate: decimal.NewFromFloat(0.20),
		MonthlyFactor:      decimal.NewFromInt(4),
	}
}
