package payroll

import "github.com/shopspring/decimal"

// Statutory contribution tables, all keyed on a monthly salary basis. The
// engine multiplies the weekly figure by the policy's monthly factor before
// the lookup; proration back to a weekly share happens in the engine, not
// here.

// SSS bracket: the first bracket whose upper bound exceeds the monthly salary
// wins. Bounds are exclusive.
type sssBracket struct {
	upperBound   float64
	contribution float64
}

// sssTable reproduces the published MotorPH contribution schedule: bounds
// step by 500 from 3,250, contributions step by 22.50 from 135.00. Salaries
// at or above the last bound contribute sssMaxContribution.
var sssTable = []sssBracket{
	{3250, 135.00},
	{3750, 157.50},
	{4250, 180.00},
	{4750, 202.50},
	{5250, 225.00},
	{5750, 247.50},
	{6250, 270.00},
	{6750, 292.50},
	{7250, 315.00},
	{7750, 337.50},
	{8250, 360.00},
	{8750, 382.50},
	{9250, 405.00},
	{9750, 427.50},
	{10250, 450.00},
	{10750, 472.50},
	{11250, 495.00},
	{11750, 517.50},
	{12250, 540.00},
	{12750, 562.50},
	{13250, 585.00},
	{13750, 607.50},
	{14250, 630.00},
	{14750, 652.50},
	{15250, 675.00},
	{15750, 697.50},
	{16250, 720.00},
	{16750, 742.50},
	{17250, 765.00},
	{17750, 787.50},
	{18250, 810.00},
	{18750, 832.50},
	{19250, 855.00},
	{19750, 877.50},
	{20250, 900.00},
	{20750, 922.50},
	{21250, 945.00},
	{21750, 967.50},
	{22250, 990.00},
	{22750, 1012.50},
	{23250, 1035.00},
	{23750, 1057.50},
	{24250, 1080.00},
	{24750, 1102.50},
}

var sssMaxContribution = decimal.NewFromFloat(1125.00)

// PhilHealth: 3% of monthly salary, floored at 300 below 10,000 and capped at
// 1,800 from 60,000. The employee shoulders half.
var (
	philHealthRate    = decimal.NewFromFloat(0.03)
	philHealthEEShare = decimal.NewFromFloat(0.5)
	philHealthMinPay  = decimal.NewFromInt(10000)
	philHealthMaxPay  = decimal.NewFromInt(60000)
	philHealthMin     = decimal.NewFromInt(300)
	philHealthMax     = decimal.NewFromInt(1800)
)

// Pag-IBIG: 1% of monthly salary up to the threshold, 2% above, never more
// than 100.
var (
	pagIbigRateLower = decimal.NewFromFloat(0.01)
	pagIbigRateUpper = decimal.NewFromFloat(0.02)
	pagIbigThreshold = decimal.NewFromInt(1500)
	pagIbigMax       = decimal.NewFromInt(100)
)

// Withholding tax: progressive brackets on monthly taxable income.
type taxBracket struct {
	upperBound decimal.Decimal // inclusive
	fixed      decimal.Decimal
	rate       decimal.Decimal
	over       decimal.Decimal // excess is taxed above this figure
}

var taxTable = []taxBracket{
	{decimal.NewFromInt(20832), decimal.Zero, decimal.Zero, decimal.NewFromInt(20832)},
	{decimal.NewFromInt(33333), decimal.Zero, decimal.NewFromFloat(0.20), decimal.NewFromInt(20832)},
	{decimal.NewFromInt(66667), decimal.NewFromInt(2500), decimal.NewFromFloat(0.25), decimal.NewFromInt(33333)},
	{decimal.NewFromInt(166667), decimal.NewFromInt(10833), decimal.NewFromFloat(0.30), decimal.NewFromInt(66667)},
	{decimal.NewFromInt(666667), decimal.NewFromFloat(40833.33), decimal.NewFromFloat(0.32), decimal.NewFromInt(166667)},
}

// Above the last bracket bound.
var taxTopBracket = taxBracket{
	upperBound: decimal.Decimal{},
	fixed:      decimal.NewFromFloat(200833.33),
	rate:       decimal.NewFromFloat(0.35),
	over:       decimal.NewFromInt(666667),
}

// sssMonthly returns the SSS contribution for a monthly salary.
func sssMonthly(monthlySalary decimal.Decimal) decimal.Decimal {
	for _, bracket := range sssTable {
		if monthlySalary.LessThan(decimal.NewFromFloat(bracket.upperBound)) {
			return decimal.NewFromFloat(bracket.contribution)
		}
	}
	return sssMaxContribution
}

// philHealthMonthly returns the employee's PhilHealth share for a monthly
// salary.
func philHealthMonthly(monthlySalary decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	switch {
	case monthlySalary.LessThanOrEqual(philHealthMinPay):
		total = philHealthMin
	case monthlySalary.GreaterThanOrEqual(philHealthMaxPay):
		total = philHealthMax
	default:
		total = monthlySalary.Mul(philHealthRate)
	}
	return total.Mul(philHealthEEShare)
}

// pagIbigMonthly returns the Pag-IBIG contribution for a monthly salary.
func pagIbigMonthly(monthlySalary decimal.Decimal) decimal.Decimal {
	var contribution decimal.Decimal
	if monthlySalary.LessThanOrEqual(pagIbigThreshold) {
		contribution = monthlySalary.Mul(pagIbigRateLower)
	} else {
		contribution = monthlySalary.Mul(pagIbigRateUpper)
	}
	return decimal.Min(contribution, pagIbigMax)
}

// withholdingTaxMonthly returns the progressive tax for a monthly taxable
// income.
func withholdingTaxMonthly(monthlyTaxable decimal.Decimal) decimal.Decimal {
	bracket := taxTopBracket
	for _, b := range taxTable {
		if monthlyTaxable.LessThanOrEqual(b.upperBound) {
			bracket = b
			break
		}
	}
	return bracket.fixed.Add(monthlyTaxable.Sub(bracket.over).Mul(bracket.rate))
}
