package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/motorph/payroll-go/internal/pkg/timeutil"
)

// DayRecord - one employee-day of raw clock data. The value is immutable;
// every derivation is computed on demand against a WorkSchedule. Clock
// strings that fail to parse degrade the affected derivation to zero, they
// never propagate an error to the caller.
type DayRecord struct {
	EmployeeID string
	Date       string // opaque key, used for grouping and display only
	TimeIn     string // 24-hour "H:MM"
	TimeOut    string // 24-hour "H:MM"
}

// NewDayRecord builds a DayRecord from raw attendance fields.
func NewDayRecord(employeeID, date, timeIn, timeOut string) DayRecord {
	return DayRecord{
		EmployeeID: employeeID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
	}
}

// lunchDeductThresholdMinutes is the raw duration beyond which a day is
// assumed to include the unpaid lunch hour.
const lunchDeductThresholdMinutes = 5 * 60

// DailyHours returns hours worked between clock-in and clock-out, minus the
// 60-minute lunch when the raw duration exceeds five hours, in decimal hours
// rounded to two places.
func (d DayRecord) DailyHours(sched WorkSchedule) decimal.Decimal {
	in, out, ok := d.parseClocks()
	if !ok {
		return decimal.Zero
	}

	minutes := out - in
	if minutes < 0 {
		minutes = 0
	}
	if minutes > lunchDeductThresholdMinutes {
		minutes -= 60
	}

	return timeutil.MinutesToHours(minutes)
}

// RegularHours returns hours worked within the regular window, minus the
// portion of lunch that overlaps the worked period, in decimal hours rounded
// to two places.
func (d DayRecord) RegularHours(sched WorkSchedule) decimal.Decimal {
	in, out, ok := d.parseClocks()
	if !ok {
		return decimal.Zero
	}

	effectiveStart := in
	if effectiveStart < sched.WorkStartMinute {
		effectiveStart = sched.WorkStartMinute
	}
	effectiveEnd := out
	if effectiveEnd > sched.WorkEndMinute {
		effectiveEnd = sched.WorkEndMinute
	}
	if effectiveEnd <= effectiveStart {
		return decimal.Zero
	}

	minutes := effectiveEnd - effectiveStart
	minutes -= lunchOverlapMinutes(effectiveStart, effectiveEnd, sched)

	return timeutil.MinutesToHours(minutes)
}

// lunchOverlapMinutes returns how many worked minutes fall inside the lunch
// window, capped at the full lunch hour. Four cases: work encloses lunch,
// work covers only the start of lunch, work covers only the end of lunch,
// work sits entirely inside lunch.
func lunchOverlapMinutes(start, end int, sched WorkSchedule) int {
	lunchMinutes := sched.LunchEndMinute - sched.LunchStartMinute
	includesLunchStart := start <= sched.LunchStartMinute && end > sched.LunchStartMinute
	includesLunchEnd := start < sched.LunchEndMinute && end >= sched.LunchEndMinute

	switch {
	case includesLunchStart && includesLunchEnd:
		return lunchMinutes
	case includesLunchStart:
		overlap := end - sched.LunchStartMinute
		if overlap > lunchMinutes {
			overlap = lunchMinutes
		}
		return overlap
	case includesLunchEnd:
		overlap := sched.LunchEndMinute - start
		if overlap > lunchMinutes {
			overlap = lunchMinutes
		}
		return overlap
	case start >= sched.LunchStartMinute && end <= sched.LunchEndMinute:
		return end - start
	}
	return 0
}

// OvertimeHours returns hours worked past the regular window end, rounded to
// two places. Deductible lateness forfeits overtime for the day; there is no
// credit for arriving before the window opens.
func (d DayRecord) OvertimeHours(sched WorkSchedule) decimal.Decimal {
	if d.LateForDeduction(sched) {
		return decimal.Zero
	}

	out, ok := d.parseClock(d.TimeOut)
	if !ok {
		return decimal.Zero
	}
	if out <= sched.WorkEndMinute {
		return decimal.Zero
	}

	return timeutil.MinutesToHours(out - sched.WorkEndMinute)
}

// LateMinutes returns whole minutes of arrival past the window start. Minutes
// within the grace period still count here; they matter for reporting only.
func (d DayRecord) LateMinutes(sched WorkSchedule) int {
	in, ok := d.parseClock(d.TimeIn)
	if !ok {
		return 0
	}
	if in <= sched.WorkStartMinute {
		return 0
	}
	return in - sched.WorkStartMinute
}

// LateForDeduction reports whether the arrival is past the grace period and
// therefore triggers the deduction policy. Unparseable clock-ins give the
// employee the benefit of the doubt.
func (d DayRecord) LateForDeduction(sched WorkSchedule) bool {
	in, ok := d.parseClock(d.TimeIn)
	if !ok {
		return false
	}
	return in > sched.DeductionStartMinute
}

// UndertimeMinutes returns whole minutes of departure before the window end.
func (d DayRecord) UndertimeMinutes(sched WorkSchedule) int {
	out, ok := d.parseClock(d.TimeOut)
	if !ok {
		return 0
	}
	if out >= sched.WorkEndMinute {
		return 0
	}
	return sched.WorkEndMinute - out
}

func (d DayRecord) parseClocks() (in, out int, ok bool) {
	in, ok = d.parseClock(d.TimeIn)
	if !ok {
		return 0, 0, false
	}
	out, ok = d.parseClock(d.TimeOut)
	if !ok {
		return 0, 0, false
	}
	return in, out, true
}

func (d DayRecord) parseClock(s string) (int, bool) {
	minutes, err := timeutil.ParseClock(s)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"employee_id": d.EmployeeID,
			"date":        d.Date,
			"clock":       s,
		}).Debug("unparseable clock string, derivation degrades to zero")
		return 0, false
	}
	return minutes, true
}
