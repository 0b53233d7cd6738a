package attendance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeekRecord aggregates up to seven DayRecords for a single employee. It is
// created empty, appended to during ingestion, and read-only afterwards.
// Insertion order is preserved for display but carries no meaning. The record
// is not safe for concurrent mutation.
type WeekRecord struct {
	employeeID    string
	weekStartDate string
	days          []DayRecord
}

// NewWeekRecord creates an empty weekly record for one employee.
func NewWeekRecord(employeeID, weekStartDate string) *WeekRecord {
	return &WeekRecord{
		employeeID:    employeeID,
		weekStartDate: weekStartDate,
	}
}

// Append adds a daily record to the week. Records carrying a different
// employee id are rejected without mutating the week.
func (w *WeekRecord) Append(day DayRecord) error {
	if day.EmployeeID != w.employeeID {
		return fmt.Errorf("%w: week belongs to %s, record belongs to %s",
			ErrEmployeeMismatch, w.employeeID, day.EmployeeID)
	}
	w.days = append(w.days, day)
	return nil
}

// EmployeeID returns the employee the week belongs to.
func (w *WeekRecord) EmployeeID() string {
	return w.employeeID
}

// WeekStartDate returns the date the week starts on, as opaque text.
func (w *WeekRecord) WeekStartDate() string {
	return w.weekStartDate
}

// Days returns the daily records in insertion order.
func (w *WeekRecord) Days() []DayRecord {
	return w.days
}

// DayCount returns how many daily records the week holds.
func (w *WeekRecord) DayCount() int {
	return len(w.days)
}

// WeeklyHours sums daily hours across the week, rounded to two places.
func (w *WeekRecord) WeeklyHours(sched WorkSchedule) decimal.Decimal {
	total := decimal.Zero
	for _, day := range w.days {
		total = total.Add(day.DailyHours(sched))
	}
	return total.Round(2)
}

// RegularHours sums within-window hours across the week, rounded to two
// places. No weekly cap is applied.
func (w *WeekRecord) RegularHours(sched WorkSchedule) decimal.Decimal {
	total := decimal.Zero
	for _, day := range w.days {
		total = total.Add(day.RegularHours(sched))
	}
	return total.Round(2)
}

// OvertimeHours sums per-day overtime across the week. Any day of deductible
// lateness forfeits the whole week's overtime.
func (w *WeekRecord) OvertimeHours(sched WorkSchedule) decimal.Decimal {
	if w.HasDeductibleLateness(sched) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, day := range w.days {
		total = total.Add(day.OvertimeHours(sched))
	}
	return total.Round(2)
}

// TotalLateMinutes sums late minutes across all days, grace period included.
func (w *WeekRecord) TotalLateMinutes(sched WorkSchedule) int {
	total := 0
	for _, day := range w.days {
		total += day.LateMinutes(sched)
	}
	return total
}

// DeductibleLateMinutes sums late minutes only over days late beyond the
// grace period.
func (w *WeekRecord) DeductibleLateMinutes(sched WorkSchedule) int {
	total := 0
	for _, day := range w.days {
		if day.LateForDeduction(sched) {
			total += day.LateMinutes(sched)
		}
	}
	return total
}

// TotalUndertimeMinutes sums undertime minutes across all days.
func (w *WeekRecord) TotalUndertimeMinutes(sched WorkSchedule) int {
	total := 0
	for _, day := range w.days {
		total += day.UndertimeMinutes(sched)
	}
	return total
}

// HasDeductibleLateness reports whether any day of the week was late beyond
// the grace period.
func (w *WeekRecord) HasDeductibleLateness(sched WorkSchedule) bool {
	for _, day := range w.days {
		if day.LateForDeduction(sched) {
			return true
		}
	}
	return false
}
