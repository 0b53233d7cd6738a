package attendance

import "context"

// AttendanceService defines business logic for assembling weekly records.
type AttendanceService interface {
	// BuildWeek loads an employee's attendance rows and folds them into a
	// weekly record. Rows belonging to other employees are dropped with a
	// logged note, never appended.
	BuildWeek(ctx context.Context, employeeID, weekStartDate string) (*WeekRecord, error)
}
