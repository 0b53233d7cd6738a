package attendance

import "context"

// AttendanceRepository defines data access over the raw attendance feed.
type AttendanceRepository interface {
	// ListByEmployee returns the daily records whose first field equals the
	// employee id, in source order. Rows with fewer than four fields are
	// skipped; rows whose clock fields do not parse fail the whole load.
	ListByEmployee(ctx context.Context, employeeID string) ([]DayRecord, error)
}
