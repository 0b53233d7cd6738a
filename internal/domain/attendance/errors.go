package attendance

import "errors"

// Attendance domain errors
var (
	ErrEmployeeMismatch = errors.New("attendance record employee id does not match the week")
)
