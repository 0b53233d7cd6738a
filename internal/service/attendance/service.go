package attendance

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/motorph/payroll-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
	}
}

// BuildWeek implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BuildWeek(ctx context.Context, employeeID, weekStartDate string) (*attendance.WeekRecord, error) {
	records, err := a.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for employee %s: %w", employeeID, err)
	}

	week := attendance.NewWeekRecord(employeeID, weekStartDate)
	for _, day := range records {
		if err := week.Append(day); err != nil {
			// The repository filters by employee id already; a mismatch here
			// means a corrupt row, which we drop rather than fail the week.
			logrus.WithFields(logrus.Fields{
				"employee_id": employeeID,
				"date":        day.Date,
			}).WithError(err).Warn("dropping attendance record")
		}
	}

	return week, nil
}
