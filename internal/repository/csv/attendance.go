package csv

import (
	"context"
	encsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/motorph/payroll-go/internal/domain/attendance"
	"github.com/motorph/payroll-go/internal/pkg/timeutil"
)

// AttendanceRepository reads the headerless attendance feed:
// employeeId, date, timeIn, timeOut per row, extra fields ignored.
type AttendanceRepository struct {
	filePath string
}

func NewAttendanceRepository(filePath string) *AttendanceRepository {
	return &AttendanceRepository{filePath: filePath}
}

// ListByEmployee implements attendance.AttendanceRepository. Rows shorter
// than four fields are skipped with a note; rows for the employee whose clock
// fields do not parse fail the load, because a half-read week would silently
// shrink the pay.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.DayRecord, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open attendance file: %w", err)
	}
	defer file.Close()

	reader := encsv.NewReader(file)
	reader.FieldsPerRecord = -1 // row lengths vary in the raw feed

	var records []attendance.DayRecord
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read attendance file: %w", err)
		}
		line++

		if len(row) < 4 {
			logrus.WithFields(logrus.Fields{
				"line":   line,
				"fields": len(row),
			}).Debug("skipping short attendance row")
			continue
		}

		id := strings.TrimSpace(row[0])
		if id != employeeID {
			continue
		}

		date := strings.TrimSpace(row[1])
		timeIn := strings.TrimSpace(row[2])
		timeOut := strings.TrimSpace(row[3])

		if _, err := timeutil.ParseClock(timeIn); err != nil {
			return nil, fmt.Errorf("attendance line %d: %w", line, err)
		}
		if _, err := timeutil.ParseClock(timeOut); err != nil {
			return nil, fmt.Errorf("attendance line %d: %w", line, err)
		}

		records = append(records, attendance.NewDayRecord(employeeID, date, timeIn, timeOut))
	}

	return records, nil
}
