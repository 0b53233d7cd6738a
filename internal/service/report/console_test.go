package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-go/internal/domain/attendance"
)

func TestWriteWeeklyDetails(t *testing.T) {
	sched := attendance.DefaultWorkSchedule()
	week := attendance.NewWeekRecord("10001", "06/03/2024")
	require.NoError(t, week.Append(attendance.NewDayRecord("10001", "06/03/2024", "8:00", "17:00")))
	require.NoError(t, week.Append(attendance.NewDayRecord("10001", "06/04/2024", "9:30", "17:00")))

	var buf bytes.Buffer
	WriteWeeklyDetails(&buf, week, sched)
	out := buf.String()

	assert.Contains(t, out, "Employee: 10001")
	assert.Contains(t, out, "Week of: 06/03/2024")
	assert.Contains(t, out, "06/04/2024")
	assert.Contains(t, out, "Total Hours Worked: 14.50")
	assert.Contains(t, out, "Total Late: 1 hrs 30 mins (90 mins)")
}

func TestWriteWeeklyDetails_PunctualWeekOmitsLateLine(t *testing.T) {
	sched := attendance.DefaultWorkSchedule()
	week := attendance.NewWeekRecord("10001", "06/03/2024")
	require.NoError(t, week.Append(attendance.NewDayRecord("10001", "06/03/2024", "8:00", "17:00")))

	var buf bytes.Buffer
	WriteWeeklyDetails(&buf, week, sched)

	assert.NotContains(t, buf.String(), "Total Late")
	assert.NotContains(t, buf.String(), "Undertime")
}

func TestWritePayslip(t *testing.T) {
	var buf bytes.Buffer
	WritePayslip(&buf, sampleDocument())
	out := buf.String()

	assert.Contains(t, out, "Payslip PS-TEST-0001")
	assert.Contains(t, out, "Garcia, Manuel III")
	assert.Contains(t, out, "Net Pay")
	assert.Contains(t, out, "17987.10")
}
