package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-go/internal/domain/employee"
	"github.com/motorph/payroll-go/internal/domain/payroll"
)

func sampleDocument() payroll.PayslipDocument {
	emp := employee.NewEmployee("10001", "Garcia", "Manuel III", "10/11/1983")
	emp.SetHourlyRate(decimal.RequireFromString("535.71"))

	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return payroll.PayslipDocument{
		DocumentID:    "PS-TEST-0001",
		Employee:      emp,
		WeekStartDate: "06/03/2024",
		Slip: payroll.PaySlip{
			RegularPay:  d("21428.40"),
			OvertimePay: d("1339.28"),
			Gross:       d("22767.68"),
			SSS:         d("281.25"),
			PhilHealth:  d("225.00"),
			PagIbig:     d("25.00"),
			Taxable:     d("22236.43"),
			Tax:         d("4249.33"),
			Net:         d("17987.10"),
		},
		WeeklyHours:           d("42.00"),
		RegularHours:          d("40.00"),
		OvertimeHours:         d("2.00"),
		TotalLateMinutes:      0,
		DeductibleLateMinutes: 0,
		TotalUndertimeMinutes: 0,
		GeneratedAt:           time.Date(2024, 6, 7, 18, 30, 0, 0, time.UTC),
	}
}

func TestCSVRegisterSink_WriteAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll_register.csv")
	sink := NewCSVRegisterSink(path)
	ctx := context.Background()

	require.NoError(t, sink.Write(ctx, sampleDocument()))

	second := sampleDocument()
	second.DocumentID = "PS-TEST-0002"
	require.NoError(t, sink.Write(ctx, second))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3, "header plus one row per write")
	assert.True(t, strings.HasPrefix(lines[0], "DocumentID,EmployeeID,EmployeeName"), "header: %s", lines[0])
	assert.Contains(t, lines[1], "PS-TEST-0001")
	assert.Contains(t, lines[1], `"Garcia, Manuel III"`)
	assert.Contains(t, lines[1], "22767.68")
	assert.Contains(t, lines[2], "PS-TEST-0002")
	assert.Equal(t, 1, strings.Count(string(content), "DocumentID"), "header written once")
}

func TestWriteEmployeeCSV(t *testing.T) {
	emp := employee.NewEmployee("10002", "Lim", "Antonio", "06/19/1988")
	emp.SetHourlyRate(decimal.RequireFromString("341.75"))

	path := filepath.Join(t.TempDir(), "employees_export.csv")
	require.NoError(t, WriteEmployeeCSV(path, []employee.Employee{emp}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "EmployeeID,LastName,FirstName,Birthday,HourlyRate", lines[0])
	assert.Equal(t, "10002,Lim,Antonio,06/19/1988,341.75", lines[1])
}

func TestPDFSink_Write(t *testing.T) {
	dir := t.TempDir()
	sink := NewPDFSink(filepath.Join(dir, "payslips"))

	require.NoError(t, sink.Write(context.Background(), sampleDocument()))

	info, err := os.Stat(filepath.Join(dir, "payslips", "PS-TEST-0001.pdf"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestXLSXSink_Write(t *testing.T) {
	dir := t.TempDir()
	sink := NewXLSXSink(filepath.Join(dir, "payslips"))

	require.NoError(t, sink.Write(context.Background(), sampleDocument()))

	info, err := os.Stat(filepath.Join(dir, "payslips", "PS-TEST-0001.xlsx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
