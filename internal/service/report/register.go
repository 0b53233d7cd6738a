package report

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/motorph/payroll-go/internal/domain/payroll"
)

// registerRow is one payroll-register line for bookkeeping.
type registerRow struct {
	DocumentID    string `csv:"DocumentID"`
	EmployeeID    string `csv:"EmployeeID"`
	EmployeeName  string `csv:"EmployeeName"`
	WeekStartDate string `csv:"WeekStartDate"`
	RegularHours  string `csv:"RegularHours"`
	OvertimeHours string `csv:"OvertimeHours"`
	Gross         string `csv:"Gross"`
	SSS           string `csv:"SSS"`
	PhilHealth    string `csv:"PhilHealth"`
	PagIbig       string `csv:"PagIbig"`
	Taxable       string `csv:"Taxable"`
	Tax           string `csv:"Tax"`
	Net           string `csv:"Net"`
	RegularPay    string `csv:"RegularPay"`
	OvertimePay   string `csv:"OvertimePay"`
}

// CSVRegisterSink appends one register row per payslip to a CSV file,
// writing the header row on first use.
type CSVRegisterSink struct {
	filePath string
}

func NewCSVRegisterSink(filePath string) *CSVRegisterSink {
	return &CSVRegisterSink{filePath: filePath}
}

// Write implements payroll.PayslipSink.
func (s *CSVRegisterSink) Write(ctx context.Context, doc payroll.PayslipDocument) error {
	_, statErr := os.Stat(s.filePath)
	newFile := os.IsNotExist(statErr)

	file, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open payroll register: %w", err)
	}
	defer file.Close()

	rows := []registerRow{toRegisterRow(doc)}
	if newFile {
		if err := gocsv.MarshalFile(&rows, file); err != nil {
			return fmt.Errorf("failed to write payroll register: %w", err)
		}
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(&rows, file); err != nil {
		return fmt.Errorf("failed to append to payroll register: %w", err)
	}
	return nil
}

func toRegisterRow(doc payroll.PayslipDocument) registerRow {
	slip := doc.Slip
	return registerRow{
		DocumentID:    doc.DocumentID,
		EmployeeID:    doc.Employee.ID,
		EmployeeName:  doc.Employee.FullName(),
		WeekStartDate: doc.WeekStartDate,
		RegularHours:  doc.RegularHours.StringFixed(2),
		OvertimeHours: doc.OvertimeHours.StringFixed(2),
		Gross:         slip.Gross.StringFixed(2),
		SSS:           slip.SSS.StringFixed(2),
		PhilHealth:    slip.PhilHealth.StringFixed(2),
		PagIbig:       slip.PagIbig.StringFixed(2),
		Taxable:       slip.Taxable.StringFixed(2),
		Tax:           slip.Tax.StringFixed(2),
		Net:           slip.Net.StringFixed(2),
		RegularPay:    slip.RegularPay.StringFixed(2),
		OvertimePay:   slip.OvertimePay.StringFixed(2),
	}
}
