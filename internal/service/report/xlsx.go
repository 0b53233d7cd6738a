package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/motorph/payroll-go/internal/domain/payroll"
)

// XLSXSink writes one payslip workbook per week into the output directory,
// named by the document id.
type XLSXSink struct {
	dir string
}

func NewXLSXSink(dir string) *XLSXSink {
	return &XLSXSink{dir: dir}
}

// Write implements payroll.PayslipSink.
func (s *XLSXSink) Write(ctx context.Context, doc payroll.PayslipDocument) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create payslip directory: %w", err)
	}
	filePath := filepath.Join(s.dir, doc.DocumentID+".xlsx")

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	slip := doc.Slip
	cells := [][]interface{}{
		{"Employee", doc.Employee.FullName()},
		{"Employee ID", doc.Employee.ID},
		{"Week of", doc.WeekStartDate},
		{"Regular Hours", doc.RegularHours.StringFixed(2)},
		{"Overtime Hours", doc.OvertimeHours.StringFixed(2)},
		{"Late Minutes", doc.TotalLateMinutes},
		{"Undertime Minutes", doc.TotalUndertimeMinutes},
		{"Regular Pay", slip.RegularPay.StringFixed(2)},
		{"Overtime Pay", slip.OvertimePay.StringFixed(2)},
		{"Gross Pay", slip.Gross.StringFixed(2)},
		{"SSS", slip.SSS.StringFixed(2)},
		{"PhilHealth", slip.PhilHealth.StringFixed(2)},
		{"Pag-IBIG", slip.PagIbig.StringFixed(2)},
		{"Taxable Income", slip.Taxable.StringFixed(2)},
		{"Withholding Tax", slip.Tax.StringFixed(2)},
		{"Net Pay", slip.Net.StringFixed(2)},
	}

	for i, pair := range cells {
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, labelCell, pair[0]); err != nil {
			return fmt.Errorf("failed to set cell: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, pair[1]); err != nil {
			return fmt.Errorf("failed to set cell: %w", err)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to write payslip workbook: %w", err)
	}
	return nil
}
