package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/motorph/payroll-go/internal/domain/payroll"
)

// PDFSink renders one A4 payslip document per week into the output
// directory, named by the document id.
type PDFSink struct {
	dir string
}

func NewPDFSink(dir string) *PDFSink {
	return &PDFSink{dir: dir}
}

// Write implements payroll.PayslipSink.
func (s *PDFSink) Write(ctx context.Context, doc payroll.PayslipDocument) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create payslip directory: %w", err)
	}
	filePath := filepath.Join(s.dir, doc.DocumentID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "MotorPH Weekly Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", doc.Employee.FullName(), doc.Employee.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Week of: %s", doc.WeekStartDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", doc.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Regular Hours: %s    Overtime Hours: %s",
		doc.RegularHours.StringFixed(2), doc.OvertimeHours.StringFixed(2)))
	pdf.Ln(10)

	slip := doc.Slip
	lines := []struct {
		label  string
		amount string
	}{
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
	for _, line := range lines {
		pdf.Cell(60, 7, line.label)
		pdf.Cell(0, 7, "PHP "+line.amount)
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return fmt.Errorf("failed to write payslip pdf: %w", err)
	}
	return nil
}
