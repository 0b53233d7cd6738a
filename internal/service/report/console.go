package report

import (
	"fmt"
	"io"

	"github.com/motorph/payroll-go/internal/domain/attendance"
	"github.com/motorph/payroll-go/internal/domain/payroll"
)

// WriteWeeklyDetails prints the per-day attendance table and weekly totals
// the way the payroll clerks expect to read them.
func WriteWeeklyDetails(w io.Writer, week *attendance.WeekRecord, sched attendance.WorkSchedule) {
	fmt.Fprintf(w, "Employee: %s\n", week.EmployeeID())
	fmt.Fprintf(w, "Week of: %s\n\n", week.WeekStartDate())

	fmt.Fprintf(w, "%-12s  %-8s  %-8s  %-8s  %-8s  %-8s\n",
		"Date", "Time In", "Time Out", "Hours", "Reg", "OT")
	fmt.Fprintln(w, "------------  --------  --------  --------  --------  --------")

	for _, day := range week.Days() {
		fmt.Fprintf(w, "%-12s  %-8s  %-8s  %-8s  %-8s  %-8s\n",
			day.Date,
			day.TimeIn,
			day.TimeOut,
			day.DailyHours(sched).StringFixed(2),
			day.RegularHours(sched).StringFixed(2),
			day.OvertimeHours(sched).StringFixed(2))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Hours Worked: %s\n", week.WeeklyHours(sched).StringFixed(2))
	fmt.Fprintf(w, "Regular Hours: %s\n", week.RegularHours(sched).StringFixed(2))
	fmt.Fprintf(w, "Overtime Hours: %s\n", week.OvertimeHours(sched).StringFixed(2))

	if late := week.TotalLateMinutes(sched); late > 0 {
		if late >= 60 {
			fmt.Fprintf(w, "Total Late: %d hrs %d mins (%d mins)\n", late/60, late%60, late)
		} else {
			fmt.Fprintf(w, "Total Late: %d mins\n", late)
		}
	}
	if undertime := week.TotalUndertimeMinutes(sched); undertime > 0 {
		fmt.Fprintf(w, "Total Undertime Minutes: %d\n", undertime)
	}
}

// WritePayslip prints the nine-figure pay breakdown.
func WritePayslip(w io.Writer, doc payroll.PayslipDocument) {
	slip := doc.Slip

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Payslip %s\n", doc.DocumentID)
	fmt.Fprintf(w, "Employee: %s (%s)\n", doc.Employee.FullName(), doc.Employee.ID)
	fmt.Fprintf(w, "Week of: %s\n\n", doc.WeekStartDate)

	fmt.Fprintf(w, "%-18s PHP %12s\n", "Regular Pay", slip.RegularPay.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "Overtime Pay", slip.OvertimePay.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "Gross Pay", slip.Gross.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "SSS", slip.SSS.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "PhilHealth", slip.PhilHealth.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "Pag-IBIG", slip.PagIbig.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "Taxable Income", slip.Taxable.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "Withholding Tax", slip.Tax.StringFixed(2))
	fmt.Fprintf(w, "%-18s PHP %12s\n", "Net Pay", slip.Net.StringFixed(2))
}
