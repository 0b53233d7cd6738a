package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/motorph/payroll-go/internal/config"
	"github.com/motorph/payroll-go/internal/domain/attendance"
	"github.com/motorph/payroll-go/internal/domain/payroll"
	attendanceService "github.com/motorph/payroll-go/internal/service/attendance"
	payrollService "github.com/motorph/payroll-go/internal/service/payroll"
	"github.com/motorph/payroll-go/internal/service/report"

	csvRepo "github.com/motorph/payroll-go/internal/repository/csv"
)

func newPayslipCmd(cfg *config.Config) *cobra.Command {
	var (
		employeeID string
		weekStart  string
		prorate    bool
		writePDF   bool
		writeXLSX  bool
		register   bool
	)

	payslipCmd := &cobra.Command{
		Use:   "payslip",
		Short: "Compute the weekly payslip for one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authenticate(cmd, cfg); err != nil {
				return err
			}

			ctx := cmd.Context()

			employeeRepo := csvRepo.NewEmployeeRepository(cfg.Files.EmployeeFile)
			emp, err := employeeRepo.GetByID(ctx, employeeID)
			if err != nil {
				return err
			}

			weekBuilder := attendanceService.NewAttendanceService(
				csvRepo.NewAttendanceRepository(cfg.Files.AttendanceFile))
			week, err := weekBuilder.BuildWeek(ctx, employeeID, weekStart)
			if err != nil {
				return err
			}

			sched := attendance.DefaultWorkSchedule()
			engine := payrollService.NewPayrollService(payroll.DefaultPolicy(), sched)
			slip := engine.ComputeWeek(week, emp, prorate)

			doc := payroll.PayslipDocument{
				DocumentID:            uuid.NewString(),
				Employee:              emp,
				WeekStartDate:         weekStart,
				Slip:                  slip,
				WeeklyHours:           week.WeeklyHours(sched),
				RegularHours:          week.RegularHours(sched),
				OvertimeHours:         week.OvertimeHours(sched),
				TotalLateMinutes:      week.TotalLateMinutes(sched),
				DeductibleLateMinutes: week.DeductibleLateMinutes(sched),
				TotalUndertimeMinutes: week.TotalUndertimeMinutes(sched),
				GeneratedAt:           time.Now(),
			}

			out := cmd.OutOrStdout()
			report.WriteWeeklyDetails(out, week, sched)
			report.WritePayslip(out, doc)

			if late := doc.DeductibleLateMinutes; late > 0 {
				penalty := engine.LatePenalty(slip.RegularPay, late)
				fmt.Fprintf(out, "%-18s PHP %12s (not deducted)\n", "Late Penalty", penalty.StringFixed(2))
			}

			var sinks []payroll.PayslipSink
			if writePDF {
				sinks = append(sinks, report.NewPDFSink(cfg.Files.PayslipDir))
			}
			if writeXLSX {
				sinks = append(sinks, report.NewXLSXSink(cfg.Files.PayslipDir))
			}
			if register {
				sinks = append(sinks, report.NewCSVRegisterSink(cfg.Files.RegisterFile))
			}
			for _, sink := range sinks {
				if err := sink.Write(ctx, doc); err != nil {
					return err
				}
			}
			if len(sinks) > 0 {
				logrus.WithField("document_id", doc.DocumentID).Info("payslip written")
			}

			return nil
		},
	}

	payslipCmd.Flags().StringVar(&employeeID, "employee", "", "employee id")
	payslipCmd.Flags().StringVar(&weekStart, "week", "", "week start date for display")
	payslipCmd.Flags().BoolVar(&prorate, "prorate", cfg.Payroll.ProrateDeductions,
		"divide monthly-basis deductions by 4 for the weekly share")
	payslipCmd.Flags().BoolVar(&writePDF, "pdf", false, "write a PDF payslip")
	payslipCmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "write an XLSX payslip")
	payslipCmd.Flags().BoolVar(&register, "register", false, "append to the payroll register CSV")
	_ = payslipCmd.MarkFlagRequired("employee")

	return payslipCmd
}
