package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/motorph/payroll-go/internal/config"
	"github.com/motorph/payroll-go/internal/service/report"

	csvRepo "github.com/motorph/payroll-go/internal/repository/csv"
)

func newEmployeesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the employee master records",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeRepo := csvRepo.NewEmployeeRepository(cfg.Files.EmployeeFile)
			employees, err := employeeRepo.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s  %-28s  %-12s  %10s\n", "ID", "Name", "Birthday", "Rate")
			for _, emp := range employees {
				fmt.Fprintf(out, "%-8s  %-28s  %-12s  %10s\n",
					emp.ID, emp.FullName(), emp.Birthday, emp.HourlyRate.StringFixed(2))
			}
			return nil
		},
	}
}

func newExportCmd(cfg *config.Config) *cobra.Command {
	var outPath string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the consumed employee master view to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authenticate(cmd, cfg); err != nil {
				return err
			}

			employeeRepo := csvRepo.NewEmployeeRepository(cfg.Files.EmployeeFile)
			employees, err := employeeRepo.List(cmd.Context())
			if err != nil {
				return err
			}

			if err := report.WriteEmployeeCSV(outPath, employees); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d employees to %s\n", len(employees), outPath)
			return nil
		},
	}

	exportCmd.Flags().StringVar(&outPath, "out", "employees_export.csv", "output file path")

	return exportCmd
}
