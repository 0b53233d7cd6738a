package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/motorph/payroll-go/internal/domain/employee"
)

// employeeRow is the consumed view of the master file: identity plus rate.
type employeeRow struct {
	EmployeeID string `csv:"EmployeeID"`
	LastName   string `csv:"LastName"`
	FirstName  string `csv:"FirstName"`
	Birthday   string `csv:"Birthday"`
	HourlyRate string `csv:"HourlyRate"`
}

// WriteEmployeeCSV exports the employee records the payroll core consumes.
func WriteEmployeeCSV(filePath string, employees []employee.Employee) error {
	rows := make([]employeeRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, employeeRow{
			EmployeeID: emp.ID,
			LastName:   emp.LastName,
			FirstName:  emp.FirstName,
			Birthday:   emp.Birthday,
			HourlyRate: emp.HourlyRate.StringFixed(2),
		})
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
