package csv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-go/internal/domain/employee"
)

// masterRow mirrors the 19-column employee master file. The payroll core
// consumes the identity columns and the hourly rate; the rest ride along so
// the file round-trips.
type masterRow struct {
	EmployeeID           string `csv:"EmployeeID"`
	LastName             string `csv:"LastName"`
	FirstName            string `csv:"FirstName"`
	Birthday             string `csv:"Birthday"`
	Address              string `csv:"Address"`
	PhoneNo              string `csv:"PhoneNo"`
	SSSNo                string `csv:"SSSNo"`
	PhilHealthNo         string `csv:"PhilHealthNo"`
	TIN                  string `csv:"TIN"`
	PagIBIGNo            string `csv:"PagIBIGNo"`
	Status               string `csv:"Status"`
	Position             string `csv:"Position"`
	ImmediateSupervisor  string `csv:"ImmediateSupervisor"`
	BasicSalary          string `csv:"BasicSalary"`
	RiceSubsidy          string `csv:"RiceSubsidy"`
	PhoneAllowance       string `csv:"PhoneAllowance"`
	ClothingAllowance    string `csv:"ClothingAllowance"`
	GrossSemiMonthlyRate string `csv:"GrossSemiMonthlyRate"`
	HourlyRate           string `csv:"HourlyRate"`
}

type EmployeeRepository struct {
	filePath string
}

func NewEmployeeRepository(filePath string) *EmployeeRepository {
	return &EmployeeRepository{filePath: filePath}
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	employees, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	for _, emp := range employees {
		if emp.ID == id {
			return emp, nil
		}
	}

	return employee.Employee{}, fmt.Errorf("employee %s: %w", id, employee.ErrEmployeeNotFound)
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open employee master file: %w", err)
	}
	defer file.Close()

	var rows []masterRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse employee master file: %w", err)
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		emp := employee.NewEmployee(
			strings.TrimSpace(row.EmployeeID),
			strings.TrimSpace(row.LastName),
			strings.TrimSpace(row.FirstName),
			strings.TrimSpace(row.Birthday),
		)

		rate, err := parseAmount(row.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("employee %s: invalid hourly rate %q: %w",
				emp.ID, row.HourlyRate, err)
		}
		emp.SetHourlyRate(rate)

		employees = append(employees, emp)
	}

	return employees, nil
}

// parseAmount reads a peso figure as exported by spreadsheets, tolerating
// thousands separators and surrounding quotes.
func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Trim(cleaned, `"`)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(cleaned)
}
