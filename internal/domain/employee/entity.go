package employee

import "github.com/shopspring/decimal"

// Employee - master record consumed by the payroll engine. The descriptive
// fields are immutable once loaded; only the hourly rate may change, since
// rates are revised between payroll cycles. Not safe for concurrent mutation.
type Employee struct {
	ID         string
	LastName   string
	FirstName  string
	Birthday   string // MM/DD/YYYY text, kept unparsed
	HourlyRate decimal.Decimal
}

// NewEmployee creates an employee master record with a zero hourly rate.
// Rates are set separately because they are loaded from a different column
// and revised independently of the identity fields.
func NewEmployee(id, lastName, firstName, birthday string) Employee {
	return Employee{
		ID:        id,
		LastName:  lastName,
		FirstName: firstName,
		Birthday:  birthday,
	}
}

// FullName returns "LastName, FirstName" for display.
func (e Employee) FullName() string {
	return e.LastName + ", " + e.FirstName
}

// SetHourlyRate replaces the employee's hourly rate.
func (e *Employee) SetHourlyRate(rate decimal.Decimal) {
	e.HourlyRate = rate
}
