package employee

import "context"

// EmployeeRepository defines data access over the employee master file.
type EmployeeRepository interface {
	// GetByID retrieves a single employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves every employee in master-file order.
	List(ctx context.Context) ([]Employee, error)
}
