package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-go/internal/domain/employee"
)

const masterHeader = "EmployeeID,LastName,FirstName,Birthday,Address,PhoneNo,SSSNo,PhilHealthNo,TIN,PagIBIGNo,Status,Position,ImmediateSupervisor,BasicSalary,RiceSubsidy,PhoneAllowance,ClothingAllowance,GrossSemiMonthlyRate,HourlyRate\n"

func writeMasterFile(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte(masterHeader+rows), 0o644))
	return path
}

func TestEmployeeRepository_List(t *testing.T) {
	path := writeMasterFile(t,
		`10001,Garcia,Manuel III,10/11/1983,Valero Carpark Makati,966-860-270,44-4506057-3,820126853951,442-605-657-000,691295330870,Regular,Chief Executive Officer,N/A,90000,1500,2000,1000,45000,535.71
10002,Lim,Antonio,06/19/1988,San Antonio Quezon City,171-867-411,52-2061274-9,331735646338,683-102-776-000,663904995411,Regular,Chief Operating Officer,Garcia Manuel III,60000,1500,2000,1000,30000,341.75
`)

	repo := NewEmployeeRepository(path)
	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, "10001", employees[0].ID)
	assert.Equal(t, "Garcia", employees[0].LastName)
	assert.Equal(t, "Manuel III", employees[0].FirstName)
	assert.Equal(t, "10/11/1983", employees[0].Birthday)
	assert.True(t, employees[0].HourlyRate.Equal(decimal.RequireFromString("535.71")),
		"rate: %s", employees[0].HourlyRate)
	assert.Equal(t, "Lim, Antonio", employees[1].FullName())
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	path := writeMasterFile(t,
		`10001,Garcia,Manuel III,10/11/1983,Makati,966,44,820,442,691,Regular,CEO,N/A,90000,1500,2000,1000,45000,535.71
`)

	repo := NewEmployeeRepository(path)

	emp, err := repo.GetByID(context.Background(), "10001")
	require.NoError(t, err)
	assert.Equal(t, "10001", emp.ID)

	_, err = repo.GetByID(context.Background(), "99999")
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_RateWithThousandsSeparator(t *testing.T) {
	path := writeMasterFile(t,
		`10003,Aquino,Bianca,08/04/1989,Manila,966,30,177,971,171,Regular,HR,Garcia,"60,000","1,500",2000,1000,"30,000","1,045.50"
`)

	repo := NewEmployeeRepository(path)
	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.True(t, employees[0].HourlyRate.Equal(decimal.RequireFromString("1045.50")),
		"rate: %s", employees[0].HourlyRate)
}

func TestEmployeeRepository_InvalidRateFailsLoad(t *testing.T) {
	path := writeMasterFile(t,
		`10004,Reyes,Isabella,06/11/1994,Pasig,966,40,341,876,416,Regular,Clerk,Garcia,49000,1500,800,800,24500,not-a-rate
`)

	repo := NewEmployeeRepository(path)
	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hourly rate")
}

func TestEmployeeRepository_MissingFile(t *testing.T) {
	repo := NewEmployeeRepository(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := repo.List(context.Background())
	require.Error(t, err)
}
