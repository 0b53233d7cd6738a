package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Files   FilesConfig
	Payroll PayrollConfig
	App     AppConfig
}

// FilesConfig holds the data-file locations the adapters read and write.
type FilesConfig struct {
	EmployeeFile    string
	AttendanceFile  string
	CredentialsFile string
	PayslipDir      string
	RegisterFile    string
}

// PayrollConfig holds engine defaults overridable per invocation.
type PayrollConfig struct {
	ProrateDeductions bool
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	config.Files = FilesConfig{
		EmployeeFile:    getEnv("EMPLOYEE_FILE", "data/employees.csv"),
		AttendanceFile:  getEnv("ATTENDANCE_FILE", "data/attendance.csv"),
		CredentialsFile: getEnv("CREDENTIALS_FILE", "data/login_credentials.csv"),
		PayslipDir:      getEnv("PAYSLIP_DIR", "storage/payslips"),
		RegisterFile:    getEnv("REGISTER_FILE", "storage/payroll_register.csv"),
	}

	config.Payroll = PayrollConfig{
		ProrateDeductions: getEnvBool("PRORATE_DEDUCTIONS", true),
	}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
