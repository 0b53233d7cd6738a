package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/motorph/payroll-go/internal/config"
	"github.com/motorph/payroll-go/internal/domain/auth"
	authService "github.com/motorph/payroll-go/internal/service/auth"

	csvRepo "github.com/motorph/payroll-go/internal/repository/csv"
)

// NewRootCmd assembles the payroll CLI.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "payroll",
		Short:         "MotorPH weekly payroll tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("user", "", "operator username")
	rootCmd.PersistentFlags().String("password", "", "operator password")

	rootCmd.AddCommand(newPayslipCmd(cfg))
	rootCmd.AddCommand(newEmployeesCmd(cfg))
	rootCmd.AddCommand(newExportCmd(cfg))

	return rootCmd
}

// authenticate verifies the operator flags against the credentials file.
// When no credentials file is configured the check is skipped, matching the
// single-operator desktop setups the tool replaces.
func authenticate(cmd *cobra.Command, cfg *config.Config) error {
	if _, err := os.Stat(cfg.Files.CredentialsFile); os.IsNotExist(err) {
		logrus.Debug("no credentials file, skipping login")
		return nil
	}

	username, err := cmd.Flags().GetString("user")
	if err != nil {
		return fmt.Errorf("failed to read user flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("failed to read password flag: %w", err)
	}

	service := authService.NewAuthService(csvRepo.NewCredentialRepository(cfg.Files.CredentialsFile))
	if err := service.Login(cmd.Context(), username, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return auth.ErrInvalidCredentials
		}
		return err
	}
	return nil
}
