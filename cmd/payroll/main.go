package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/motorph/payroll-go/internal/config"
	"github.com/motorph/payroll-go/internal/handler/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	rootCmd := cli.NewRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
