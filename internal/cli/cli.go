//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the dwdash command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dwdash/dwdash/internal/config"
	"github.com/dwdash/dwdash/internal/logging"
	"github.com/dwdash/dwdash/pkg/version"
)

var (
	cfgFile    string
	connString string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dwdash",
	Short: "Data warehouse dashboard for PostgreSQL",
	Long: `dwdash maintains a star-schema sales warehouse in PostgreSQL and
computes dashboard analytics over it: revenue trends, top customers,
customer segments, employee performance, and more.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if connString != "" {
			cfg.Connection = connString
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		logCfg := logging.DefaultConfig()
		logCfg.Level = cfg.LogLevel
		logging.Init(logCfg)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./dwdash.yaml)")
	rootCmd.PersistentFlags().StringVarP(&connString, "connection", "c", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(queryCmd)
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
