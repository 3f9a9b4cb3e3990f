//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwdash/dwdash/internal/db"
	"github.com/dwdash/dwdash/internal/export"
	"github.com/dwdash/dwdash/internal/query"
	"github.com/dwdash/dwdash/internal/reports"
)

var queryFlags struct {
	csvPath  string
	xlsxPath string
}

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run ad-hoc SQL against the warehouse",
	Long: `Executes a SQL statement and prints the result. NULL values render
as the literal NULL. Use --csv or --xlsx to also write the result to a
file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := cfg.Validate(); err != nil {
			return err
		}

		pool, err := db.Connect(ctx, cfg.Connection)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		rs, err := query.Run(ctx, pool, args[0])
		if err != nil {
			return err
		}
		if err := exportResult(queryFlags.csvPath, queryFlags.xlsxPath, rs.Columns, rs.Rows); err != nil {
			return err
		}

		table := reports.Table{Title: "Query Result", Columns: rs.Columns, Rows: rs.Rows}
		if err := reports.Render(os.Stdout, []reports.Table{table}); err != nil {
			return err
		}
		fmt.Printf("\n(%d rows)\n", len(rs.Rows))
		return nil
	},
}

func exportResult(csvPath, xlsxPath string, columns []string, rows [][]string) error {
	if csvPath != "" {
		if err := export.WriteCSV(csvPath, columns, rows); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := export.WriteExcel(xlsxPath, columns, rows); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	queryCmd.Flags().StringVar(&queryFlags.csvPath, "csv", "",
		"write the result to a CSV file")
	queryCmd.Flags().StringVar(&queryFlags.xlsxPath, "xlsx", "",
		"write the result to an Excel file")
}
