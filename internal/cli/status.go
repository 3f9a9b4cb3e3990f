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
	"sort"

	"github.com/spf13/cobra"

	"github.com/dwdash/dwdash/internal/db"
	"github.com/dwdash/dwdash/internal/query"
	"github.com/dwdash/dwdash/internal/reports"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show warehouse state and row counts",
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

		exists, err := db.MetadataExists(ctx, pool)
		if err != nil {
			return fmt.Errorf("checking warehouse state: %w", err)
		}
		if !exists {
			return fmt.Errorf("warehouse not initialized (run 'dwdash init')")
		}

		meta, err := db.GetAllMetadata(ctx, pool)
		if err != nil {
			return fmt.Errorf("reading metadata: %w", err)
		}
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		metaTable := reports.Table{Title: "Warehouse Metadata", Columns: []string{"Key", "Value"}}
		for _, k := range keys {
			metaTable.Rows = append(metaTable.Rows, []string{k, meta[k]})
		}

		countTable := reports.Table{Title: "Row Counts", Columns: []string{"Table", "Rows"}}
		for _, tbl := range []string{"dim_date", "dim_customer", "dim_employee", "fact_orders"} {
			rs, err := query.Run(ctx, pool, "SELECT COUNT(*) FROM "+tbl)
			if err != nil {
				return fmt.Errorf("counting %s: %w", tbl, err)
			}
			countTable.Rows = append(countTable.Rows, []string{tbl, rs.Rows[0][0]})
		}

		return reports.Render(os.Stdout, []reports.Table{metaTable, countTable})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
