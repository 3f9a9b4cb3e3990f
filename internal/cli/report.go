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
	"time"

	"github.com/spf13/cobra"

	"github.com/dwdash/dwdash/internal/analytics"
	"github.com/dwdash/dwdash/internal/db"
	"github.com/dwdash/dwdash/internal/reports"
	"github.com/dwdash/dwdash/internal/warehouse"
)

var reportFlags struct {
	from        string
	to          string
	country     string
	year        int
	topN        int
	granularity string
	maxRows     int
	minOrders   int
	segment     string
	csvPath     string
	xlsxPath    string
}

var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Run a dashboard report",
	Long: `Loads the warehouse into memory and runs the named report over it.
Use 'dwdash reports' to list available reports. Filters apply to the
fact rows before aggregation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.ValidateReport(); err != nil {
			return err
		}

		rep, err := reports.Get(args[0])
		if err != nil {
			return err
		}
		params, err := buildParams()
		if err != nil {
			return err
		}

		pool, err := db.Connect(ctx, cfg.Connection)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		snap, err := warehouse.Load(ctx, pool)
		if err != nil {
			return fmt.Errorf("loading warehouse: %w", err)
		}

		tables, err := rep.Build(analytics.New(snap), params)
		if err != nil {
			return err
		}
		if err := exportTables(tables); err != nil {
			return err
		}
		return reports.Render(os.Stdout, tables)
	},
}

func buildParams() (reports.Params, error) {
	p := reports.Params{
		TopN:    cfg.Report.TopN,
		MaxRows: cfg.Report.MaxRows,
		Year:    reportFlags.year,
		Customer: analytics.CustomerFilter{
			Country:   reportFlags.country,
			MinOrders: reportFlags.minOrders,
			Segment:   analytics.Segment(reportFlags.segment),
		},
	}
	if reportFlags.topN > 0 {
		p.TopN = reportFlags.topN
	}
	if reportFlags.maxRows > 0 {
		p.MaxRows = reportFlags.maxRows
	}

	g := cfg.Report.Granularity
	if reportFlags.granularity != "" {
		g = reportFlags.granularity
	}
	parsed, err := analytics.ParseGranularity(g)
	if err != nil {
		return p, err
	}
	p.Granularity = parsed

	p.Filter = analytics.OrderFilter{
		Country: reportFlags.country,
		Year:    reportFlags.year,
	}
	if reportFlags.from != "" {
		t, err := time.Parse("2006-01-02", reportFlags.from)
		if err != nil {
			return p, fmt.Errorf("parsing --from: %w", err)
		}
		p.Filter.From = t
	}
	if reportFlags.to != "" {
		t, err := time.Parse("2006-01-02", reportFlags.to)
		if err != nil {
			return p, fmt.Errorf("parsing --to: %w", err)
		}
		p.Filter.To = t
	}
	return p, nil
}

func exportTables(tables []reports.Table) error {
	if reportFlags.csvPath == "" && reportFlags.xlsxPath == "" {
		return nil
	}
	if len(tables) == 0 {
		return nil
	}
	return exportResult(reportFlags.csvPath, reportFlags.xlsxPath,
		tables[0].Columns, tables[0].Rows)
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List available reports",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range reports.List() {
			fmt.Printf("  %-15s %s\n", r.Name, r.Description)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.from, "from", "",
		"include orders on or after this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportFlags.to, "to", "",
		"include orders on or before this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportFlags.country, "country", "",
		"filter by customer country")
	reportCmd.Flags().IntVar(&reportFlags.year, "year", 0,
		"filter by order year")
	reportCmd.Flags().IntVar(&reportFlags.topN, "top", 0,
		"ranking size for top-N reports (overrides config)")
	reportCmd.Flags().StringVar(&reportFlags.granularity, "granularity", "",
		"time series granularity: daily, weekly, monthly, quarterly, yearly")
	reportCmd.Flags().IntVar(&reportFlags.maxRows, "max-rows", 0,
		"maximum rows in listing reports (overrides config)")
	reportCmd.Flags().IntVar(&reportFlags.minOrders, "min-orders", 0,
		"minimum order count for customer reports")
	reportCmd.Flags().StringVar(&reportFlags.segment, "segment", "",
		"customer segment filter: Low, Medium, High")
	reportCmd.Flags().StringVar(&reportFlags.csvPath, "csv", "",
		"also write the first table to a CSV file")
	reportCmd.Flags().StringVar(&reportFlags.xlsxPath, "xlsx", "",
		"also write the first table to an Excel file")
}
