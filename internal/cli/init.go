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
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dwdash/dwdash/internal/db"
	"github.com/dwdash/dwdash/internal/warehouse"
)

var (
	initDropExisting bool
	initSeed         bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the warehouse schema",
	Long: `Creates the star schema (dim_date, dim_customer, dim_employee,
fact_orders) and the metadata table. With --seed, also loads a demo
dataset using the seed settings from configuration.`,
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
			return fmt.Errorf("checking for existing schema: %w", err)
		}
		if exists && !initDropExisting {
			return fmt.Errorf("warehouse already initialized (use --drop-existing to recreate)")
		}
		if exists && initDropExisting {
			log.Warn().Msg("Dropping existing warehouse schema")
			if err := warehouse.DropSchema(ctx, pool); err != nil {
				return fmt.Errorf("dropping schema: %w", err)
			}
			if err := db.DropMetadata(ctx, pool); err != nil {
				return fmt.Errorf("dropping metadata: %w", err)
			}
		}

		if err := warehouse.CreateSchema(ctx, pool); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		if err := db.SaveMetadata(ctx, pool, nil); err != nil {
			return fmt.Errorf("saving metadata: %w", err)
		}
		log.Info().Msg("Warehouse schema created")

		if initSeed {
			return runSeed(cmd)
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo dataset into the warehouse",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runSeed(cmd)
	},
}

func runSeed(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	spec := warehouse.SeedSpec{
		Customers:  cfg.Seed.Customers,
		Employees:  cfg.Seed.Employees,
		Orders:     cfg.Seed.Orders,
		Years:      cfg.Seed.Years,
		RandomSeed: cfg.Seed.RandomSeed,
	}
	gen := warehouse.NewGenerator(pool, spec.RandomSeed)
	if err := gen.Seed(ctx, spec); err != nil {
		return err
	}

	return db.SaveMetadata(ctx, pool, map[string]string{
		"seed_customers": strconv.Itoa(spec.Customers),
		"seed_employees": strconv.Itoa(spec.Employees),
		"seed_orders":    strconv.Itoa(spec.Orders),
	})
}

func init() {
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop and recreate an existing warehouse")
	initCmd.Flags().BoolVar(&initSeed, "seed", false,
		"seed a demo dataset after creating the schema")

	seedCmd.Flags().IntVar(&defaultSeedFlags.customers, "customers", 0,
		"number of customers to generate (overrides config)")
	seedCmd.Flags().IntVar(&defaultSeedFlags.employees, "employees", 0,
		"number of employees to generate (overrides config)")
	seedCmd.Flags().IntVar(&defaultSeedFlags.orders, "orders", 0,
		"number of orders to generate (overrides config)")
	seedCmd.Flags().IntVar(&defaultSeedFlags.years, "years", 0,
		"year span of the date dimension (overrides config)")
	seedCmd.Flags().Uint64Var(&defaultSeedFlags.randomSeed, "seed-value", 0,
		"random seed for reproducible datasets (0 = random)")
	seedCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if defaultSeedFlags.customers > 0 {
			cfg.Seed.Customers = defaultSeedFlags.customers
		}
		if defaultSeedFlags.employees > 0 {
			cfg.Seed.Employees = defaultSeedFlags.employees
		}
		if defaultSeedFlags.orders > 0 {
			cfg.Seed.Orders = defaultSeedFlags.orders
		}
		if defaultSeedFlags.years > 0 {
			cfg.Seed.Years = defaultSeedFlags.years
		}
		if defaultSeedFlags.randomSeed > 0 {
			cfg.Seed.RandomSeed = defaultSeedFlags.randomSeed
		}
	}
}

var defaultSeedFlags struct {
	customers  int
	employees  int
	orders     int
	years      int
	randomSeed uint64
}
