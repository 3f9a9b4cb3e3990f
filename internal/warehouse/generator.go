//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/dwdash/dwdash/internal/datagen"
)

// SeedSpec controls demo dataset generation.
type SeedSpec struct {
	Customers  int
	Employees  int
	Orders     int
	Years      int
	RandomSeed uint64
}

// Generator seeds the warehouse with a synthetic dataset.
type Generator struct {
	pool  *pgxpool.Pool
	faker *datagen.Faker
	batch datagen.BatchInsertConfig
}

// NewGenerator creates a generator. A zero seed produces a different
// dataset on each run; any other seed is reproducible.
func NewGenerator(pool *pgxpool.Pool, seed uint64) *Generator {
	fk := datagen.NewFaker()
	if seed != 0 {
		fk = datagen.NewFakerWithSeed(seed)
	}
	return &Generator{
		pool:  pool,
		faker: fk,
		batch: datagen.DefaultBatchConfig(),
	}
}

var employeeTitles = []string{
	"Sales Representative",
	"Sales Manager",
	"Inside Sales Coordinator",
	"Vice President, Sales",
	"Sales Associate",
}

var employeeTitleWeights = []int{10, 3, 3, 1, 6}

var courtesyTitles = []string{"Mr.", "Ms.", "Mrs.", "Dr."}

var customerCountries = []string{
	"USA", "Germany", "France", "UK", "Brazil",
	"Mexico", "Canada", "Spain", "Italy", "Sweden",
}

var customerCountryWeights = []int{10, 8, 7, 6, 5, 4, 4, 3, 3, 2}

// Seed populates all four tables. Dimensions are generated first so the
// fact rows always reference existing surrogate keys.
func (g *Generator) Seed(ctx context.Context, spec SeedSpec) error {
	start := time.Now()

	firstDate, lastDate, err := g.seedDates(ctx, spec.Years)
	if err != nil {
		return fmt.Errorf("seeding dim_date: %w", err)
	}
	if err := g.seedCustomers(ctx, spec.Customers); err != nil {
		return fmt.Errorf("seeding dim_customer: %w", err)
	}
	if err := g.seedEmployees(ctx, spec.Employees); err != nil {
		return fmt.Errorf("seeding dim_employee: %w", err)
	}
	if err := g.seedOrders(ctx, spec, firstDate, lastDate); err != nil {
		return fmt.Errorf("seeding fact_orders: %w", err)
	}

	log.Info().
		Int("customers", spec.Customers).
		Int("employees", spec.Employees).
		Int("orders", spec.Orders).
		Int("years", spec.Years).
		Dur("elapsed", time.Since(start)).
		Msg("Demo dataset seeded")
	return nil
}

// dateKey encodes a date as YYYYMMDD.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func (g *Generator) seedDates(ctx context.Context, years int) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	first := time.Date(now.Year()-years+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	var values []string
	flush := func() error {
		if len(values) == 0 {
			return nil
		}
		sql := `INSERT INTO dim_date
			(date_key, date, year, quarter, month, day, month_name, day_of_week, is_weekend)
			VALUES ` + strings.Join(values, ",") + ` ON CONFLICT (date_key) DO NOTHING`
		_, err := g.pool.Exec(ctx, sql)
		values = values[:0]
		return err
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		values = append(values, fmt.Sprintf(
			"(%d,'%s',%d,%d,%d,%d,'%s','%s',%t)",
			dateKey(d), d.Format("2006-01-02"), d.Year(), quarterOf(d),
			int(d.Month()), d.Day(), d.Month().String(), wd.String(),
			wd == time.Saturday || wd == time.Sunday,
		))
		if len(values) >= g.batch.BatchSize {
			if err := flush(); err != nil {
				return first, last, err
			}
		}
	}
	if err := flush(); err != nil {
		return first, last, err
	}
	return first, last, nil
}

func (g *Generator) seedCustomers(ctx context.Context, count int) error {
	progress := datagen.NewProgressReporter("customers", count)
	var values []string
	flush := func() error {
		if len(values) == 0 {
			return nil
		}
		sql := `INSERT INTO dim_customer
			(customer_key, customer_id, company_name, contact_name, contact_title,
			 address, city, postal_code, country, phone, source_system)
			VALUES ` + strings.Join(values, ",")
		_, err := g.pool.Exec(ctx, sql)
		progress.Add(len(values))
		values = values[:0]
		return err
	}

	for i := 1; i <= count; i++ {
		values = append(values, fmt.Sprintf(
			"(%d,'%s','%s','%s','%s','%s','%s','%s','%s','%s','demo')",
			i,
			fmt.Sprintf("%s%04d", g.faker.LetterN(2), i),
			datagen.EscapeSQL(datagen.Truncate(g.faker.Company(), 100)),
			datagen.EscapeSQL(g.faker.FirstName()+" "+g.faker.LastName()),
			datagen.EscapeSQL(datagen.Truncate(g.faker.JobTitle(), 100)),
			datagen.EscapeSQL(datagen.Truncate(g.faker.Street(), 200)),
			datagen.EscapeSQL(datagen.Truncate(g.faker.City(), 50)),
			g.faker.PostalCode(),
			datagen.ChooseWeighted(g.faker, customerCountries, customerCountryWeights),
			g.faker.Phone(),
		))
		if len(values) >= g.batch.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	progress.Finish()
	return nil
}

func (g *Generator) seedEmployees(ctx context.Context, count int) error {
	var values []string
	for i := 1; i <= count; i++ {
		values = append(values, fmt.Sprintf(
			"(%d,%d,'%s','%s','%s','%s','%s','%s','demo')",
			i, i,
			datagen.EscapeSQL(g.faker.LastName()),
			datagen.EscapeSQL(g.faker.FirstName()),
			datagen.ChooseWeighted(g.faker, employeeTitles, employeeTitleWeights),
			datagen.Choose(g.faker, courtesyTitles),
			datagen.EscapeSQL(datagen.Truncate(g.faker.City(), 50)),
			datagen.EscapeSQL(datagen.Truncate(g.faker.Country(), 50)),
		))
	}
	if len(values) == 0 {
		return nil
	}
	sql := `INSERT INTO dim_employee
		(employee_key, employee_id, last_name, first_name, title, title_of_courtesy,
		 city, country, source_system)
		VALUES ` + strings.Join(values, ",")
	_, err := g.pool.Exec(ctx, sql)
	return err
}

func (g *Generator) seedOrders(ctx context.Context, spec SeedSpec, first, last time.Time) error {
	progress := datagen.NewProgressReporter("orders", spec.Orders)
	now := time.Now().UTC()
	if last.After(now) {
		last = now
	}

	var values []string
	flush := func() error {
		if len(values) == 0 {
			return nil
		}
		sql := `INSERT INTO fact_orders
			(order_id, customer_key, employee_key, order_date_key, required_date_key,
			 shipped_date_key, order_date, required_date, shipped_date, freight,
			 is_delivered, delivery_delay_days, total_amount, source_system)
			VALUES ` + strings.Join(values, ",")
		_, err := g.pool.Exec(ctx, sql)
		progress.Add(len(values))
		values = values[:0]
		return err
	}

	for i := 0; i < spec.Orders; i++ {
		orderDate := g.faker.DateRange(first, last).Truncate(24 * time.Hour)
		requiredDate := orderDate.AddDate(0, 0, g.faker.IntRange(7, 28))
		delivered := g.faker.Bool(0.85)

		shippedKey := "NULL"
		shippedDate := "NULL"
		delayDays := "NULL"
		if delivered {
			shipped := orderDate.AddDate(0, 0, g.faker.IntRange(1, 21))
			shippedKey = fmt.Sprintf("%d", dateKey(shipped))
			shippedDate = fmt.Sprintf("'%s'", shipped.Format("2006-01-02"))
			delayDays = fmt.Sprintf("%d", int(shipped.Sub(requiredDate).Hours()/24))
		}

		values = append(values, fmt.Sprintf(
			"(%d,%d,%d,%d,%d,%s,'%s','%s',%s,%.2f,%t,%s,%.2f,'demo')",
			10000+i,
			g.faker.IntRange(1, spec.Customers),
			g.faker.IntRange(1, spec.Employees),
			dateKey(orderDate),
			dateKey(requiredDate),
			shippedKey,
			orderDate.Format("2006-01-02"),
			requiredDate.Format("2006-01-02"),
			shippedDate,
			g.faker.Price(5, 500),
			delivered,
			delayDays,
			g.faker.Price(50, 15000),
		))
		if len(values) >= g.batch.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	progress.Finish()
	return nil
}
