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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Snapshot is an immutable in-memory copy of the warehouse tables.
// All dashboard analytics read from a snapshot, never from the database
// directly, so every report over the same snapshot is consistent.
type Snapshot struct {
	Orders    []Order
	Customers []Customer
	Employees []Employee
	Dates     []DateDim

	customersByKey map[int]int
	employeesByKey map[int]int
	datesByKey     map[int]int
}

// NewSnapshot builds a snapshot from pre-loaded rows and indexes the
// dimensions by surrogate key.
func NewSnapshot(orders []Order, customers []Customer, employees []Employee, dates []DateDim) *Snapshot {
	s := &Snapshot{
		Orders:         orders,
		Customers:      customers,
		Employees:      employees,
		Dates:          dates,
		customersByKey: make(map[int]int, len(customers)),
		employeesByKey: make(map[int]int, len(employees)),
		datesByKey:     make(map[int]int, len(dates)),
	}
	for i, c := range customers {
		s.customersByKey[c.CustomerKey] = i
	}
	for i, e := range employees {
		s.employeesByKey[e.EmployeeKey] = i
	}
	for i, d := range dates {
		s.datesByKey[d.DateKey] = i
	}
	return s
}

// CustomerByKey resolves a customer surrogate key.
func (s *Snapshot) CustomerByKey(key int) (Customer, bool) {
	i, ok := s.customersByKey[key]
	if !ok {
		return Customer{}, false
	}
	return s.Customers[i], true
}

// EmployeeByKey resolves an employee surrogate key.
func (s *Snapshot) EmployeeByKey(key int) (Employee, bool) {
	i, ok := s.employeesByKey[key]
	if !ok {
		return Employee{}, false
	}
	return s.Employees[i], true
}

// DateByKey resolves a date surrogate key.
func (s *Snapshot) DateByKey(key int) (DateDim, bool) {
	i, ok := s.datesByKey[key]
	if !ok {
		return DateDim{}, false
	}
	return s.Dates[i], true
}

// Load reads the full warehouse into a snapshot.
func Load(ctx context.Context, pool *pgxpool.Pool) (*Snapshot, error) {
	dates, err := loadDates(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("loading dim_date: %w", err)
	}
	customers, err := loadCustomers(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("loading dim_customer: %w", err)
	}
	employees, err := loadEmployees(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("loading dim_employee: %w", err)
	}
	orders, err := loadOrders(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("loading fact_orders: %w", err)
	}

	log.Debug().
		Int("orders", len(orders)).
		Int("customers", len(customers)).
		Int("employees", len(employees)).
		Int("dates", len(dates)).
		Msg("Warehouse snapshot loaded")

	return NewSnapshot(orders, customers, employees, dates), nil
}

func loadDates(ctx context.Context, pool *pgxpool.Pool) ([]DateDim, error) {
	rows, err := pool.Query(ctx, `
		SELECT date_key, date, year, quarter, month, day, month_name, day_of_week, is_weekend
		FROM dim_date
		ORDER BY date_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DateDim, error) {
		var d DateDim
		err := row.Scan(&d.DateKey, &d.Date, &d.Year, &d.Quarter, &d.Month, &d.Day,
			&d.MonthName, &d.DayOfWeek, &d.IsWeekend)
		return d, err
	})
}

func loadCustomers(ctx context.Context, pool *pgxpool.Pool) ([]Customer, error) {
	rows, err := pool.Query(ctx, `
		SELECT customer_key, customer_id, company_name,
		       COALESCE(contact_name, ''), COALESCE(city, ''), COALESCE(country, '')
		FROM dim_customer
		ORDER BY customer_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Customer, error) {
		var c Customer
		err := row.Scan(&c.CustomerKey, &c.CustomerID, &c.CompanyName,
			&c.ContactName, &c.City, &c.Country)
		return c, err
	})
}

func loadEmployees(ctx context.Context, pool *pgxpool.Pool) ([]Employee, error) {
	rows, err := pool.Query(ctx, `
		SELECT employee_key, employee_id, first_name, last_name,
		       COALESCE(title, ''), COALESCE(country, '')
		FROM dim_employee
		ORDER BY employee_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Employee, error) {
		var e Employee
		err := row.Scan(&e.EmployeeKey, &e.EmployeeID, &e.FirstName, &e.LastName,
			&e.Title, &e.Country)
		return e, err
	})
}

func loadOrders(ctx context.Context, pool *pgxpool.Pool) ([]Order, error) {
	rows, err := pool.Query(ctx, `
		SELECT order_id, customer_key, employee_key, order_date_key,
		       COALESCE(order_date, DATE '0001-01-01'),
		       COALESCE(freight, 0), COALESCE(total_amount, 0), is_delivered
		FROM fact_orders
		ORDER BY order_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Order, error) {
		var o Order
		err := row.Scan(&o.OrderID, &o.CustomerKey, &o.EmployeeKey, &o.OrderDateKey,
			&o.OrderDate, &o.Freight, &o.TotalAmount, &o.IsDelivered)
		return o, err
	})
}
