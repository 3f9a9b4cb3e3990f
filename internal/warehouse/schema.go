// Package warehouse implements the star schema and in-memory snapshot
// for the dwdash data warehouse.
package warehouse

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for creating the warehouse star schema: three dimensions
// and one fact table, with indexes for the dashboard's analytical queries.
const createSchemaSQL = `
-- DimDate: one row per calendar day
CREATE TABLE IF NOT EXISTS dim_date (
    date_key    INTEGER PRIMARY KEY,
    date        DATE NOT NULL,
    year        INTEGER NOT NULL,
    quarter     INTEGER NOT NULL,
    month       INTEGER NOT NULL,
    day         INTEGER NOT NULL,
    month_name  VARCHAR(20) NOT NULL,
    day_of_week VARCHAR(20) NOT NULL,
    is_weekend  BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (date)
);

-- DimCustomer: customer accounts
CREATE TABLE IF NOT EXISTS dim_customer (
    customer_key  INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    customer_id   VARCHAR(10) NOT NULL,
    company_name  VARCHAR(100) NOT NULL,
    contact_name  VARCHAR(100),
    contact_title VARCHAR(100),
    address       VARCHAR(200),
    city          VARCHAR(50),
    region        VARCHAR(50),
    postal_code   VARCHAR(20),
    country       VARCHAR(50),
    phone         VARCHAR(30),
    source_system VARCHAR(20),
    UNIQUE (customer_id, source_system)
);

-- DimEmployee: sales representatives
CREATE TABLE IF NOT EXISTS dim_employee (
    employee_key      INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    employee_id       INTEGER NOT NULL,
    last_name         VARCHAR(50) NOT NULL,
    first_name        VARCHAR(50) NOT NULL,
    title             VARCHAR(100),
    title_of_courtesy VARCHAR(25),
    birth_date        DATE,
    hire_date         DATE,
    address           VARCHAR(200),
    city              VARCHAR(50),
    region            VARCHAR(50),
    postal_code       VARCHAR(20),
    country           VARCHAR(50),
    home_phone        VARCHAR(30),
    reports_to        INTEGER,
    source_system     VARCHAR(20),
    UNIQUE (employee_id, source_system)
);

-- FactOrders: one row per sales transaction
CREATE TABLE IF NOT EXISTS fact_orders (
    order_key           INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    order_id            INTEGER NOT NULL,
    customer_key        INTEGER NOT NULL REFERENCES dim_customer(customer_key),
    employee_key        INTEGER NOT NULL REFERENCES dim_employee(employee_key),
    order_date_key      INTEGER NOT NULL,
    required_date_key   INTEGER,
    shipped_date_key    INTEGER,
    order_date          DATE,
    required_date       DATE,
    shipped_date        DATE,
    ship_via            INTEGER,
    freight             NUMERIC(10,2),
    ship_name           VARCHAR(100),
    ship_address        VARCHAR(200),
    ship_city           VARCHAR(50),
    ship_region         VARCHAR(50),
    ship_postal_code    VARCHAR(20),
    ship_country        VARCHAR(50),
    is_delivered        BOOLEAN NOT NULL DEFAULT FALSE,
    delivery_delay_days INTEGER,
    total_amount        NUMERIC(15,2),
    source_system       VARCHAR(20)
);

-- Indexes for the dashboard's analytical access paths
CREATE INDEX IF NOT EXISTS idx_fact_orders_dates
    ON fact_orders (order_date_key, required_date_key, shipped_date_key);
CREATE INDEX IF NOT EXISTS idx_fact_orders_customer
    ON fact_orders (customer_key);
CREATE INDEX IF NOT EXISTS idx_fact_orders_employee
    ON fact_orders (employee_key);
`

// Drop schema SQL
const dropSchemaSQL = `
DROP TABLE IF EXISTS fact_orders CASCADE;
DROP TABLE IF EXISTS dim_employee CASCADE;
DROP TABLE IF EXISTS dim_customer CASCADE;
DROP TABLE IF EXISTS dim_date CASCADE;
`

// CreateSchema creates the warehouse schema. The DDL is idempotent; running
// it against an already-initialized database is a no-op.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the warehouse schema.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}
