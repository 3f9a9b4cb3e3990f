//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package query runs ad-hoc SQL against the warehouse and renders
// results as strings for display or export.
package query

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ResultSet holds a query result with all values rendered as strings.
// SQL NULL renders as the literal "NULL".
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

// Run executes sql and collects the full result set.
func Run(ctx context.Context, pool *pgxpool.Pool, sql string) (*ResultSet, error) {
	start := time.Now()
	rows, err := pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	rs := &ResultSet{}
	for _, fd := range rows.FieldDescriptions() {
		rs.Columns = append(rs.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	log.Debug().
		Int("rows", len(rs.Rows)).
		Dur("elapsed", time.Since(start)).
		Msg("Query executed")
	return rs, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	case driver.Valuer:
		// Numeric and other pgtype values render through their driver
		// representation instead of the struct literal.
		dv, err := val.Value()
		if err != nil || dv == nil {
			return "NULL"
		}
		return formatValue(dv)
	default:
		return fmt.Sprintf("%v", val)
	}
}
