//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil provides helpers for integration tests that need a
// real PostgreSQL database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnEnvVar names the environment variable holding the test database
// connection string.
const ConnEnvVar = "DWDASH_TEST_CONN"

// RequireConnString returns the test connection string or skips the test.
func RequireConnString(t *testing.T) string {
	t.Helper()
	conn := os.Getenv(ConnEnvVar)
	if conn == "" {
		t.Skipf("%s not set, skipping integration test", ConnEnvVar)
	}
	return conn
}

// RequirePool connects to the test database or skips the test. The pool
// is closed when the test finishes.
func RequirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	conn := RequireConnString(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, conn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("test database not reachable: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
