//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package analytics computes the dashboard metrics over a warehouse
// snapshot. All operations are pure functions of the snapshot: the same
// snapshot and arguments always produce the same result.
package analytics

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// ErrInvalidInput reports an argument outside the supported domain, such
// as an unknown granularity or a non-positive limit.
var ErrInvalidInput = errors.New("invalid input")

// Engine evaluates dashboard metrics against one snapshot.
type Engine struct {
	snap *warehouse.Snapshot
}

// New creates an engine over a snapshot. A nil snapshot behaves as an
// empty warehouse.
func New(snap *warehouse.Snapshot) *Engine {
	if snap == nil {
		snap = warehouse.NewSnapshot(nil, nil, nil, nil)
	}
	return &Engine{snap: snap}
}

// Snapshot returns the snapshot the engine reads from.
func (e *Engine) Snapshot() *warehouse.Snapshot {
	return e.snap
}

// orderAgg accumulates an order count and revenue total for one group.
type orderAgg struct {
	count int
	total decimal.Decimal
}

// aggregateByKey groups orders by an integer key, preserving the order
// in which keys are first encountered.
func aggregateByKey(orders []warehouse.Order, key func(warehouse.Order) int) (map[int]*orderAgg, []int) {
	aggs := make(map[int]*orderAgg)
	var seen []int
	for _, o := range orders {
		k := key(o)
		a, ok := aggs[k]
		if !ok {
			a = &orderAgg{}
			aggs[k] = a
			seen = append(seen, k)
		}
		a.count++
		a.total = a.total.Add(o.TotalAmount)
	}
	return aggs, seen
}

// meanOf divides total by n rounded to cents, returning zero for n == 0.
func meanOf(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}
