//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package reports renders dashboard analytics as named, registered
// tabular reports.
package reports

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dwdash/dwdash/internal/analytics"
)

// Table is one rendered report section.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Params carries the user-selected report options.
type Params struct {
	Filter      analytics.OrderFilter
	Customer    analytics.CustomerFilter
	TopN        int
	Granularity analytics.Granularity
	Year        int
	MaxRows     int
}

// Builder produces a report's tables from an engine.
type Builder func(e *analytics.Engine, p Params) ([]Table, error)

// Report is a registered report.
type Report struct {
	Name        string
	Description string
	Build       Builder
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Report)
)

// Register adds a report. Panics on duplicate names, which indicates a
// programming error during init.
func Register(name, description string, build Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("reports: duplicate report name %q", name))
	}
	registry[name] = Report{Name: name, Description: description, Build: build}
}

// Get returns a registered report by name.
func Get(name string) (Report, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return Report{}, fmt.Errorf("unknown report %q (use 'dwdash reports' to list)", name)
	}
	return r, nil
}

// List returns all registered reports sorted by name.
func List() []Report {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Report, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
