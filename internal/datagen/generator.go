//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"time"

	"github.com/rs/zerolog/log"
)

// BatchInsertConfig controls batched INSERT statement assembly.
type BatchInsertConfig struct {
	BatchSize int
}

// DefaultBatchConfig returns the default batch configuration.
func DefaultBatchConfig() BatchInsertConfig {
	return BatchInsertConfig{
		BatchSize: 1000,
	}
}

// ProgressReporter logs periodic progress during long-running generation.
type ProgressReporter struct {
	name     string
	total    int
	done     int
	lastLog  time.Time
	interval time.Duration
}

// NewProgressReporter creates a reporter for a generation phase.
func NewProgressReporter(name string, total int) *ProgressReporter {
	return &ProgressReporter{
		name:     name,
		total:    total,
		lastLog:  time.Now(),
		interval: 5 * time.Second,
	}
}

// Add records n completed rows and logs if the interval has elapsed.
func (p *ProgressReporter) Add(n int) {
	p.done += n
	if time.Since(p.lastLog) < p.interval {
		return
	}
	p.lastLog = time.Now()
	pct := 0.0
	if p.total > 0 {
		pct = float64(p.done) / float64(p.total) * 100
	}
	log.Info().
		Str("phase", p.name).
		Int("rows", p.done).
		Int("total", p.total).
		Float64("percent", pct).
		Msg("Generation progress")
}

// Finish logs the final row count for the phase.
func (p *ProgressReporter) Finish() {
	log.Info().
		Str("phase", p.name).
		Int("rows", p.done).
		Msg("Generation complete")
}
