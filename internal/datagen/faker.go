//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides fake-data generation helpers for seeding the
// warehouse with a reproducible demo dataset.
package datagen

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker wraps gofakeit with an isolated source so seeded runs are
// reproducible regardless of other generators in the process.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker creates a Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{f: gofakeit.New(0)}
}

// NewFakerWithSeed creates a Faker with a fixed seed. The same seed
// always produces the same sequence of values.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

// FirstName returns a random first name.
func (fk *Faker) FirstName() string {
	return fk.f.FirstName()
}

// LastName returns a random last name.
func (fk *Faker) LastName() string {
	return fk.f.LastName()
}

// Company returns a random company name.
func (fk *Faker) Company() string {
	return fk.f.Company()
}

// JobTitle returns a random job title.
func (fk *Faker) JobTitle() string {
	return fk.f.JobTitle()
}

// City returns a random city name.
func (fk *Faker) City() string {
	return fk.f.City()
}

// Country returns a random country name.
func (fk *Faker) Country() string {
	return fk.f.Country()
}

// Phone returns a random phone number.
func (fk *Faker) Phone() string {
	return fk.f.Phone()
}

// Street returns a random street address.
func (fk *Faker) Street() string {
	return fk.f.Street()
}

// PostalCode returns a random postal code.
func (fk *Faker) PostalCode() string {
	return fk.f.Zip()
}

// LetterN returns n random uppercase letters.
func (fk *Faker) LetterN(n uint) string {
	return strings.ToUpper(fk.f.LetterN(n))
}

// IntRange returns a random integer in [min, max].
func (fk *Faker) IntRange(min, max int) int {
	return fk.f.IntRange(min, max)
}

// Price returns a random price in [min, max].
func (fk *Faker) Price(min, max float64) float64 {
	return fk.f.Price(min, max)
}

// Bool returns true with the given probability.
func (fk *Faker) Bool(probability float64) bool {
	return fk.f.Float64Range(0, 1) < probability
}

// DateRange returns a random date between start and end.
func (fk *Faker) DateRange(start, end time.Time) time.Time {
	return fk.f.DateRange(start, end)
}

// Choose returns a random element from choices.
func Choose[T any](fk *Faker, choices []T) T {
	return choices[fk.f.IntRange(0, len(choices)-1)]
}

// ChooseWeighted returns a random element from choices using the given
// relative weights. Panics if the slices differ in length.
func ChooseWeighted[T any](fk *Faker, choices []T, weights []int) T {
	if len(choices) != len(weights) {
		panic("datagen: choices and weights must have the same length")
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	n := fk.f.IntRange(0, total-1)
	for i, w := range weights {
		if n < w {
			return choices[i]
		}
		n -= w
	}
	return choices[len(choices)-1]
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// EscapeSQL doubles single quotes for use inside a SQL string literal.
func EscapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
