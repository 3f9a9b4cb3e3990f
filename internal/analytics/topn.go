package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// RankedRevenue is one row of a top-N ranking.
type RankedRevenue struct {
	Name    string
	Revenue decimal.Decimal
	Orders  int
}

// TopCustomersByRevenue ranks customers by total revenue, highest first,
// and returns at most n rows. Ties keep the customer whose orders appear
// first. Orders with an unresolvable customer key are skipped.
func (e *Engine) TopCustomersByRevenue(orders []warehouse.Order, n int) ([]RankedRevenue, error) {
	return e.rankByRevenue(orders, n, func(o warehouse.Order) (string, bool) {
		c, ok := e.snap.CustomerByKey(o.CustomerKey)
		if !ok {
			return "", false
		}
		return c.CompanyName, true
	})
}

// TopCountriesByRevenue ranks customer countries by total revenue.
// Orders whose customer has no country are skipped.
func (e *Engine) TopCountriesByRevenue(orders []warehouse.Order, n int) ([]RankedRevenue, error) {
	return e.rankByRevenue(orders, n, func(o warehouse.Order) (string, bool) {
		c, ok := e.snap.CustomerByKey(o.CustomerKey)
		if !ok || c.Country == "" {
			return "", false
		}
		return c.Country, true
	})
}

func (e *Engine) rankByRevenue(orders []warehouse.Order, n int, name func(warehouse.Order) (string, bool)) ([]RankedRevenue, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidInput, n)
	}

	totals := make(map[string]*RankedRevenue)
	var seen []string
	for _, o := range orders {
		key, ok := name(o)
		if !ok {
			continue
		}
		r, ok := totals[key]
		if !ok {
			r = &RankedRevenue{Name: key}
			totals[key] = r
			seen = append(seen, key)
		}
		r.Revenue = r.Revenue.Add(o.TotalAmount)
		r.Orders++
	}

	ranked := make([]RankedRevenue, 0, len(seen))
	for _, key := range seen {
		ranked = append(ranked, *totals[key])
	}
	// Stable sort over first-encountered order keeps ties deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
