package analytics

import (
	"time"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// OrderFilter selects a subset of fact rows. Zero-value fields are
// ignored; a set field must match for a row to pass.
type OrderFilter struct {
	// From and To bound the order date inclusively, by calendar day.
	From time.Time
	To   time.Time
	// Country matches the owning customer's country exactly. Orders
	// whose customer key cannot be resolved never match.
	Country string
	// Year matches the order date's year.
	Year int
	// CustomerKeys restricts to an explicit set of customers.
	CustomerKeys []int
}

func sameOrBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad <= bd
}

// FilterOrders returns the orders matching f, preserving input order.
// An empty filter returns all orders.
func (e *Engine) FilterOrders(f OrderFilter) []warehouse.Order {
	var keySet map[int]struct{}
	if len(f.CustomerKeys) > 0 {
		keySet = make(map[int]struct{}, len(f.CustomerKeys))
		for _, k := range f.CustomerKeys {
			keySet[k] = struct{}{}
		}
	}

	out := make([]warehouse.Order, 0, len(e.snap.Orders))
	for _, o := range e.snap.Orders {
		if keySet != nil {
			if _, ok := keySet[o.CustomerKey]; !ok {
				continue
			}
		}
		if !f.From.IsZero() && !sameOrBefore(f.From, o.OrderDate) {
			continue
		}
		if !f.To.IsZero() && !sameOrBefore(o.OrderDate, f.To) {
			continue
		}
		if f.Year != 0 && o.OrderDate.Year() != f.Year {
			continue
		}
		if f.Country != "" {
			c, ok := e.snap.CustomerByKey(o.CustomerKey)
			if !ok || c.Country != f.Country {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}
