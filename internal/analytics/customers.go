package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// Segment labels a customer's spending tercile.
type Segment string

const (
	SegmentLow    Segment = "Low"
	SegmentMedium Segment = "Medium"
	SegmentHigh   Segment = "High"
)

// CustomerSummary is one customer with lifetime order statistics.
type CustomerSummary struct {
	Customer   warehouse.Customer
	OrderCount int
	TotalSpent decimal.Decimal
	Segment    Segment
}

// CustomerFilter selects customers for the customer insights view.
// Segment filtering applies after segmentation of the country/min-order
// filtered population, so the terciles reflect the population on screen.
type CustomerFilter struct {
	Country   string
	MinOrders int
	Segment   Segment
}

// CustomerSummaries returns per-customer order statistics in dimension
// order, segmented into spending terciles and filtered by f. Customers
// with no orders have a zero count and zero spend.
func (e *Engine) CustomerSummaries(orders []warehouse.Order, f CustomerFilter) []CustomerSummary {
	aggs, _ := aggregateByKey(orders, func(o warehouse.Order) int { return o.CustomerKey })

	summaries := make([]CustomerSummary, 0, len(e.snap.Customers))
	for _, c := range e.snap.Customers {
		if f.Country != "" && c.Country != f.Country {
			continue
		}
		s := CustomerSummary{Customer: c, TotalSpent: decimal.Zero}
		if a, ok := aggs[c.CustomerKey]; ok {
			s.OrderCount = a.count
			s.TotalSpent = a.total
		}
		if s.OrderCount < f.MinOrders {
			continue
		}
		summaries = append(summaries, s)
	}

	summaries = SegmentCustomers(summaries)

	if f.Segment != "" {
		kept := summaries[:0]
		for _, s := range summaries {
			if s.Segment == f.Segment {
				kept = append(kept, s)
			}
		}
		summaries = kept
	}
	return summaries
}

// SegmentCustomers assigns each summary a spending tercile. Thresholds
// are the spends at ranks ceil(n/3) and ceil(2n/3) of the ascending
// spend order; spends on a boundary fall in the lower segment, so equal
// spends always share a segment.
func SegmentCustomers(summaries []CustomerSummary) []CustomerSummary {
	n := len(summaries)
	if n == 0 {
		return summaries
	}

	spends := make([]decimal.Decimal, n)
	for i, s := range summaries {
		spends[i] = s.TotalSpent
	}
	sort.Slice(spends, func(i, j int) bool {
		return spends[i].LessThan(spends[j])
	})
	lowMax := spends[(n+2)/3-1]
	mediumMax := spends[(2*n+2)/3-1]

	out := make([]CustomerSummary, n)
	for i, s := range summaries {
		switch {
		case s.TotalSpent.LessThanOrEqual(lowMax):
			s.Segment = SegmentLow
		case s.TotalSpent.LessThanOrEqual(mediumMax):
			s.Segment = SegmentMedium
		default:
			s.Segment = SegmentHigh
		}
		out[i] = s
	}
	return out
}

// SegmentBreakdown counts customers per spending tercile.
type SegmentBreakdown struct {
	Low    int
	Medium int
	High   int
}

// SegmentCounts tallies summaries by segment.
func SegmentCounts(summaries []CustomerSummary) SegmentBreakdown {
	var b SegmentBreakdown
	for _, s := range summaries {
		switch s.Segment {
		case SegmentLow:
			b.Low++
		case SegmentMedium:
			b.Medium++
		case SegmentHigh:
			b.High++
		}
	}
	return b
}

// CountryCount is one country with its customer count.
type CountryCount struct {
	Country   string
	Customers int
}

// CountryCustomerCounts counts customers per country, largest first.
// Customers without a country are grouped under "Unknown".
func (e *Engine) CountryCustomerCounts() []CountryCount {
	counts := make(map[string]int)
	var seen []string
	for _, c := range e.snap.Customers {
		country := c.Country
		if country == "" {
			country = "Unknown"
		}
		if _, ok := counts[country]; !ok {
			seen = append(seen, country)
		}
		counts[country]++
	}

	out := make([]CountryCount, 0, len(seen))
	for _, country := range seen {
		out = append(out, CountryCount{Country: country, Customers: counts[country]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Customers > out[j].Customers
	})
	return out
}

// Countries returns the distinct customer countries in alphabetical
// order, for populating filter choices. Empty countries are skipped.
func (e *Engine) Countries() []string {
	set := make(map[string]struct{})
	for _, c := range e.snap.Customers {
		if c.Country != "" {
			set[c.Country] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for country := range set {
		out = append(out, country)
	}
	sort.Strings(out)
	return out
}

// Years returns the distinct years of the date dimension in ascending
// order, for populating filter choices.
func (e *Engine) Years() []int {
	set := make(map[int]struct{})
	for _, d := range e.snap.Dates {
		set[d.Year] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
