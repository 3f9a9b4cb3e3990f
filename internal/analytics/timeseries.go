package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// Granularity selects the bucketing period for a revenue time series.
type Granularity string

const (
	GranularityDaily     Granularity = "daily"
	GranularityWeekly    Granularity = "weekly"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// ParseGranularity maps a user-supplied string to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly,
		GranularityQuarterly, GranularityYearly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: unknown granularity %q", ErrInvalidInput, s)
}

// PeriodRevenue is one bucket of a revenue time series.
type PeriodRevenue struct {
	Period  string
	Revenue decimal.Decimal
	Orders  int
}

// periodKey orders buckets chronologically. Labels sort wrong as
// strings ("2024-W5" after "2024-W40"), so buckets sort on the numeric
// key and only then get labeled.
type periodKey struct {
	year int
	sub  int
}

type periodBucket struct {
	label   string
	revenue decimal.Decimal
	orders  int
}

// TimeSeries buckets order revenue by the given granularity. A zero
// year includes all years. Orders whose date key does not resolve in
// the date dimension cannot be bucketed and are dropped.
func (e *Engine) TimeSeries(orders []warehouse.Order, g Granularity, year int) ([]PeriodRevenue, error) {
	if _, err := ParseGranularity(string(g)); err != nil {
		return nil, err
	}

	buckets := make(map[periodKey]*periodBucket)
	for _, o := range orders {
		d, ok := e.snap.DateByKey(o.OrderDateKey)
		if !ok {
			continue
		}
		if year != 0 && d.Year != year {
			continue
		}
		k, label := bucketOf(d, g)
		b, ok := buckets[k]
		if !ok {
			b = &periodBucket{label: label}
			buckets[k] = b
		}
		b.revenue = b.revenue.Add(o.TotalAmount)
		b.orders++
	}

	keys := make([]periodKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].sub < keys[j].sub
	})

	out := make([]PeriodRevenue, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, PeriodRevenue{Period: b.label, Revenue: b.revenue, Orders: b.orders})
	}
	return out, nil
}

func bucketOf(d warehouse.DateDim, g Granularity) (periodKey, string) {
	switch g {
	case GranularityDaily:
		return periodKey{d.Year, d.Month*100 + d.Day}, d.Date.Format("2006-01-02")
	case GranularityWeekly:
		isoYear, isoWeek := d.Date.ISOWeek()
		return periodKey{isoYear, isoWeek}, fmt.Sprintf("%d-W%d", isoYear, isoWeek)
	case GranularityMonthly:
		return periodKey{d.Year, d.Month}, fmt.Sprintf("%s %d", d.MonthName, d.Year)
	case GranularityQuarterly:
		return periodKey{d.Year, d.Quarter}, fmt.Sprintf("Q%d %d", d.Quarter, d.Year)
	default:
		return periodKey{d.Year, 0}, fmt.Sprintf("%d", d.Year)
	}
}

// MonthlyRevenueTrend is the dashboard's default trend chart: monthly
// buckets over all years present in the orders.
func (e *Engine) MonthlyRevenueTrend(orders []warehouse.Order) []PeriodRevenue {
	series, _ := e.TimeSeries(orders, GranularityMonthly, 0)
	return series
}
