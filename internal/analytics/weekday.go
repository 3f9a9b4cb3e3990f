package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// weekdayIndex orders day names Monday through Sunday for display,
// independent of the order the facts arrive in.
var weekdayIndex = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// WeekdayStats is the order activity of one day of the week.
type WeekdayStats struct {
	Day        string
	MeanValue  decimal.Decimal
	TotalValue decimal.Decimal
	Orders     int
}

// DayOfWeekAverages aggregates order value by day of week, ordered
// Monday through Sunday. Days with no orders are omitted. Orders whose
// date key does not resolve are dropped.
func (e *Engine) DayOfWeekAverages(orders []warehouse.Order) []WeekdayStats {
	var buckets [7]WeekdayStats
	for _, o := range orders {
		d, ok := e.snap.DateByKey(o.OrderDateKey)
		if !ok {
			continue
		}
		i, ok := weekdayIndex[d.DayOfWeek]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Day = d.DayOfWeek
		b.TotalValue = b.TotalValue.Add(o.TotalAmount)
		b.Orders++
	}

	out := make([]WeekdayStats, 0, 7)
	for _, b := range buckets {
		if b.Orders == 0 {
			continue
		}
		b.MeanValue = meanOf(b.TotalValue, b.Orders)
		out = append(out, b)
	}
	return out
}
