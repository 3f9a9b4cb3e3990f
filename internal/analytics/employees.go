package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// EmployeeStats is one employee with order statistics.
type EmployeeStats struct {
	Employee     warehouse.Employee
	OrderCount   int
	TotalRevenue decimal.Decimal
	AvgRevenue   decimal.Decimal
}

// EmployeeHighlights names the standouts of an employee performance run.
// Pointers are nil when the dimension is empty.
type EmployeeHighlights struct {
	TopByRevenue *EmployeeStats
	TopByOrders  *EmployeeStats
	TopByAverage *EmployeeStats
}

// EmployeePerformance returns per-employee statistics in dimension order
// plus the highlight standouts. Employees with no orders in the subset
// appear with zero counts. Ties on a highlight keep the employee listed
// first in the dimension.
func (e *Engine) EmployeePerformance(orders []warehouse.Order) ([]EmployeeStats, EmployeeHighlights) {
	aggs, _ := aggregateByKey(orders, func(o warehouse.Order) int { return o.EmployeeKey })

	stats := make([]EmployeeStats, 0, len(e.snap.Employees))
	for _, emp := range e.snap.Employees {
		s := EmployeeStats{
			Employee:     emp,
			TotalRevenue: decimal.Zero,
			AvgRevenue:   decimal.Zero,
		}
		if a, ok := aggs[emp.EmployeeKey]; ok {
			s.OrderCount = a.count
			s.TotalRevenue = a.total
			s.AvgRevenue = meanOf(a.total, a.count)
		}
		stats = append(stats, s)
	}

	var hl EmployeeHighlights
	for i := range stats {
		s := &stats[i]
		if hl.TopByRevenue == nil || s.TotalRevenue.GreaterThan(hl.TopByRevenue.TotalRevenue) {
			hl.TopByRevenue = s
		}
		if hl.TopByOrders == nil || s.OrderCount > hl.TopByOrders.OrderCount {
			hl.TopByOrders = s
		}
		if hl.TopByAverage == nil || s.AvgRevenue.GreaterThan(hl.TopByAverage.AvgRevenue) {
			hl.TopByAverage = s
		}
	}
	return stats, hl
}

// TitleStats aggregates employee performance by job title.
type TitleStats struct {
	Title          string
	Employees      int
	TotalRevenue   decimal.Decimal
	MeanRevenue    decimal.Decimal
	MeanOrderCount decimal.Decimal
}

// PerformanceByTitle groups employee statistics by job title, highest
// mean revenue first. Titles whose mean revenue is zero are dropped so
// unstaffed roles do not clutter the comparison.
func PerformanceByTitle(stats []EmployeeStats) []TitleStats {
	byTitle := make(map[string]*TitleStats)
	var seen []string
	ordersByTitle := make(map[string]int)
	for _, s := range stats {
		t, ok := byTitle[s.Employee.Title]
		if !ok {
			t = &TitleStats{Title: s.Employee.Title, TotalRevenue: decimal.Zero}
			byTitle[s.Employee.Title] = t
			seen = append(seen, s.Employee.Title)
		}
		t.Employees++
		t.TotalRevenue = t.TotalRevenue.Add(s.TotalRevenue)
		ordersByTitle[s.Employee.Title] += s.OrderCount
	}

	out := make([]TitleStats, 0, len(seen))
	for _, title := range seen {
		t := byTitle[title]
		t.MeanRevenue = meanOf(t.TotalRevenue, t.Employees)
		t.MeanOrderCount = meanOf(decimal.NewFromInt(int64(ordersByTitle[title])), t.Employees)
		if t.MeanRevenue.IsZero() {
			continue
		}
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeanRevenue.GreaterThan(out[j].MeanRevenue)
	})
	return out
}
