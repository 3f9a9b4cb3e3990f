package analytics

import (
	"testing"
	"time"

	"github.com/dwdash/dwdash/internal/warehouse"
)

func TestEmployeePerformance(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 1, 1, day(2023, time.January, 6), "100.00", true),
		ord(3, 2, 2, day(2023, time.January, 7), "300.00", true),
	}
	e := New(testSnapshot(orders))

	stats, hl := e.EmployeePerformance(orders)
	if len(stats) != 2 {
		t.Fatalf("got %d employees, want 2", len(stats))
	}
	if stats[0].OrderCount != 2 || !stats[0].TotalRevenue.Equal(dec("200.00")) {
		t.Errorf("employee 1 = %d orders %s, want 2 orders 200.00",
			stats[0].OrderCount, stats[0].TotalRevenue)
	}
	if !stats[0].AvgRevenue.Equal(dec("100.00")) {
		t.Errorf("employee 1 avg = %s, want 100.00", stats[0].AvgRevenue)
	}

	if hl.TopByRevenue == nil || hl.TopByRevenue.Employee.EmployeeKey != 2 {
		t.Errorf("TopByRevenue = %+v, want employee 2", hl.TopByRevenue)
	}
	if hl.TopByOrders == nil || hl.TopByOrders.Employee.EmployeeKey != 1 {
		t.Errorf("TopByOrders = %+v, want employee 1", hl.TopByOrders)
	}
	if hl.TopByAverage == nil || hl.TopByAverage.Employee.EmployeeKey != 2 {
		t.Errorf("TopByAverage = %+v, want employee 2", hl.TopByAverage)
	}
}

func TestEmployeePerformanceNoOrders(t *testing.T) {
	e := New(testSnapshot(nil))
	stats, hl := e.EmployeePerformance(nil)

	if len(stats) != 2 {
		t.Fatalf("got %d employees, want 2", len(stats))
	}
	for _, s := range stats {
		if s.OrderCount != 0 || !s.TotalRevenue.IsZero() || !s.AvgRevenue.IsZero() {
			t.Errorf("employee %d has nonzero stats with no orders: %+v",
				s.Employee.EmployeeKey, s)
		}
	}
	// Ties at zero keep the first employee in the dimension.
	if hl.TopByRevenue == nil || hl.TopByRevenue.Employee.EmployeeKey != 1 {
		t.Errorf("TopByRevenue = %+v, want employee 1", hl.TopByRevenue)
	}
}

func TestEmployeePerformanceEmptyDimension(t *testing.T) {
	e := New(warehouse.NewSnapshot(nil, nil, nil, nil))
	stats, hl := e.EmployeePerformance(nil)
	if len(stats) != 0 {
		t.Fatalf("got %d employees, want 0", len(stats))
	}
	if hl.TopByRevenue != nil || hl.TopByOrders != nil || hl.TopByAverage != nil {
		t.Errorf("highlights over empty dimension = %+v", hl)
	}
}

func TestPerformanceByTitle(t *testing.T) {
	stats := []EmployeeStats{
		{Employee: warehouse.Employee{EmployeeKey: 1, Title: "Sales Representative"},
			OrderCount: 2, TotalRevenue: dec("200.00")},
		{Employee: warehouse.Employee{EmployeeKey: 2, Title: "Sales Representative"},
			OrderCount: 4, TotalRevenue: dec("400.00")},
		{Employee: warehouse.Employee{EmployeeKey: 3, Title: "Sales Manager"},
			OrderCount: 1, TotalRevenue: dec("900.00")},
		{Employee: warehouse.Employee{EmployeeKey: 4, Title: "Intern"},
			OrderCount: 0, TotalRevenue: dec("0")},
	}

	got := PerformanceByTitle(stats)
	if len(got) != 2 {
		t.Fatalf("got %d titles, want 2 (zero-revenue titles dropped): %+v", len(got), got)
	}
	if got[0].Title != "Sales Manager" || !got[0].MeanRevenue.Equal(dec("900.00")) {
		t.Errorf("top title = %+v, want Sales Manager with mean 900.00", got[0])
	}
	if got[1].Title != "Sales Representative" {
		t.Errorf("second title = %+v, want Sales Representative", got[1])
	}
	if !got[1].MeanRevenue.Equal(dec("300.00")) {
		t.Errorf("rep mean revenue = %s, want 300.00", got[1].MeanRevenue)
	}
	if !got[1].MeanOrderCount.Equal(dec("3.00")) {
		t.Errorf("rep mean orders = %s, want 3.00", got[1].MeanOrderCount)
	}
	if got[1].Employees != 2 {
		t.Errorf("rep employees = %d, want 2", got[1].Employees)
	}
}

func TestDayOfWeekAverages(t *testing.T) {
	// 2023-01-01 was a Sunday, 2023-01-02 a Monday.
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 1), "100.00", true),
		ord(2, 1, 1, day(2023, time.January, 2), "200.00", true),
		ord(3, 2, 1, day(2023, time.January, 9), "400.00", true),
	}
	e := New(testSnapshot(orders))

	got := e.DayOfWeekAverages(orders)
	if len(got) != 2 {
		t.Fatalf("got %d weekdays, want 2", len(got))
	}
	// Monday sorts before Sunday even though Sunday arrived first.
	if got[0].Day != "Monday" {
		t.Errorf("first day = %q, want Monday", got[0].Day)
	}
	if got[0].Orders != 2 || !got[0].MeanValue.Equal(dec("300.00")) {
		t.Errorf("Monday = %d orders mean %s, want 2 orders mean 300.00",
			got[0].Orders, got[0].MeanValue)
	}
	if got[1].Day != "Sunday" || !got[1].TotalValue.Equal(dec("100.00")) {
		t.Errorf("second day = %+v, want Sunday total 100.00", got[1])
	}
}
