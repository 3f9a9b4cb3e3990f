//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dimOf(t time.Time) warehouse.DateDim {
	return warehouse.DateDim{
		DateKey:   t.Year()*10000 + int(t.Month())*100 + t.Day(),
		Date:      t,
		Year:      t.Year(),
		Quarter:   (int(t.Month())-1)/3 + 1,
		Month:     int(t.Month()),
		Day:       t.Day(),
		MonthName: t.Month().String(),
		DayOfWeek: t.Weekday().String(),
		IsWeekend: t.Weekday() == time.Saturday || t.Weekday() == time.Sunday,
	}
}

func ord(id, custKey, empKey int, date time.Time, amount string, delivered bool) warehouse.Order {
	return warehouse.Order{
		OrderID:      id,
		CustomerKey:  custKey,
		EmployeeKey:  empKey,
		OrderDateKey: date.Year()*10000 + int(date.Month())*100 + date.Day(),
		OrderDate:    date,
		Freight:      dec("10.00"),
		TotalAmount:  dec(amount),
		IsDelivered:  delivered,
	}
}

// testSnapshot builds a small warehouse: three customers in two
// countries, two employees, and a date dimension spanning the dates the
// tests order on.
func testSnapshot(orders []warehouse.Order) *warehouse.Snapshot {
	customers := []warehouse.Customer{
		{CustomerKey: 1, CustomerID: "ALFKI", CompanyName: "Alpine Trading", Country: "Germany"},
		{CustomerKey: 2, CustomerID: "BERGS", CompanyName: "Bergson Foods", Country: "Sweden"},
		{CustomerKey: 3, CustomerID: "CHOPS", CompanyName: "Chop Suey Co", Country: "Germany"},
	}
	employees := []warehouse.Employee{
		{EmployeeKey: 1, EmployeeID: 1, FirstName: "Nancy", LastName: "Davolio", Title: "Sales Representative"},
		{EmployeeKey: 2, EmployeeID: 2, FirstName: "Andrew", LastName: "Fuller", Title: "Sales Manager"},
	}
	var dates []warehouse.DateDim
	for d := day(2023, time.January, 1); !d.After(day(2024, time.December, 31)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, dimOf(d))
	}
	return warehouse.NewSnapshot(orders, customers, employees, dates)
}

func TestOverview(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 2, 2, day(2023, time.January, 6), "250.00", false),
		ord(3, 1, 1, day(2023, time.February, 1), "50.00", true),
	}
	e := New(testSnapshot(orders))
	ov := e.Overview(orders)

	if ov.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", ov.TotalOrders)
	}
	if ov.DeliveredOrders+ov.PendingOrders != ov.TotalOrders {
		t.Errorf("delivered %d + pending %d != total %d",
			ov.DeliveredOrders, ov.PendingOrders, ov.TotalOrders)
	}
	if ov.DeliveredOrders != 2 {
		t.Errorf("DeliveredOrders = %d, want 2", ov.DeliveredOrders)
	}
	if !ov.TotalRevenue.Equal(dec("400.00")) {
		t.Errorf("TotalRevenue = %s, want 400.00", ov.TotalRevenue)
	}
	if !ov.AvgOrderValue.Equal(dec("133.33")) {
		t.Errorf("AvgOrderValue = %s, want 133.33", ov.AvgOrderValue)
	}
	if ov.TotalCustomers != 3 {
		t.Errorf("TotalCustomers = %d, want 3", ov.TotalCustomers)
	}
	if ov.TopCustomer != "Bergson Foods" {
		t.Errorf("TopCustomer = %q, want Bergson Foods", ov.TopCustomer)
	}
	if ov.TopEmployee != "Andrew Fuller" {
		t.Errorf("TopEmployee = %q, want Andrew Fuller", ov.TopEmployee)
	}
}

func TestOverviewEmpty(t *testing.T) {
	e := New(testSnapshot(nil))
	ov := e.Overview(nil)

	if ov.TotalOrders != 0 || ov.DeliveredOrders != 0 || ov.PendingOrders != 0 {
		t.Errorf("empty overview has nonzero counts: %+v", ov)
	}
	if !ov.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0", ov.TotalRevenue)
	}
	if !ov.AvgOrderValue.IsZero() {
		t.Errorf("AvgOrderValue = %s, want 0", ov.AvgOrderValue)
	}
	if ov.TopCustomer != "N/A" || ov.TopEmployee != "N/A" {
		t.Errorf("top names = %q/%q, want N/A/N/A", ov.TopCustomer, ov.TopEmployee)
	}
}

func TestOverviewTieKeepsFirstSeen(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 2, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 1, 2, day(2023, time.January, 6), "100.00", true),
	}
	e := New(testSnapshot(orders))
	ov := e.Overview(orders)

	if ov.TopCustomer != "Bergson Foods" {
		t.Errorf("TopCustomer = %q, want first-seen Bergson Foods", ov.TopCustomer)
	}
	if ov.TopEmployee != "Nancy Davolio" {
		t.Errorf("TopEmployee = %q, want first-seen Nancy Davolio", ov.TopEmployee)
	}
}

func TestOverviewSkipsUnresolvedKeys(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 99, 99, day(2023, time.January, 5), "9999.00", true),
		ord(2, 1, 1, day(2023, time.January, 6), "100.00", true),
	}
	e := New(testSnapshot(orders))
	ov := e.Overview(orders)

	// The unresolved row still counts toward the totals.
	if ov.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", ov.TotalOrders)
	}
	if !ov.TotalRevenue.Equal(dec("10099.00")) {
		t.Errorf("TotalRevenue = %s, want 10099.00", ov.TotalRevenue)
	}
	// But never becomes a named standout.
	if ov.TopCustomer != "Alpine Trading" {
		t.Errorf("TopCustomer = %q, want Alpine Trading", ov.TopCustomer)
	}
	if ov.TopEmployee != "Nancy Davolio" {
		t.Errorf("TopEmployee = %q, want Nancy Davolio", ov.TopEmployee)
	}
}

func TestFilterOrders(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 2, 1, day(2023, time.June, 15), "200.00", true),
		ord(3, 3, 2, day(2024, time.March, 1), "300.00", false),
		ord(4, 99, 2, day(2024, time.March, 2), "400.00", false),
	}
	e := New(testSnapshot(orders))

	tests := []struct {
		name    string
		filter  OrderFilter
		wantIDs []int
	}{
		{"no filter", OrderFilter{}, []int{1, 2, 3, 4}},
		{"date range inclusive", OrderFilter{From: day(2023, time.January, 5), To: day(2023, time.June, 15)}, []int{1, 2}},
		{"empty date range", OrderFilter{From: day(2025, time.January, 1), To: day(2025, time.December, 31)}, nil},
		{"inverted range", OrderFilter{From: day(2023, time.June, 15), To: day(2023, time.January, 5)}, nil},
		{"country", OrderFilter{Country: "Germany"}, []int{1, 3}},
		{"country drops unresolved customer", OrderFilter{Country: "Sweden"}, []int{2}},
		{"year", OrderFilter{Year: 2024}, []int{3, 4}},
		{"country and year", OrderFilter{Country: "Germany", Year: 2024}, []int{3}},
		{"customer key set", OrderFilter{CustomerKeys: []int{2, 3}}, []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FilterOrders(tt.filter)
			var ids []int
			for _, o := range got {
				ids = append(ids, o.OrderID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("got ids %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Fatalf("got ids %v, want %v", ids, tt.wantIDs)
				}
			}
		})
	}
}

func TestFilteredEmptySetIsSafeDownstream(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
	}
	e := New(testSnapshot(orders))
	empty := e.FilterOrders(OrderFilter{From: day(2025, time.January, 1), To: day(2025, time.December, 31)})
	if len(empty) != 0 {
		t.Fatalf("expected empty subset, got %d orders", len(empty))
	}

	ov := e.Overview(empty)
	if ov.TotalOrders != 0 || !ov.AvgOrderValue.IsZero() {
		t.Errorf("overview over empty subset = %+v", ov)
	}
	if got := e.MonthlyRevenueTrend(empty); len(got) != 0 {
		t.Errorf("trend over empty subset has %d buckets", len(got))
	}
	if got, err := e.TopCustomersByRevenue(empty, 10); err != nil || len(got) != 0 {
		t.Errorf("top customers over empty subset = %v, %v", got, err)
	}
	if got := e.DayOfWeekAverages(empty); len(got) != 0 {
		t.Errorf("weekday averages over empty subset has %d rows", len(got))
	}
}
