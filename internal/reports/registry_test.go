//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/analytics"
	"github.com/dwdash/dwdash/internal/warehouse"
)

func testEngine() *analytics.Engine {
	date := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)
	dates := []warehouse.DateDim{{
		DateKey: 20230310, Date: date, Year: 2023, Quarter: 1, Month: 3, Day: 10,
		MonthName: "March", DayOfWeek: "Friday",
	}}
	customers := []warehouse.Customer{
		{CustomerKey: 1, CustomerID: "ACME1", CompanyName: "Acme Ltd", Country: "UK"},
	}
	employees := []warehouse.Employee{
		{EmployeeKey: 1, EmployeeID: 1, FirstName: "Ada", LastName: "Jones", Title: "Sales Representative"},
	}
	orders := []warehouse.Order{{
		OrderID: 10001, CustomerKey: 1, EmployeeKey: 1, OrderDateKey: 20230310,
		OrderDate: date, Freight: decimal.RequireFromString("12.50"),
		TotalAmount: decimal.RequireFromString("250.00"), IsDelivered: true,
	}}
	return analytics.New(warehouse.NewSnapshot(orders, customers, employees, dates))
}

func TestRegistryContainsAllReports(t *testing.T) {
	want := []string{
		"countries", "customers", "employees", "overview", "sales", "segments",
		"timeseries", "titles", "top-countries", "top-customers", "trend", "weekdays",
	}
	got := List()
	names := make(map[string]bool, len(got))
	for _, r := range got {
		names[r.Name] = true
		if r.Description == "" {
			t.Errorf("report %q has no description", r.Name)
		}
	}
	for _, w := range want {
		if !names[w] {
			t.Errorf("report %q not registered", w)
		}
	}
}

func TestListIsSorted(t *testing.T) {
	got := List()
	for i := 1; i < len(got); i++ {
		if got[i-1].Name >= got[i].Name {
			t.Fatalf("List not sorted: %q before %q", got[i-1].Name, got[i].Name)
		}
	}
}

func TestGetUnknownReport(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Fatal("expected error for unknown report")
	}
}

func TestAllReportsBuild(t *testing.T) {
	e := testEngine()
	p := Params{TopN: 10, MaxRows: 100}
	for _, r := range List() {
		r := r
		t.Run(r.Name, func(t *testing.T) {
			tables, err := r.Build(e, p)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if len(tables) == 0 {
				t.Fatal("no tables returned")
			}
			for _, table := range tables {
				if table.Title == "" || len(table.Columns) == 0 {
					t.Errorf("table missing title or columns: %+v", table)
				}
				for _, row := range table.Rows {
					if len(row) != len(table.Columns) {
						t.Errorf("row width %d != column count %d", len(row), len(table.Columns))
					}
				}
			}
		})
	}
}

func TestOverviewReportContent(t *testing.T) {
	r, err := Get("overview")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	tables, err := r.Build(testEngine(), Params{TopN: 10})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var sb strings.Builder
	if err := Render(&sb, tables); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"Total Revenue", "$250.00", "Acme Ltd", "Ada Jones"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered overview missing %q:\n%s", want, out)
		}
	}
}
