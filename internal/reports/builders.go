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
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/analytics"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func init() {
	Register("overview", "Headline metrics: orders, revenue, delivery status", buildOverview)
	Register("trend", "Monthly revenue trend", buildTrend)
	Register("timeseries", "Revenue time series at a chosen granularity", buildTimeSeries)
	Register("top-customers", "Customers ranked by revenue", buildTopCustomers)
	Register("top-countries", "Customer countries ranked by revenue", buildTopCountries)
	Register("customers", "Per-customer order statistics with spending segments", buildCustomers)
	Register("segments", "Customer counts per spending segment", buildSegments)
	Register("countries", "Customer counts per country", buildCountries)
	Register("employees", "Per-employee performance with standouts", buildEmployees)
	Register("titles", "Performance aggregated by job title", buildTitles)
	Register("weekdays", "Average order value by day of week", buildWeekdays)
	Register("sales", "Recent sales transactions", buildSales)
}

func buildOverview(e *analytics.Engine, p Params) ([]Table, error) {
	ov := e.Overview(e.FilterOrders(p.Filter))
	return []Table{{
		Title:   "Overview",
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Orders", itoa(ov.TotalOrders)},
			{"Total Revenue", money(ov.TotalRevenue)},
			{"Total Customers", itoa(ov.TotalCustomers)},
			{"Avg Order Value", money(ov.AvgOrderValue)},
			{"Delivered Orders", itoa(ov.DeliveredOrders)},
			{"Pending Orders", itoa(ov.PendingOrders)},
			{"Top Customer", ov.TopCustomer},
			{"Top Employee", ov.TopEmployee},
		},
	}}, nil
}

func buildTrend(e *analytics.Engine, p Params) ([]Table, error) {
	trend := e.MonthlyRevenueTrend(e.FilterOrders(p.Filter))
	return []Table{periodTable("Monthly Revenue Trend", trend)}, nil
}

func buildTimeSeries(e *analytics.Engine, p Params) ([]Table, error) {
	g := p.Granularity
	if g == "" {
		g = analytics.GranularityMonthly
	}
	series, err := e.TimeSeries(e.FilterOrders(p.Filter), g, p.Year)
	if err != nil {
		return nil, err
	}
	return []Table{periodTable(fmt.Sprintf("Revenue by Period (%s)", g), series)}, nil
}

func periodTable(title string, series []analytics.PeriodRevenue) Table {
	t := Table{Title: title, Columns: []string{"Period", "Revenue", "Orders"}}
	for _, b := range series {
		t.Rows = append(t.Rows, []string{b.Period, money(b.Revenue), itoa(b.Orders)})
	}
	return t
}

func buildTopCustomers(e *analytics.Engine, p Params) ([]Table, error) {
	ranked, err := e.TopCustomersByRevenue(e.FilterOrders(p.Filter), p.TopN)
	if err != nil {
		return nil, err
	}
	return []Table{rankedTable("Top Customers by Revenue", "Customer", ranked)}, nil
}

func buildTopCountries(e *analytics.Engine, p Params) ([]Table, error) {
	ranked, err := e.TopCountriesByRevenue(e.FilterOrders(p.Filter), p.TopN)
	if err != nil {
		return nil, err
	}
	return []Table{rankedTable("Top Countries by Revenue", "Country", ranked)}, nil
}

func rankedTable(title, label string, ranked []analytics.RankedRevenue) Table {
	t := Table{Title: title, Columns: []string{"#", label, "Revenue", "Orders"}}
	for i, r := range ranked {
		t.Rows = append(t.Rows, []string{itoa(i + 1), r.Name, money(r.Revenue), itoa(r.Orders)})
	}
	return t
}

func buildCustomers(e *analytics.Engine, p Params) ([]Table, error) {
	summaries := e.CustomerSummaries(e.FilterOrders(p.Filter), p.Customer)
	if p.MaxRows > 0 && len(summaries) > p.MaxRows {
		summaries = summaries[:p.MaxRows]
	}
	t := Table{
		Title:   "Customer Insights",
		Columns: []string{"Customer", "Country", "Orders", "Total Spent", "Segment"},
	}
	for _, s := range summaries {
		t.Rows = append(t.Rows, []string{
			s.Customer.CompanyName, s.Customer.Country,
			itoa(s.OrderCount), money(s.TotalSpent), string(s.Segment),
		})
	}
	return []Table{t}, nil
}

func buildSegments(e *analytics.Engine, p Params) ([]Table, error) {
	summaries := e.CustomerSummaries(e.FilterOrders(p.Filter), p.Customer)
	b := analytics.SegmentCounts(summaries)
	return []Table{{
		Title:   "Customer Segments",
		Columns: []string{"Segment", "Customers"},
		Rows: [][]string{
			{string(analytics.SegmentLow), itoa(b.Low)},
			{string(analytics.SegmentMedium), itoa(b.Medium)},
			{string(analytics.SegmentHigh), itoa(b.High)},
		},
	}}, nil
}

func buildCountries(e *analytics.Engine, p Params) ([]Table, error) {
	counts := e.CountryCustomerCounts()
	if p.TopN > 0 && len(counts) > p.TopN {
		counts = counts[:p.TopN]
	}
	t := Table{Title: "Customers by Country", Columns: []string{"Country", "Customers"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Country, itoa(c.Customers)})
	}
	return []Table{t}, nil
}

func buildEmployees(e *analytics.Engine, p Params) ([]Table, error) {
	stats, hl := e.EmployeePerformance(e.FilterOrders(p.Filter))
	t := Table{
		Title:   "Employee Performance",
		Columns: []string{"Employee", "Title", "Orders", "Revenue", "Avg Order"},
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, []string{
			s.Employee.FullName(), s.Employee.Title,
			itoa(s.OrderCount), money(s.TotalRevenue), money(s.AvgRevenue),
		})
	}

	highlights := Table{Title: "Standouts", Columns: []string{"Highlight", "Employee", "Value"}}
	if hl.TopByRevenue != nil {
		highlights.Rows = append(highlights.Rows,
			[]string{"Highest Revenue", hl.TopByRevenue.Employee.FullName(), money(hl.TopByRevenue.TotalRevenue)},
			[]string{"Most Orders", hl.TopByOrders.Employee.FullName(), itoa(hl.TopByOrders.OrderCount)},
			[]string{"Best Average", hl.TopByAverage.Employee.FullName(), money(hl.TopByAverage.AvgRevenue)},
		)
	}
	return []Table{t, highlights}, nil
}

func buildTitles(e *analytics.Engine, p Params) ([]Table, error) {
	stats, _ := e.EmployeePerformance(e.FilterOrders(p.Filter))
	byTitle := analytics.PerformanceByTitle(stats)
	t := Table{
		Title:   "Performance by Title",
		Columns: []string{"Title", "Employees", "Total Revenue", "Mean Revenue", "Mean Orders"},
	}
	for _, s := range byTitle {
		t.Rows = append(t.Rows, []string{
			s.Title, itoa(s.Employees), money(s.TotalRevenue),
			money(s.MeanRevenue), s.MeanOrderCount.StringFixed(1),
		})
	}
	return []Table{t}, nil
}

func buildWeekdays(e *analytics.Engine, p Params) ([]Table, error) {
	days := e.DayOfWeekAverages(e.FilterOrders(p.Filter))
	t := Table{
		Title:   "Order Value by Day of Week",
		Columns: []string{"Day", "Avg Order Value", "Total", "Orders"},
	}
	for _, d := range days {
		t.Rows = append(t.Rows, []string{d.Day, money(d.MeanValue), money(d.TotalValue), itoa(d.Orders)})
	}
	return []Table{t}, nil
}

func buildSales(e *analytics.Engine, p Params) ([]Table, error) {
	maxRows := p.MaxRows
	if maxRows <= 0 {
		maxRows = 100
	}
	rows := e.SalesRows(e.FilterOrders(p.Filter), maxRows)
	t := Table{
		Title:   "Sales Transactions",
		Columns: []string{"Order ID", "Date", "Customer", "Country", "Amount", "Freight", "Status"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			itoa(r.OrderID), r.Date.Format("2006-01-02"), r.Customer, r.Country,
			money(r.Amount), money(r.Freight), r.Status,
		})
	}
	return []Table{t}, nil
}
