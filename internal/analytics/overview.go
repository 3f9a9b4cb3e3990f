package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// Overview holds the headline metrics shown at the top of the dashboard.
type Overview struct {
	TotalOrders    int
	TotalRevenue   decimal.Decimal
	TotalCustomers int
	AvgOrderValue  decimal.Decimal

	DeliveredOrders int
	PendingOrders   int

	// TopCustomer and TopEmployee are "N/A" when no order resolves to a
	// named customer or employee.
	TopCustomer string
	TopEmployee string
}

// Overview computes the headline metrics for the given orders.
// TotalCustomers counts distinct customer accounts in the dimension, not
// customers present in the order subset.
func (e *Engine) Overview(orders []warehouse.Order) Overview {
	ov := Overview{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
		TopCustomer:  "N/A",
		TopEmployee:  "N/A",
	}

	for _, o := range orders {
		ov.TotalRevenue = ov.TotalRevenue.Add(o.TotalAmount)
		if o.IsDelivered {
			ov.DeliveredOrders++
		} else {
			ov.PendingOrders++
		}
	}
	ov.AvgOrderValue = meanOf(ov.TotalRevenue, len(orders))

	ids := make(map[string]struct{}, len(e.snap.Customers))
	for _, c := range e.snap.Customers {
		ids[c.CustomerID] = struct{}{}
	}
	ov.TotalCustomers = len(ids)

	if name, ok := e.topByRevenue(orders, func(o warehouse.Order) int { return o.CustomerKey }, e.customerName); ok {
		ov.TopCustomer = name
	}
	if name, ok := e.topByRevenue(orders, func(o warehouse.Order) int { return o.EmployeeKey }, e.employeeName); ok {
		ov.TopEmployee = name
	}
	return ov
}

func (e *Engine) customerName(key int) (string, bool) {
	c, ok := e.snap.CustomerByKey(key)
	if !ok {
		return "", false
	}
	return c.CompanyName, true
}

func (e *Engine) employeeName(key int) (string, bool) {
	emp, ok := e.snap.EmployeeByKey(key)
	if !ok {
		return "", false
	}
	return emp.FullName(), true
}

// topByRevenue finds the resolvable group with the highest revenue.
// Ties keep the group first encountered in the order stream. Groups
// whose key does not resolve to a name are skipped.
func (e *Engine) topByRevenue(orders []warehouse.Order, key func(warehouse.Order) int, resolve func(int) (string, bool)) (string, bool) {
	aggs, seen := aggregateByKey(orders, key)
	best := ""
	var bestTotal decimal.Decimal
	found := false
	for _, k := range seen {
		name, ok := resolve(k)
		if !ok {
			continue
		}
		if !found || aggs[k].total.GreaterThan(bestTotal) {
			best = name
			bestTotal = aggs[k].total
			found = true
		}
	}
	return best, found
}
