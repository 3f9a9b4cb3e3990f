package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwdash/dwdash/internal/warehouse"
)

// SalesRow is one line of the recent sales table. Customer fields fall
// back to "Unknown" when the customer key does not resolve.
type SalesRow struct {
	OrderID  int
	Date     time.Time
	Customer string
	Country  string
	Amount   decimal.Decimal
	Freight  decimal.Decimal
	Status   string
}

// SalesRows renders the first maxRows orders as display rows. The
// caller applies filtering first; this keeps the filtered order.
func (e *Engine) SalesRows(orders []warehouse.Order, maxRows int) []SalesRow {
	if maxRows > 0 && len(orders) > maxRows {
		orders = orders[:maxRows]
	}
	out := make([]SalesRow, 0, len(orders))
	for _, o := range orders {
		row := SalesRow{
			OrderID:  o.OrderID,
			Date:     o.OrderDate,
			Customer: "Unknown",
			Country:  "Unknown",
			Amount:   o.TotalAmount,
			Freight:  o.Freight,
			Status:   "Pending",
		}
		if c, ok := e.snap.CustomerByKey(o.CustomerKey); ok {
			row.Customer = c.CompanyName
			if c.Country != "" {
				row.Country = c.Country
			}
		}
		if o.IsDelivered {
			row.Status = "Delivered"
		}
		out = append(out, row)
	}
	return out
}
