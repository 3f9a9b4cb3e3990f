package warehouse

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateDim is one row of the date dimension.
type DateDim struct {
	DateKey   int
	Date      time.Time
	Year      int
	Quarter   int
	Month     int
	Day       int
	MonthName string
	DayOfWeek string
	IsWeekend bool
}

// Customer is one row of the customer dimension.
type Customer struct {
	CustomerKey int
	CustomerID  string
	CompanyName string
	ContactName string
	City        string
	Country     string
}

// Employee is one row of the employee dimension.
type Employee struct {
	EmployeeKey int
	EmployeeID  int
	FirstName   string
	LastName    string
	Title       string
	Country     string
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Order is one row of the fact table. Monetary values use decimal
// arithmetic so repeated summation stays exact.
type Order struct {
	OrderID      int
	CustomerKey  int
	EmployeeKey  int
	OrderDateKey int
	OrderDate    time.Time
	Freight      decimal.Decimal
	TotalAmount  decimal.Decimal
	IsDelivered  bool
}
