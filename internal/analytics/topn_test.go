package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/dwdash/dwdash/internal/warehouse"
)

func TestTopCustomersByRevenue(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 2, 1, day(2023, time.January, 6), "500.00", true),
		ord(3, 3, 1, day(2023, time.January, 7), "200.00", true),
		ord(4, 1, 1, day(2023, time.January, 8), "150.00", true),
		ord(5, 99, 1, day(2023, time.January, 9), "9000.00", true),
	}
	e := New(testSnapshot(orders))

	got, err := e.TopCustomersByRevenue(orders, 2)
	if err != nil {
		t.Fatalf("TopCustomersByRevenue: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	// The unresolvable key 99 never appears, despite the largest total.
	if got[0].Name != "Bergson Foods" || !got[0].Revenue.Equal(dec("500.00")) {
		t.Errorf("rank 1 = %+v, want Bergson Foods 500.00", got[0])
	}
	if got[1].Name != "Alpine Trading" || got[1].Orders != 2 {
		t.Errorf("rank 2 = %+v, want Alpine Trading with 2 orders", got[1])
	}
}

func TestTopCustomersTieKeepsFirstSeen(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 3, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 1, 1, day(2023, time.January, 6), "100.00", true),
		ord(3, 2, 1, day(2023, time.January, 7), "100.00", true),
	}
	e := New(testSnapshot(orders))

	got, err := e.TopCustomersByRevenue(orders, 3)
	if err != nil {
		t.Fatalf("TopCustomersByRevenue: %v", err)
	}
	wantNames := []string{"Chop Suey Co", "Alpine Trading", "Bergson Foods"}
	for i, w := range wantNames {
		if got[i].Name != w {
			t.Errorf("rank %d = %q, want %q", i+1, got[i].Name, w)
		}
	}
}

func TestTopCustomersInvalidLimit(t *testing.T) {
	e := New(testSnapshot(nil))
	if _, err := e.TopCustomersByRevenue(nil, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTopCountriesByRevenue(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 2, 1, day(2023, time.January, 6), "500.00", true),
		ord(3, 3, 1, day(2023, time.January, 7), "600.00", true),
	}
	e := New(testSnapshot(orders))

	got, err := e.TopCountriesByRevenue(orders, 10)
	if err != nil {
		t.Fatalf("TopCountriesByRevenue: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d countries, want 2", len(got))
	}
	if got[0].Name != "Germany" || !got[0].Revenue.Equal(dec("700.00")) {
		t.Errorf("rank 1 = %+v, want Germany 700.00", got[0])
	}
	if got[1].Name != "Sweden" {
		t.Errorf("rank 2 = %+v, want Sweden", got[1])
	}
}

func TestSalesRows(t *testing.T) {
	orders := []warehouse.Order{
		ord(1, 1, 1, day(2023, time.January, 5), "100.00", true),
		ord(2, 99, 1, day(2023, time.January, 6), "200.00", false),
		ord(3, 2, 1, day(2023, time.January, 7), "300.00", true),
	}
	e := New(testSnapshot(orders))

	rows := e.SalesRows(orders, 2)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Customer != "Alpine Trading" || rows[0].Status != "Delivered" {
		t.Errorf("row 0 = %+v, want Alpine Trading / Delivered", rows[0])
	}
	if rows[1].Customer != "Unknown" || rows[1].Country != "Unknown" {
		t.Errorf("row 1 = %+v, want Unknown customer and country", rows[1])
	}
	if rows[1].Status != "Pending" {
		t.Errorf("row 1 status = %q, want Pending", rows[1].Status)
	}
}
