package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lightbill/models"
)

func inv(rentalID, date string, amount float64) *models.Invoice {
	return &models.Invoice{RentalID: rentalID, InvoiceDate: date, Amount: models.FlexFloat(amount)}
}

func TestFilterInvoicesByDate(t *testing.T) {
	invoices := []*models.Invoice{
		inv("r1", "2024-01-10", 100),
		inv("r2", "2024-01-31", 200),
		inv("r3", "2024-02-15", 300),
		inv("r4", "2024-03-01", 400),
	}

	t.Run("End date is inclusive of its whole day", func(t *testing.T) {
		got := FilterInvoicesByDate(invoices, "2024-01-01", "2024-01-31")
		assert.Len(t, got, 2)
	})

	t.Run("Start date inclusive", func(t *testing.T) {
		got := FilterInvoicesByDate(invoices, "2024-01-10", "2024-02-15")
		assert.Len(t, got, 3)
	})

	t.Run("Invalid bounds leave the window open", func(t *testing.T) {
		got := FilterInvoicesByDate(invoices, "", "")
		assert.Len(t, got, 4)
	})
}

func TestAggregateRevenue(t *testing.T) {
	invoices := []*models.Invoice{
		inv("r1", "2024-01-10", 100),
		inv("r2", "2024-01-31", 200),
		inv("r3", "2024-02-15", 300),
	}

	t.Run("Three invoices across two months sum to 600", func(t *testing.T) {
		filtered := FilterInvoicesByDate(invoices, "2024-01-01", "2024-02-28")
		assert.Equal(t, 600.0, AggregateRevenue(filtered))
	})

	t.Run("Empty set", func(t *testing.T) {
		assert.Equal(t, 0.0, AggregateRevenue(nil))
	})
}

func TestGroupByStatus(t *testing.T) {
	rentals := []*models.Rental{
		{Status: models.RentalStatusActive},
		{Status: models.RentalStatusActive},
		{Status: models.RentalStatusReturned},
		{Status: models.RentalStatusBooked},
	}
	counts := GroupByStatus(rentals)
	assert.Equal(t, 2, counts[models.RentalStatusActive])
	assert.Equal(t, 1, counts[models.RentalStatusReturned])
	assert.Equal(t, 1, counts[models.RentalStatusBooked])
}

func TestGroupClientRevenue(t *testing.T) {
	rentals := []*models.Rental{
		{ID: "r1", ClientName: "Dream Productions"},
		{ID: "r2", ClientName: "Dream Productions"},
		{ID: "r3", ClientName: "Sunrise Films"},
		{ID: "r4", ClientName: "Moonlight Studio"},
	}

	t.Run("Single client ranked first with combined revenue", func(t *testing.T) {
		invoices := []*models.Invoice{
			inv("r1", "2024-01-10", 100),
			inv("r1", "2024-01-20", 200),
			inv("r2", "2024-02-05", 300),
		}
		rows := GroupClientRevenue(invoices, rentals, nil, 10)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Dream Productions", rows[0].Name)
		assert.Equal(t, 600.0, rows[0].Revenue)
	})

	t.Run("Descending with stable ties", func(t *testing.T) {
		invoices := []*models.Invoice{
			inv("r3", "2024-01-10", 500), // Sunrise first seen
			inv("r4", "2024-01-11", 500), // Moonlight ties
			inv("r1", "2024-01-12", 900),
		}
		rows := GroupClientRevenue(invoices, rentals, nil, 10)
		assert.Equal(t, "Dream Productions", rows[0].Name)
		assert.Equal(t, "Sunrise Films", rows[1].Name)
		assert.Equal(t, "Moonlight Studio", rows[2].Name)
	})

	t.Run("Truncates to topN", func(t *testing.T) {
		invoices := []*models.Invoice{
			inv("r1", "2024-01-10", 300),
			inv("r3", "2024-01-10", 200),
			inv("r4", "2024-01-10", 100),
		}
		rows := GroupClientRevenue(invoices, rentals, nil, 2)
		assert.Len(t, rows, 2)
	})

	t.Run("Invoice without matching rental reports Unknown", func(t *testing.T) {
		rows := GroupClientRevenue([]*models.Invoice{inv("missing", "2024-01-10", 50)}, rentals, nil, 5)
		assert.Equal(t, "Unknown", rows[0].Name)
	})
}

func TestComputeDurationStats(t *testing.T) {
	t.Run("Average longest shortest", func(t *testing.T) {
		rentals := []*models.Rental{
			{DOH: "2024-01-01", DOR: "2024-01-04"}, // 3
			{DOH: "2024-01-01", DOR: "2024-01-08"}, // 7
			{DOH: "2024-01-01", DOR: "2024-01-03"}, // 2
		}
		stats := ComputeDurationStats(rentals)
		assert.Equal(t, 4.0, stats.Average)
		assert.Equal(t, 7, stats.Longest)
		assert.Equal(t, 2, stats.Shortest)
	})

	t.Run("Non-positive durations excluded", func(t *testing.T) {
		rentals := []*models.Rental{
			{DOH: "2024-01-05", DOR: "2024-01-01"}, // inverted, excluded here
			{DOH: "2024-01-01", DOR: "2024-01-01"}, // zero, excluded
			{DOH: "2024-01-01", DOR: "2024-01-06"}, // 5
		}
		stats := ComputeDurationStats(rentals)
		assert.Equal(t, 5.0, stats.Average)
		assert.Equal(t, 5, stats.Longest)
		assert.Equal(t, 5, stats.Shortest)
	})

	t.Run("Empty pool reports zeros", func(t *testing.T) {
		stats := ComputeDurationStats([]*models.Rental{{DOH: "2024-01-02", DOR: "2024-01-01"}})
		assert.Equal(t, DurationStats{}, stats)
	})
}

func TestMonthlyRevenueBuckets(t *testing.T) {
	invoices := []*models.Invoice{
		inv("r1", "2024-01-10", 100),
		inv("r1", "2024-01-20", 50),
		inv("r1", "2024-02-15", 300),
	}
	buckets := MonthlyRevenueBuckets(invoices, 6)
	assert.Equal(t, []MonthRevenue{
		{Month: "2024-01", Revenue: 150},
		{Month: "2024-02", Revenue: 300},
	}, buckets)
}

func TestTopClientsByRentals(t *testing.T) {
	rentals := []*models.Rental{
		{ClientName: "A"}, {ClientName: "B"}, {ClientName: "B"},
		{ClientName: "C"}, {ClientName: "C"}, {ClientName: "C"},
	}
	rows := TopClientsByRentals(rentals, 2)
	assert.Equal(t, []ClientRentals{
		{ClientName: "C", RentalCount: 3},
		{ClientName: "B", RentalCount: 2},
	}, rows)
}

func TestBuildSummary(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	rentals := []*models.Rental{
		{ID: "r1", ClientName: "Dream Productions", Status: models.RentalStatusActive, DOH: "2024-01-01", DOR: "2024-01-04", CreatedAt: now},
		{ID: "r2", ClientName: "Sunrise Films", Status: models.RentalStatusReturned, DOH: "2024-01-10", DOR: "2024-01-17", CreatedAt: now},
	}
	invoices := []*models.Invoice{
		inv("r1", "2024-01-10", 100),
		inv("r1", "2024-02-05", 200),
		inv("r2", "2024-02-20", 300),
	}
	clients := []*models.Client{{Name: "Dream Productions"}, {Name: "Sunrise Films"}}

	summary := BuildSummary(rentals, invoices, clients, nil, "2024-01-01", "2024-02-28")

	assert.Equal(t, 600.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalRentals)
	assert.Equal(t, 1, summary.ActiveRentals)
	assert.Equal(t, 2, summary.TotalClients)
	assert.Equal(t, "Dream Productions", summary.ClientRevenue[0].Name)
	assert.Equal(t, 300.0, summary.ClientRevenue[0].Revenue)
	assert.Equal(t, 7, summary.RentalDuration.Longest)
	assert.Equal(t, 3, summary.RentalDuration.Shortest)
}
