package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lightbill/models"
)

func TestDeriveDuration(t *testing.T) {
	t.Run("Three day range", func(t *testing.T) {
		assert.Equal(t, 3, DeriveDuration("2024-01-01", "2024-01-04"))
	})

	t.Run("Same day counts as one billable day", func(t *testing.T) {
		assert.Equal(t, 1, DeriveDuration("2024-03-15", "2024-03-15"))
	})

	t.Run("Reversed dates use the absolute difference", func(t *testing.T) {
		assert.Equal(t, DeriveDuration("2024-01-04", "2024-01-01"), DeriveDuration("2024-01-01", "2024-01-04"))
		assert.Equal(t, 3, DeriveDuration("2024-01-04", "2024-01-01"))
	})

	t.Run("Missing or invalid dates default to one day", func(t *testing.T) {
		assert.Equal(t, 1, DeriveDuration("", ""))
		assert.Equal(t, 1, DeriveDuration("2024-01-01", ""))
		assert.Equal(t, 1, DeriveDuration("not-a-date", "2024-01-04"))
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		assert.Equal(t, 11, DeriveDuration("2024-01-25", "2024-02-05"))
	})

	t.Run("Cross year boundary", func(t *testing.T) {
		assert.Equal(t, 16, DeriveDuration("2023-12-25", "2024-01-10"))
	})
}

func TestComputeLineTotal(t *testing.T) {
	t.Run("Quantity times rate times days", func(t *testing.T) {
		assert.Equal(t, 3000.0, ComputeLineTotal(2, 500, 3))
		assert.Equal(t, 3000.0, ComputeLineTotal(1, 1000, 3))
	})

	t.Run("Zero quantity or rate contributes nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeLineTotal(0, 500, 3))
		assert.Equal(t, 0.0, ComputeLineTotal(2, 0, 3))
	})

	t.Run("Monotonic in each argument", func(t *testing.T) {
		base := ComputeLineTotal(2, 500, 3)
		assert.GreaterOrEqual(t, ComputeLineTotal(3, 500, 3), base)
		assert.GreaterOrEqual(t, ComputeLineTotal(2, 600, 3), base)
		assert.GreaterOrEqual(t, ComputeLineTotal(2, 500, 4), base)
	})
}

func TestComputeSubtotal(t *testing.T) {
	items := []models.RentalLineItem{
		{Name: "HMI 4K", Qty: 2, Rate: 500, Total: 3000},
		{Name: "LED Panel", Qty: 1, Rate: 1000, Total: 3000},
	}

	t.Run("Sums stored line totals", func(t *testing.T) {
		assert.Equal(t, 6000.0, ComputeSubtotal(items))
	})

	t.Run("Invariant under ordering", func(t *testing.T) {
		reversed := []models.RentalLineItem{items[1], items[0]}
		assert.Equal(t, ComputeSubtotal(items), ComputeSubtotal(reversed))
	})

	t.Run("Empty list is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeSubtotal(nil))
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := ComputeSubtotal(items)
		assert.Equal(t, first, ComputeSubtotal(items))
		assert.Equal(t, first, ComputeSubtotal(items))
	})
}

func TestComputeGrandTotal(t *testing.T) {
	t.Run("Subtotal plus transport", func(t *testing.T) {
		assert.Equal(t, 6200.0, ComputeGrandTotal(6000, 200))
	})

	t.Run("Zero transport", func(t *testing.T) {
		assert.Equal(t, 6000.0, ComputeGrandTotal(6000, 0))
	})
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 250.5, ParseAmount("250.5"))
	assert.Equal(t, 250.5, ParseAmount(" 250.5 "))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 3, ParseCount("3"))
	assert.Equal(t, 0, ParseCount("x"))
}

func TestReprice(t *testing.T) {
	rental := &models.Rental{
		ClientName: "Dream Productions",
		DOH:        "2024-01-01",
		DOR:        "2024-01-04",
		Items: []models.RentalLineItem{
			{Name: "HMI 4K", Qty: 2, Rate: 500},
			{Name: "LED Panel", Qty: 1, Rate: 1000},
		},
		Transport:       200,
		SecurityDeposit: 5000,
	}

	Reprice(rental)

	assert.Equal(t, 3, rental.NOD)
	assert.Equal(t, 3000.0, rental.Items[0].Total)
	assert.Equal(t, 3000.0, rental.Items[1].Total)
	assert.Equal(t, 6000.0, rental.Subtotal)
	assert.Equal(t, 6200.0, rental.GrandTotal)

	t.Run("Security deposit never enters the grand total", func(t *testing.T) {
		withoutDeposit := *rental
		withoutDeposit.SecurityDeposit = 0
		Reprice(&withoutDeposit)
		assert.Equal(t, rental.GrandTotal, withoutDeposit.GrandTotal)
	})

	t.Run("Repricing an unchanged rental is stable", func(t *testing.T) {
		Reprice(rental)
		assert.Equal(t, 6200.0, rental.GrandTotal)
		assert.Equal(t, 6000.0, rental.Subtotal)
	})
}

func TestFinalizeBooking(t *testing.T) {
	valid := func() *models.Rental {
		return &models.Rental{
			ClientName: "Dream Productions",
			DOH:        "2024-01-01",
			DOR:        "2024-01-04",
			Items: []models.RentalLineItem{
				{Name: "HMI 4K", Qty: 2, Rate: 500},
			},
			Transport: 200,
		}
	}

	t.Run("Success sets status and due", func(t *testing.T) {
		rental := valid()
		err := FinalizeBooking(rental)
		assert.NoError(t, err)
		assert.Equal(t, models.RentalStatusBooked, rental.Status)
		assert.Equal(t, rental.GrandTotal, rental.Due)
		assert.Equal(t, 3200.0, rental.GrandTotal)
	})

	t.Run("Missing client name", func(t *testing.T) {
		rental := valid()
		rental.ClientName = "  "
		err := FinalizeBooking(rental)
		assert.ErrorIs(t, err, ErrMissingClientName)
	})

	t.Run("Unnamed line item", func(t *testing.T) {
		rental := valid()
		rental.Items = append(rental.Items, models.RentalLineItem{Qty: 1, Rate: 100})
		err := FinalizeBooking(rental)
		assert.ErrorIs(t, err, ErrIncompleteLineItem)
	})

	t.Run("Missing rate and transport default to zero", func(t *testing.T) {
		rental := valid()
		rental.Items = []models.RentalLineItem{{Name: "Stand", Qty: 4}}
		rental.Transport = 0
		err := FinalizeBooking(rental)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, rental.GrandTotal)
	})
}

func TestComputeInvoiceTotals(t *testing.T) {
	rental := &models.Rental{
		Items: []models.RentalLineItem{
			{Name: "HMI 4K", Total: 3000},
			{Name: "LED Panel", Total: 3000},
		},
		Transport: 200,
	}

	t.Run("Without tax", func(t *testing.T) {
		totals := ComputeInvoiceTotals(rental, false, 18)
		assert.Equal(t, 6200.0, totals.TaxableBase)
		assert.Equal(t, 0.0, totals.TaxAmount)
		assert.Equal(t, 6200.0, totals.GrandTotal)
	})

	t.Run("With tax", func(t *testing.T) {
		totals := ComputeInvoiceTotals(rental, true, 18)
		assert.Equal(t, 6200.0, totals.TaxableBase)
		assert.Equal(t, 1116.0, totals.TaxAmount)
		assert.Equal(t, 7316.0, totals.GrandTotal)
	})

	t.Run("Taxable base includes transport and stays consistent with the render split", func(t *testing.T) {
		totals := ComputeInvoiceTotals(rental, true, 18)
		items := Round2(ComputeSubtotal(rental.Items))
		assert.Equal(t, totals.TaxableBase, Round2(items+float64(rental.Transport)))
		assert.Equal(t, totals.GrandTotal, Round2(items+float64(rental.Transport)+totals.TaxAmount))
	})

	t.Run("Tax rounds to two decimals", func(t *testing.T) {
		r := &models.Rental{Items: []models.RentalLineItem{{Name: "Cable", Total: 99.99}}}
		totals := ComputeInvoiceTotals(r, true, 18)
		assert.Equal(t, 18.0, totals.TaxAmount)
		assert.Equal(t, 117.99, totals.GrandTotal)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.555))
	assert.Equal(t, 10.0, Round2(10))
}
