// Package pricing implements the rental pricing rules: duration derivation
// from the hire/return date pair, per-line totals, subtotal and grand total
// aggregation, and the invoice totals derived from a rental plus tax settings.
// All functions are pure; persistence and notification live elsewhere.
package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lightbill/models"
)

const dateLayout = "2006-01-02"

// ValidationError is a user-correctable booking error. It blocks submission;
// nothing is persisted.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// The only two validation failures: every other missing field silently
// defaults to zero.
var (
	ErrMissingClientName = &ValidationError{
		Reason:  "missing_client_name",
		Message: "Please fill in client name and item details.",
	}
	ErrIncompleteLineItem = &ValidationError{
		Reason:  "incomplete_line_item",
		Message: "Please fill in client name and item details.",
	}
)

// DeriveDuration returns the number of billable days between the hire and
// return dates (yyyy-mm-dd). The absolute difference is used, so a reversed
// range is silently tolerated; a same-day, absent, or unparseable pair counts
// as the 1-day minimum.
func DeriveDuration(doh, dor string) int {
	start, err1 := time.Parse(dateLayout, doh)
	end, err2 := time.Parse(dateLayout, dor)
	if err1 != nil || err2 != nil {
		return 1
	}

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		return 1
	}
	return days
}

// ComputeLineTotal prices one line: quantity * rate * days.
func ComputeLineTotal(qty int, rate float64, nod int) float64 {
	return float64(qty) * rate * float64(nod)
}

// ComputeSubtotal sums the stored line totals in order.
func ComputeSubtotal(items []models.RentalLineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total
	}
	return sum
}

// ComputeGrandTotal adds transport charges to the subtotal. The security
// deposit is refundable and never part of the grand total.
func ComputeGrandTotal(subtotal, transport float64) float64 {
	return subtotal + transport
}

// ParseAmount converts raw form input to a decimal amount, 0 on failure.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCount converts raw form input to a quantity, 0 on failure.
func ParseCount(s string) int {
	return int(ParseAmount(s))
}

// Reprice recomputes every derived figure on the rental from its current
// fields: NOD from the date pair, each line total, the subtotal, and the
// grand total. Called on every form change and again before persistence.
func Reprice(r *models.Rental) {
	r.NOD = DeriveDuration(r.DOH, r.DOR)
	for i := range r.Items {
		r.Items[i].Total = ComputeLineTotal(int(r.Items[i].Qty), float64(r.Items[i].Rate), r.NOD)
	}
	r.Subtotal = ComputeSubtotal(r.Items)
	r.GrandTotal = ComputeGrandTotal(r.Subtotal, float64(r.Transport))
}

// FinalizeBooking validates and prices a draft rental, leaving it ready for
// persistence: status Booked, amount due equal to the grand total. The
// creation timestamp is stamped by the repository, not here.
func FinalizeBooking(r *models.Rental) error {
	if strings.TrimSpace(r.ClientName) == "" {
		return ErrMissingClientName
	}
	for _, it := range r.Items {
		if strings.TrimSpace(it.Name) == "" {
			return ErrIncompleteLineItem
		}
	}

	Reprice(r)
	r.Status = models.RentalStatusBooked
	r.Due = r.GrandTotal
	return nil
}

// InvoiceTotals are the monetary figures of an invoice, recomputed from the
// referenced rental's line items and the invoice's own tax settings. They are
// never stored on the invoice document. TaxableBase is line items plus
// transport; the items-only subtotal lives on the rental.
type InvoiceTotals struct {
	TaxableBase float64 `json:"taxableBase"`
	TaxAmount   float64 `json:"taxAmount"`
	GrandTotal  float64 `json:"grandTotal"`
}

// ComputeInvoiceTotals derives the billing figures for an invoice over a
// rental. The rental's subtotal and transport form the taxable base; tax is
// applied at taxRate percent when enabled. Figures are rounded to 2 decimal
// places.
func ComputeInvoiceTotals(r *models.Rental, includeTax bool, taxRate float64) InvoiceTotals {
	base := ComputeGrandTotal(ComputeSubtotal(r.Items), float64(r.Transport))

	t := InvoiceTotals{TaxableBase: Round2(base)}
	if includeTax {
		t.TaxAmount = Round2(base * taxRate / 100)
	}
	t.GrandTotal = Round2(t.TaxableBase + t.TaxAmount)
	return t
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
