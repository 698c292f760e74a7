// Package reports computes read-only summaries over a bounded time window.
// It never mutates the source entities; every figure is recomputed on demand.
package reports

import (
	"sort"
	"time"

	"lightbill/models"
	"lightbill/pricing"
)

const dateLayout = "2006-01-02"

// ClientRevenue is one row of the per-client revenue ranking.
type ClientRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// ClientRentals is one row of the rental-count ranking.
type ClientRentals struct {
	ClientName  string `json:"clientName"`
	RentalCount int    `json:"rentalCount"`
}

// MonthRevenue is one monthly revenue bucket.
type MonthRevenue struct {
	Month   string  `json:"month"` // yyyy-mm
	Revenue float64 `json:"revenue"`
}

// DurationStats summarises rental durations in days.
type DurationStats struct {
	Average  float64 `json:"average"`
	Longest  int     `json:"longest"`
	Shortest int     `json:"shortest"`
}

// Summary is the full report payload. Ephemeral; recomputed per request.
type Summary struct {
	TotalRevenue       float64          `json:"totalRevenue"`
	TotalRentals       int              `json:"totalRentals"`
	ActiveRentals      int              `json:"activeRentals"`
	CompletedRentals   int              `json:"completedRentals"`
	PendingRentals     int              `json:"pendingRentals"`
	AverageRentalValue float64          `json:"averageRentalValue"`
	TotalClients       int              `json:"totalClients"`
	TotalCompanies     int              `json:"totalCompanies"`
	MonthlyRevenue     []MonthRevenue   `json:"monthlyRevenue"`
	RentalsByStatus    map[string]int   `json:"rentalsByStatus"`
	PaymentStatus      map[string]int   `json:"paymentStatus"`
	ClientRevenue      []ClientRevenue  `json:"clientRevenue"`
	TopClients         []ClientRentals  `json:"topClients"`
	RentalDuration     DurationStats    `json:"rentalDuration"`
}

// window converts a start/end date pair into a [start, end+1d) interval so
// that a timestamp anywhere within the end day still counts. An unparseable
// bound leaves that side of the window open.
func window(startDate, endDate string) (time.Time, time.Time, bool, bool) {
	start, err1 := time.Parse(dateLayout, startDate)
	end, err2 := time.Parse(dateLayout, endDate)
	return start, end.Add(24 * time.Hour), err1 == nil, err2 == nil
}

func inWindow(t time.Time, start, end time.Time, hasStart, hasEnd bool) bool {
	if hasStart && t.Before(start) {
		return false
	}
	if hasEnd && !t.Before(end) {
		return false
	}
	return true
}

// FilterInvoicesByDate keeps invoices whose invoice date falls in the window,
// inclusive of both bounds' full calendar days.
func FilterInvoicesByDate(invoices []*models.Invoice, startDate, endDate string) []*models.Invoice {
	start, end, hasStart, hasEnd := window(startDate, endDate)
	var out []*models.Invoice
	for _, inv := range invoices {
		t, err := time.Parse(dateLayout, inv.InvoiceDate)
		if err != nil {
			continue
		}
		if inWindow(t, start, end, hasStart, hasEnd) {
			out = append(out, inv)
		}
	}
	return out
}

// FilterRentalsByDate keeps rentals whose creation time (falling back to the
// hire date) lies in the window.
func FilterRentalsByDate(rentals []*models.Rental, startDate, endDate string) []*models.Rental {
	start, end, hasStart, hasEnd := window(startDate, endDate)
	var out []*models.Rental
	for _, r := range rentals {
		t := r.CreatedAt
		if t.IsZero() {
			parsed, err := time.Parse(dateLayout, r.DOH)
			if err != nil {
				continue
			}
			t = parsed
		}
		if inWindow(t, start, end, hasStart, hasEnd) {
			out = append(out, r)
		}
	}
	return out
}

// AggregateRevenue sums each invoice's resolved amount. It does not re-derive
// figures from line items on this path.
func AggregateRevenue(invoices []*models.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		sum += float64(inv.Amount)
	}
	return pricing.Round2(sum)
}

// GroupByStatus counts rentals per status.
func GroupByStatus(rentals []*models.Rental) map[string]int {
	byStatus := make(map[string]int)
	for _, r := range rentals {
		byStatus[r.Status]++
	}
	return byStatus
}

// GroupClientRevenue ranks clients by invoice revenue, descending, truncated
// to topN. Ties keep the order in which a client's first invoice appeared.
// Invoices are attributed through their rental's client name; resolveName
// maps that name to a display name, and invoices whose rental cannot be
// found report as "Unknown".
func GroupClientRevenue(invoices []*models.Invoice, rentals []*models.Rental, resolveName func(clientName string) string, topN int) []ClientRevenue {
	revenue := make(map[string]float64)
	var order []string
	for _, inv := range invoices {
		key := clientKeyFor(inv, rentals)
		if _, seen := revenue[key]; !seen {
			order = append(order, key)
		}
		revenue[key] += float64(inv.Amount)
	}

	rows := make([]ClientRevenue, 0, len(order))
	for _, key := range order {
		name := key
		if resolveName != nil {
			name = resolveName(key)
		}
		rows = append(rows, ClientRevenue{Name: name, Revenue: pricing.Round2(revenue[key])})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// clientKeyFor attributes an invoice to a client through its rental.
func clientKeyFor(inv *models.Invoice, rentals []*models.Rental) string {
	for _, r := range rentals {
		if r.ID == inv.RentalID {
			return r.ClientName
		}
	}
	return "Unknown"
}

// TopClientsByRentals ranks clients by number of rentals, descending, stable
// on ties, truncated to topN.
func TopClientsByRentals(rentals []*models.Rental, topN int) []ClientRentals {
	counts := make(map[string]int)
	var order []string
	for _, r := range rentals {
		if _, seen := counts[r.ClientName]; !seen {
			order = append(order, r.ClientName)
		}
		counts[r.ClientName]++
	}

	rows := make([]ClientRentals, 0, len(order))
	for _, name := range order {
		rows = append(rows, ClientRentals{ClientName: name, RentalCount: counts[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].RentalCount > rows[j].RentalCount })
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// ComputeDurationStats reports average, longest, and shortest rental duration
// in days over (dor - doh). Non-positive or unparseable durations are
// excluded; an empty pool reports zeros.
func ComputeDurationStats(rentals []*models.Rental) DurationStats {
	var durations []int
	for _, r := range rentals {
		start, err1 := time.Parse(dateLayout, r.DOH)
		end, err2 := time.Parse(dateLayout, r.DOR)
		if err1 != nil || err2 != nil {
			continue
		}
		d := int(end.Sub(start).Hours() / 24)
		if d > 0 {
			durations = append(durations, d)
		}
	}

	if len(durations) == 0 {
		return DurationStats{}
	}

	stats := DurationStats{Longest: durations[0], Shortest: durations[0]}
	var sum int
	for _, d := range durations {
		sum += d
		if d > stats.Longest {
			stats.Longest = d
		}
		if d < stats.Shortest {
			stats.Shortest = d
		}
	}
	stats.Average = pricing.Round2(float64(sum) / float64(len(durations)))
	return stats
}

// MonthlyRevenueBuckets groups invoice revenue by calendar month (yyyy-mm),
// sorted ascending, keeping only the most recent `keep` buckets.
func MonthlyRevenueBuckets(invoices []*models.Invoice, keep int) []MonthRevenue {
	byMonth := make(map[string]float64)
	for _, inv := range invoices {
		t, err := time.Parse(dateLayout, inv.InvoiceDate)
		if err != nil {
			continue
		}
		byMonth[t.Format("2006-01")] += float64(inv.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	if keep > 0 && len(months) > keep {
		months = months[len(months)-keep:]
	}

	out := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, MonthRevenue{Month: m, Revenue: pricing.Round2(byMonth[m])})
	}
	return out
}

// PaymentStatusCounts counts invoices per payment status; a blank status
// counts as Unpaid.
func PaymentStatusCounts(invoices []*models.Invoice) map[string]int {
	counts := make(map[string]int)
	for _, inv := range invoices {
		status := inv.PaymentStatus
		if status == "" {
			status = models.InvoiceUnpaid
		}
		counts[status]++
	}
	return counts
}

// BuildSummary assembles the full report over the date window. Status
// distributions and duration stats are computed over all rentals, matching
// the dashboards; revenue figures honor the window.
func BuildSummary(rentals []*models.Rental, invoices []*models.Invoice, clients []*models.Client, companies []*models.Company, startDate, endDate string) *Summary {
	windowInvoices := FilterInvoicesByDate(invoices, startDate, endDate)
	windowRentals := FilterRentalsByDate(rentals, startDate, endDate)

	totalRevenue := AggregateRevenue(windowInvoices)
	byStatus := GroupByStatus(rentals)

	avgValue := 0.0
	if len(windowRentals) > 0 {
		avgValue = pricing.Round2(totalRevenue / float64(len(windowRentals)))
	}

	var completed int
	for _, r := range windowRentals {
		if r.Status == models.RentalStatusReturned {
			completed++
		}
	}

	resolve := func(name string) string {
		for _, c := range clients {
			if c.Name == name {
				return c.Name
			}
		}
		return name
	}

	return &Summary{
		TotalRevenue:       totalRevenue,
		TotalRentals:       len(windowRentals),
		ActiveRentals:      byStatus[models.RentalStatusActive],
		CompletedRentals:   completed,
		PendingRentals:     byStatus[models.RentalStatusBooked],
		AverageRentalValue: avgValue,
		TotalClients:       len(clients),
		TotalCompanies:     len(companies),
		MonthlyRevenue:     MonthlyRevenueBuckets(invoices, 6),
		RentalsByStatus:    byStatus,
		PaymentStatus:      PaymentStatusCounts(invoices),
		ClientRevenue:      GroupClientRevenue(windowInvoices, rentals, resolve, 10),
		TopClients:         TopClientsByRentals(rentals, 5),
		RentalDuration:     ComputeDurationStats(rentals),
	}
}
