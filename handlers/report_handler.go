package handlers

import (
	"net/http"

	"lightbill/reports"
	"lightbill/repository"
)

// ReportHandler serves the dashboard summary. Every figure is recomputed
// from the stored entities on each request; nothing is cached or persisted.
type ReportHandler struct {
	RentalRepo  repository.RentalRepository
	InvoiceRepo repository.InvoiceRepository
	ClientRepo  repository.ClientRepository
	CompanyRepo repository.CompanyRepository
}

// GetSummary handles GET /reports?start_date=yyyy-mm-dd&end_date=yyyy-mm-dd.
// Missing or malformed bounds leave that side of the window open.
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	rentals, err := h.RentalRepo.GetRentals(nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch rentals: " + err.Error(),
		})
		return
	}
	invoices, err := h.InvoiceRepo.GetInvoices(nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch invoices: " + err.Error(),
		})
		return
	}
	clients, err := h.ClientRepo.GetClients(nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch clients: " + err.Error(),
		})
		return
	}
	companies, err := h.CompanyRepo.GetCompanies(nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch companies: " + err.Error(),
		})
		return
	}

	summary := reports.BuildSummary(rentals, invoices, clients, companies, startDate, endDate)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Report generated successfully",
		Data:    summary,
	})
}
