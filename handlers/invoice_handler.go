package handlers

import (
	"encoding/json"
	"net/http"

	"lightbill/logger"
	"lightbill/models"
	"lightbill/pricing"
	"lightbill/repository"
	"lightbill/utils"
)

type InvoiceHandler struct {
	Repo    repository.InvoiceRepository
	PDFRepo *repository.PDFRepository

	// DeletePDF removes the archived PDF from object storage when an invoice
	// is deleted. Optional; failures are logged and never block the delete.
	DeletePDF func(fileURL string) error
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if invoice.InvoiceNumber == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invoice number is required",
		})
		return
	}

	if err := h.Repo.CreateInvoice(&invoice); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create invoice: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Invoice created successfully",
		Data:    invoice,
	})
}

func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	invoices, err := h.Repo.GetInvoices(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch invoices: " + err.Error(),
		})
		return
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoices fetched successfully",
		Data:    invoices,
	})
}

// invoiceWithTotals pairs the stored document with figures recomputed from
// the rental it bills.
type invoiceWithTotals struct {
	*models.Invoice
	Totals *pricing.InvoiceTotals `json:"totals,omitempty"`
}

// GetInvoiceByID returns the invoice along with its recomputed totals; the
// stored document never carries monetary figures beyond the resolved amount.
func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request, id string) {
	invoice, err := h.Repo.GetInvoiceByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch invoice: " + err.Error(),
		})
		return
	}
	if invoice == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Invoice not found",
		})
		return
	}

	out := invoiceWithTotals{Invoice: invoice}
	if h.PDFRepo != nil && invoice.RentalID != "" {
		if rental, err := h.PDFRepo.RentalRepo.GetRentalByID(invoice.RentalID); err == nil && rental != nil {
			totals := pricing.ComputeInvoiceTotals(rental, invoice.IncludeTax, float64(invoice.TaxRate))
			out.Totals = &totals
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoice fetched successfully",
		Data:    out,
	})
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request, id string) {
	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.UpdateInvoice(id, &invoice); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update invoice: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoice updated successfully",
		Data:    invoice,
	})
}

// DeleteInvoice removes the invoice and, best-effort, its archived PDF.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request, id string) {
	pdfURL := ""
	if invoice, err := h.Repo.GetInvoiceByID(id); err == nil && invoice != nil {
		pdfURL = invoice.PdfURL
	}

	if err := h.Repo.DeleteInvoice(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete invoice: " + err.Error(),
		})
		return
	}

	if pdfURL != "" && h.DeletePDF != nil {
		if err := h.DeletePDF(pdfURL); err != nil {
			logger.Warn("failed to delete archived pdf", "invoice_id", id, "url", pdfURL, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoice deleted successfully",
	})
}

// InvoiceHTML serves the printable invoice page, the same markup the PDF
// path feeds to headless Chrome.
func (h *InvoiceHandler) InvoiceHTML(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing invoice id", http.StatusBadRequest)
		return
	}

	bundle, err := h.PDFRepo.GetInvoiceBundle(id)
	if err != nil {
		http.Error(w, "failed to load invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if bundle == nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	html, err := utils.RenderInvoiceHTML(utils.BuildInvoiceData(bundle))
	if err != nil {
		http.Error(w, "failed to render invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
