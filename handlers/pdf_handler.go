package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lightbill/logger"
	"lightbill/repository"
	"lightbill/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

// InvoicePDF generates the invoice PDF, saves a local copy, uploads it to R2,
// and records the PDF metadata on the invoice. Upload and metadata update are
// best-effort; the local file is the source of truth for the response.
func (h *PDFHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	invoiceID := r.URL.Query().Get("id")
	if invoiceID == "" {
		http.Error(w, "missing invoice id", http.StatusBadRequest)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateInvoicePDF(h.Repo, invoiceID)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfBytes) == 0 {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("invoice_%s_%d.pdf", invoiceID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fileURL := ""
	if url, err := utils.UploadToR2(pdfBytes, filename); err != nil {
		logger.Warn("R2 upload failed", "invoice_id", invoiceID, "error", err)
	} else {
		fileURL = url
	}

	if err := h.Repo.InvoiceRepo.UpdatePDFInfo(invoiceID, time.Now(), fileURL); err != nil {
		logger.Warn("failed to record pdf metadata", "invoice_id", invoiceID, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fmt.Sprintf(`{"success":true,"file":"%s","url":"%s"}`, filename, fileURL)))
}
