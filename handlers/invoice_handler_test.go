package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbill/models"
	"lightbill/repository"
)

type fakeInvoiceRepo struct {
	repository.InvoiceRepository
	invoice *models.Invoice
	deleted []string
}

func (f *fakeInvoiceRepo) GetInvoiceByID(id string) (*models.Invoice, error) {
	if f.invoice != nil && f.invoice.ID == id {
		return f.invoice, nil
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) DeleteInvoice(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func deleteInvoice(t *testing.T, h *InvoiceHandler, id string) (*httptest.ResponseRecorder, ApiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/invoices/"+id, nil)
	rec := httptest.NewRecorder()
	h.DeleteInvoice(rec, req, id)

	var resp ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("removes the archived pdf alongside the invoice", func(t *testing.T) {
		repo := &fakeInvoiceRepo{invoice: &models.Invoice{
			ID:     "inv1",
			PdfURL: "https://cdn.example.com/invoice_inv1.pdf",
		}}
		var deletedURLs []string
		h := &InvoiceHandler{
			Repo: repo,
			DeletePDF: func(url string) error {
				deletedURLs = append(deletedURLs, url)
				return nil
			},
		}

		rec, resp := deleteInvoice(t, h, "inv1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"inv1"}, repo.deleted)
		assert.Equal(t, []string{"https://cdn.example.com/invoice_inv1.pdf"}, deletedURLs)
	})

	t.Run("skips object storage when no pdf was archived", func(t *testing.T) {
		repo := &fakeInvoiceRepo{invoice: &models.Invoice{ID: "inv2"}}
		called := false
		h := &InvoiceHandler{
			Repo: repo,
			DeletePDF: func(url string) error {
				called = true
				return nil
			},
		}

		rec, _ := deleteInvoice(t, h, "inv2")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"inv2"}, repo.deleted)
		assert.False(t, called)
	})

	t.Run("pdf cleanup failure never blocks the delete", func(t *testing.T) {
		repo := &fakeInvoiceRepo{invoice: &models.Invoice{
			ID:     "inv3",
			PdfURL: "https://cdn.example.com/invoice_inv3.pdf",
		}}
		h := &InvoiceHandler{
			Repo:      repo,
			DeletePDF: func(url string) error { return errors.New("bucket unreachable") },
		}

		rec, resp := deleteInvoice(t, h, "inv3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"inv3"}, repo.deleted)
	})
}
