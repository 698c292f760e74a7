package repository

import (
	"time"

	"lightbill/models"
)

type InvoiceRepository interface {
	CreateInvoice(invoice *models.Invoice) error
	GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error)
	GetInvoiceByID(id string) (*models.Invoice, error)
	UpdateInvoice(id string, invoice *models.Invoice) error
	UpdatePDFInfo(id string, createdAt time.Time, url string) error
	DeleteInvoice(id string) error
}
