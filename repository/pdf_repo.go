package repository

import (
	"lightbill/models"
)

// PDFRepository gathers everything the invoice renderers need from the
// individual repositories.
type PDFRepository struct {
	InvoiceRepo  InvoiceRepository
	RentalRepo   RentalRepository
	ClientRepo   ClientRepository
	CompanyRepo  CompanyRepository
	SettingsRepo SettingsRepository
}

// InvoiceBundle is a fully resolved invoice: the document plus the rental it
// bills, the parties, and the business settings.
type InvoiceBundle struct {
	Invoice  *models.Invoice
	Rental   *models.Rental
	Client   *models.Client
	Company  *models.Company
	Settings *models.Settings
}

// GetInvoiceBundle loads an invoice and resolves its references. The rental
// is required (totals are recomputed from it); client, company, and settings
// are best-effort.
func (r *PDFRepository) GetInvoiceBundle(invoiceID string) (*InvoiceBundle, error) {
	invoice, err := r.InvoiceRepo.GetInvoiceByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}

	rental, err := r.RentalRepo.GetRentalByID(invoice.RentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, nil
	}

	bundle := &InvoiceBundle{Invoice: invoice, Rental: rental}

	if client, err := r.ClientRepo.GetClientByName(rental.ClientName); err == nil {
		bundle.Client = client
	}
	if invoice.CompanyID != "" {
		if company, err := r.CompanyRepo.GetCompanyByID(invoice.CompanyID); err == nil {
			bundle.Company = company
		}
	}
	settings, err := r.SettingsRepo.GetSettings()
	if err == nil && settings != nil {
		bundle.Settings = settings
	} else {
		bundle.Settings = models.DefaultSettings()
	}

	return bundle, nil
}
