package models

import "time"

// Invoice payment statuses
const (
	InvoiceUnpaid = "Unpaid"
	InvoicePaid   = "Paid"
)

// Invoice is a billing wrapper around a rental. Monetary totals (subtotal,
// tax, grand total) are never stored; they are recomputed from the referenced
// rental's line items and this invoice's tax settings at render or report
// time. Amount is the resolved revenue figure the reports path reads.
type Invoice struct {
	ID            string     `json:"id" bson:"_id,omitempty" db:"id"`
	InvoiceNumber string     `json:"invoiceNumber" bson:"invoice_number" db:"invoice_number"`
	CompanyID     string     `json:"companyId,omitempty" bson:"company_id,omitempty" db:"company_id"`
	RentalID      string     `json:"rentalId,omitempty" bson:"rental_id,omitempty" db:"rental_id"`
	InvoiceDate   string     `json:"invoiceDate" bson:"invoice_date" db:"invoice_date"`
	DueDate       string     `json:"dueDate,omitempty" bson:"due_date,omitempty" db:"due_date"`
	IncludeTax    bool       `json:"includeTax" bson:"include_tax" db:"include_tax"`
	TaxRate       FlexFloat  `json:"taxRate" bson:"tax_rate" db:"tax_rate"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty" db:"notes"`
	Amount        FlexFloat  `json:"amount" bson:"amount" db:"amount"`
	PaymentStatus string     `json:"paymentStatus" bson:"payment_status" db:"payment_status"`
	PdfCreatedAt  *time.Time `json:"pdfCreatedAt,omitempty" bson:"pdf_created_at,omitempty" db:"pdf_created_at"`
	PdfURL        string     `json:"pdfUrl,omitempty" bson:"pdf_url,omitempty" db:"pdf_url"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
