package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresInvoiceRepo struct {
	DB *sql.DB
}

func NewPostgresInvoiceRepo(db *sql.DB) *PostgresInvoiceRepo {
	return &PostgresInvoiceRepo{DB: db}
}

func (r *PostgresInvoiceRepo) CreateInvoice(invoice *models.Invoice) error {
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now().UTC()
	}
	if invoice.PaymentStatus == "" {
		invoice.PaymentStatus = models.InvoiceUnpaid
	}

	var id int64
	err := r.DB.QueryRow(`
		INSERT INTO invoice(invoice_number,company_id,rental_id,invoice_date,due_date,
			include_tax,tax_rate,notes,amount,payment_status,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`, invoice.InvoiceNumber, invoice.CompanyID, invoice.RentalID, invoice.InvoiceDate,
		invoice.DueDate, invoice.IncludeTax, float64(invoice.TaxRate), invoice.Notes,
		float64(invoice.Amount), invoice.PaymentStatus, invoice.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	invoice.ID = formatPgID(id)
	return nil
}

func (r *PostgresInvoiceRepo) GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error) {
	where, args := buildWhere(filters)
	rows, err := r.DB.Query(`
		SELECT id,invoice_number,company_id,rental_id,invoice_date,due_date,include_tax,
		       tax_rate,notes,amount,payment_status,pdf_created_at,pdf_url,created_at,updated_at
		FROM invoice`+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, invoice)
	}
	return out, rows.Err()
}

func scanInvoice(rows *sql.Rows) (*models.Invoice, error) {
	var invoice models.Invoice
	var id int64
	var companyID, rentalID, invoiceDate, dueDate, notes, pdfURL sql.NullString
	var taxRate, amount float64
	var pdfCreatedAt, updatedAt sql.NullTime

	err := rows.Scan(&id, &invoice.InvoiceNumber, &companyID, &rentalID, &invoiceDate,
		&dueDate, &invoice.IncludeTax, &taxRate, &notes, &amount, &invoice.PaymentStatus,
		&pdfCreatedAt, &pdfURL, &invoice.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	invoice.ID = formatPgID(id)
	invoice.CompanyID = companyID.String
	invoice.RentalID = rentalID.String
	invoice.InvoiceDate = invoiceDate.String
	invoice.DueDate = dueDate.String
	invoice.Notes = notes.String
	invoice.PdfURL = pdfURL.String
	invoice.TaxRate = models.FlexFloat(taxRate)
	invoice.Amount = models.FlexFloat(amount)
	if pdfCreatedAt.Valid {
		t := pdfCreatedAt.Time
		invoice.PdfCreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		invoice.UpdatedAt = &t
	}
	return &invoice, nil
}

func (r *PostgresInvoiceRepo) GetInvoiceByID(id string) (*models.Invoice, error) {
	invoices, err := r.GetInvoices(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, nil
	}
	return invoices[0], nil
}

func (r *PostgresInvoiceRepo) UpdateInvoice(id string, invoice *models.Invoice) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE invoice SET
			invoice_number=$1,company_id=$2,rental_id=$3,invoice_date=$4,due_date=$5,
			include_tax=$6,tax_rate=$7,notes=$8,amount=$9,payment_status=$10,updated_at=now()
		WHERE id=$11
	`, invoice.InvoiceNumber, invoice.CompanyID, invoice.RentalID, invoice.InvoiceDate,
		invoice.DueDate, invoice.IncludeTax, float64(invoice.TaxRate), invoice.Notes,
		float64(invoice.Amount), invoice.PaymentStatus, pgID)
	if err == nil {
		invoice.ID = id
	}
	return err
}

func (r *PostgresInvoiceRepo) UpdatePDFInfo(id string, createdAt time.Time, url string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE invoice SET pdf_created_at=$1, pdf_url=$2, updated_at=now() WHERE id=$3
	`, createdAt, url, pgID)
	return err
}

func (r *PostgresInvoiceRepo) DeleteInvoice(id string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`DELETE FROM invoice WHERE id=$1`, pgID)
	return err
}
