package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"lightbill/models"
	"lightbill/pricing"
	"lightbill/repository"
)

const invoiceTemplatePath = "templates/invoice_template.html"

// BuildInvoiceData assembles the template payload for a stored invoice. All
// monetary figures are recomputed from the rental's line items and the
// invoice's tax settings; nothing is read from stored totals.
func BuildInvoiceData(bundle *repository.InvoiceBundle) models.InvoicePDFData {
	invoice := bundle.Invoice
	rental := bundle.Rental

	totals := pricing.ComputeInvoiceTotals(rental, invoice.IncludeTax, float64(invoice.TaxRate))

	date := invoice.InvoiceDate
	if t, err := time.Parse("2006-01-02", invoice.InvoiceDate); err == nil {
		date = t.Format("02-Jan-2006")
	}
	dueDate := invoice.DueDate
	if t, err := time.Parse("2006-01-02", invoice.DueDate); err == nil {
		dueDate = t.Format("02-Jan-2006")
	}

	return models.InvoicePDFData{
		Business: bundle.Settings,
		Config:   models.RenderConfigFrom(bundle.Settings),
		Company:  bundle.Company,
		Client:   bundle.Client,
		Rental:   rental,

		InvoiceNo: invoice.InvoiceNumber,
		Date:      date,
		DueDate:   dueDate,
		Notes:     invoice.Notes,

		Subtotal:   pricing.Round2(pricing.ComputeSubtotal(rental.Items)),
		IncludeTax: invoice.IncludeTax,
		TaxRate:    float64(invoice.TaxRate),
		TaxAmount:  totals.TaxAmount,
		Transport:  float64(rental.Transport),
		GrandTotal: totals.GrandTotal,
		TotalWords: NumberToCurrencyWords(totals.GrandTotal),
	}
}

// buildBookingData assembles the payload for the provisional invoice emailed
// on booking, before any invoice document exists. Tax follows the business
// settings.
func buildBookingData(rental *models.Rental, client *models.Client, settings *models.Settings, invoiceNo string) models.InvoicePDFData {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	totals := pricing.ComputeInvoiceTotals(rental, true, float64(settings.TaxRate))

	return models.InvoicePDFData{
		Business: settings,
		Config:   models.RenderConfigFrom(settings),
		Client:   client,
		Rental:   rental,

		InvoiceNo: invoiceNo,
		Date:      time.Now().Format("02-Jan-2006"),

		Subtotal:   pricing.Round2(pricing.ComputeSubtotal(rental.Items)),
		IncludeTax: true,
		TaxRate:    float64(settings.TaxRate),
		TaxAmount:  totals.TaxAmount,
		Transport:  float64(rental.Transport),
		GrandTotal: totals.GrandTotal,
		TotalWords: NumberToCurrencyWords(totals.GrandTotal),
	}
}

var templateFuncs = template.FuncMap{
	"add1": func(i int) int { return i + 1 },
}

// RenderInvoiceHTML executes the invoice template into a standalone page.
func RenderInvoiceHTML(data models.InvoicePDFData) (string, error) {
	tmpl, err := template.New(filepath.Base(invoiceTemplatePath)).
		Funcs(templateFuncs).
		ParseFiles(invoiceTemplatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTMLToPDF renders HTML to A4 PDF bytes with headless Chrome. The markup is
// written to a temp file so Chrome loads it over file:// with no server.
func HTMLToPDF(html string) ([]byte, error) {
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err := chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

// GenerateInvoicePDF renders a stored invoice to PDF bytes. Returns (nil, nil)
// when the invoice or its rental does not exist.
func GenerateInvoicePDF(repo *repository.PDFRepository, invoiceID string) ([]byte, error) {
	bundle, err := repo.GetInvoiceBundle(invoiceID)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}

	html, err := RenderInvoiceHTML(BuildInvoiceData(bundle))
	if err != nil {
		return nil, err
	}
	return HTMLToPDF(html)
}

// GenerateBookingInvoicePDF renders the provisional invoice attached to the
// booking confirmation email.
func GenerateBookingInvoicePDF(rental *models.Rental, client *models.Client, settings *models.Settings, invoiceNo string) ([]byte, error) {
	html, err := RenderInvoiceHTML(buildBookingData(rental, client, settings, invoiceNo))
	if err != nil {
		return nil, err
	}
	return HTMLToPDF(html)
}
