package models

// InvoicePDFData is everything the invoice template needs, for both the HTML
// export and the headless-Chrome PDF path.
type InvoicePDFData struct {
	Business *Settings
	Config   RenderConfig
	Company  *Company
	Client   *Client
	Rental   *Rental

	InvoiceNo   string
	Date        string // formatted invoice date
	DueDate     string
	Notes       string

	Subtotal   float64
	IncludeTax bool
	TaxRate    float64
	TaxAmount  float64
	Transport  float64
	GrandTotal float64
	TotalWords string
}
