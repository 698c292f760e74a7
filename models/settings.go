package models

import "time"

// Settings holds the app-wide business profile and invoice options. LogoImage
// is a data URI uploaded from the settings form.
type Settings struct {
	ID            string     `json:"id" bson:"_id,omitempty" db:"id"`
	BusinessName  string     `json:"businessName" bson:"business_name" db:"business_name"`
	GST           string     `json:"gst,omitempty" bson:"gst,omitempty" db:"gst"`
	Address       string     `json:"address,omitempty" bson:"address,omitempty" db:"address"`
	SenderEmail   string     `json:"senderEmail,omitempty" bson:"sender_email,omitempty" db:"sender_email"`
	Currency      string     `json:"currency" bson:"currency" db:"currency"`
	InvoicePrefix string     `json:"invoicePrefix" bson:"invoice_prefix" db:"invoice_prefix"`
	TaxRate       FlexFloat  `json:"taxRate" bson:"tax_rate" db:"tax_rate"`
	LogoImage     string     `json:"logoImage,omitempty" bson:"logo_image,omitempty" db:"logo_image"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}

// DefaultSettings is returned when no settings document has been saved yet.
func DefaultSettings() *Settings {
	return &Settings{
		BusinessName:  "LightBill Pro Rentals",
		GST:           "27AAAAA0000A1Z5",
		Address:       "Studio 4, Filmcity, Goregaon East, Mumbai, Maharashtra 400065",
		Currency:      "INR",
		InvoicePrefix: "INV",
		TaxRate:       18,
	}
}

// RenderConfig is the slice of settings the invoice renderers need, passed
// explicitly instead of looked up ambiently.
type RenderConfig struct {
	LogoImage     string
	Currency      string
	TaxRate       float64
	InvoicePrefix string
}

// RenderConfigFrom extracts a RenderConfig from saved settings.
func RenderConfigFrom(s *Settings) RenderConfig {
	if s == nil {
		s = DefaultSettings()
	}
	return RenderConfig{
		LogoImage:     s.LogoImage,
		Currency:      s.Currency,
		TaxRate:       float64(s.TaxRate),
		InvoicePrefix: s.InvoicePrefix,
	}
}
