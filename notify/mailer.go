// Package notify delivers booking confirmations over SMTP. Delivery is always
// best-effort: callers persist first and treat a failed send as a warning,
// never as a failed booking.
package notify

import (
	"fmt"
	"io"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"lightbill/config"
	"lightbill/models"
	"lightbill/pricing"
)

// Mailer sends a booking confirmation, optionally attaching the invoice PDF.
type Mailer interface {
	SendBookingConfirmation(to string, rental *models.Rental, pdf []byte) error
}

// SMTPMailer sends through a plain SMTP relay with gomail.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		Host: cfg.SMTPHost,
		Port: port,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}
}

// Configured reports whether the relay has enough settings to attempt a send.
func (m *SMTPMailer) Configured() bool {
	return m.Host != "" && m.From != ""
}

func (m *SMTPMailer) SendBookingConfirmation(to string, rental *models.Rental, pdf []byte) error {
	if !m.Configured() {
		return fmt.Errorf("smtp relay not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Rental Booking Confirmation")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour rental booking has been confirmed.\nTotal Amount: %.2f\n\nThank you for your business.",
		rental.ClientName, pricing.Round2(rental.GrandTotal)))

	if len(pdf) > 0 {
		msg.Attach("invoice.pdf",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(pdf)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		)
	}

	dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	return dialer.DialAndSend(msg)
}
