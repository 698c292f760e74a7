package repository

import (
	"lightbill/models"
)

// PaymentRepository is deliberately append-only: payments are ledger entries
// and are never updated or deleted.
type PaymentRepository interface {
	CreatePayment(payment *models.Payment) error
	GetPayments(filters map[string]interface{}) ([]*models.Payment, error)
}
