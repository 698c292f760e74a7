package models

import "time"

// Payment modes
const (
	PaymentModeBankTransfer = "Bank Transfer"
	PaymentModeUPI          = "UPI"
	PaymentModeCash         = "Cash"
	PaymentModeCheque       = "Cheque"
)

// Payment statuses
const (
	PaymentCompleted = "Completed"
	PaymentPending   = "Pending"
)

// Payment is an append-only ledger entry; it is created once and never
// mutated.
type Payment struct {
	ID         string    `json:"id" bson:"_id,omitempty" db:"id"`
	ClientName string    `json:"clientName" bson:"client_name" db:"client_name"`
	Amount     FlexFloat `json:"amount" bson:"amount" db:"amount"`
	Mode       string    `json:"mode" bson:"mode" db:"mode"`
	Date       string    `json:"date" bson:"date" db:"date"`
	Status     string    `json:"status" bson:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
}
