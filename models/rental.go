package models

import "time"

// Rental statuses
const (
	RentalStatusBooked   = "Booked"
	RentalStatusActive   = "Active"
	RentalStatusReturned = "Returned"
	RentalStatusOverdue  = "Overdue"
)

// RentalLineItem is one rented equipment entry within a booking. Total is
// derived: qty * rate * the parent rental's NOD.
type RentalLineItem struct {
	Name  string    `json:"name" bson:"name" db:"name"`
	Qty   FlexInt   `json:"qty" bson:"qty" db:"qty"`
	Rate  FlexFloat `json:"rate" bson:"rate" db:"rate"`
	Total float64   `json:"total" bson:"total" db:"total"`
}

// Rental is a priced booking. DOH/DOR are calendar dates as yyyy-mm-dd
// strings; NOD (number of days) is derived from them. GrandTotal excludes the
// refundable security deposit.
type Rental struct {
	ID              string           `json:"id" bson:"_id,omitempty" db:"id"`
	ClientName      string           `json:"clientName" bson:"client_name" db:"client_name"`
	Location        string           `json:"location" bson:"location" db:"location"`
	Incharge        string           `json:"incharge" bson:"incharge" db:"incharge"`
	DOH             string           `json:"doh" bson:"doh" db:"doh"`
	DOR             string           `json:"dor" bson:"dor" db:"dor"`
	NOD             int              `json:"nod" bson:"nod" db:"nod"`
	Items           []RentalLineItem `json:"items" bson:"items"`
	Transport       FlexFloat        `json:"transport" bson:"transport" db:"transport"`
	SecurityDeposit FlexFloat        `json:"securityDeposit" bson:"security_deposit" db:"security_deposit"`
	Subtotal        float64          `json:"subtotal" bson:"subtotal" db:"subtotal"`
	GrandTotal      float64          `json:"grandTotal" bson:"grand_total" db:"grand_total"`
	Status          string           `json:"status" bson:"status" db:"status"`
	Due             float64          `json:"due" bson:"due" db:"due"`
	CreatedAt       time.Time        `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
