package models

import "time"

// InventoryItem is a rentable piece of gear. Rate is the per-day hire rate
// used to prefill rental line items.
type InventoryItem struct {
	ID          string     `json:"id" bson:"_id,omitempty" db:"id"`
	Name        string     `json:"name" bson:"name" db:"name"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty" db:"category"`
	Description string     `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	Quantity    FlexInt    `json:"quantity" bson:"quantity" db:"quantity"`
	Unit        string     `json:"unit,omitempty" bson:"unit,omitempty" db:"unit"`
	Rate        FlexFloat  `json:"rate" bson:"rate" db:"rate"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
