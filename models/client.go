package models

import "time"

type Client struct {
	ID        string     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string     `json:"name" bson:"name" db:"name"`
	CompanyID string     `json:"companyId,omitempty" bson:"company_id,omitempty" db:"company_id"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty" db:"phone"`
	Email     string     `json:"email,omitempty" bson:"email,omitempty" db:"email"`
	Address   string     `json:"address,omitempty" bson:"address,omitempty" db:"address"`
	City      string     `json:"city,omitempty" bson:"city,omitempty" db:"city"`
	State     string     `json:"state,omitempty" bson:"state,omitempty" db:"state"`
	ZipCode   string     `json:"zipCode,omitempty" bson:"zip_code,omitempty" db:"zip_code"`
	Dues      float64    `json:"dues" bson:"dues" db:"dues"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
