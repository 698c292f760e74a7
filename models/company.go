package models

import "time"

type Company struct {
	ID                string     `json:"id" bson:"_id,omitempty" db:"id"`
	Name              string     `json:"name" bson:"name" db:"name"`
	Address           string     `json:"address,omitempty" bson:"address,omitempty" db:"address"`
	GSTNumber         string     `json:"gstNumber,omitempty" bson:"gst_number,omitempty" db:"gst_number"`
	Phone             string     `json:"phone,omitempty" bson:"phone,omitempty" db:"phone"`
	Email             string     `json:"email,omitempty" bson:"email,omitempty" db:"email"`
	BankName          string     `json:"bankName,omitempty" bson:"bank_name,omitempty" db:"bank_name"`
	BankAccountHolder string     `json:"bankAccountHolder,omitempty" bson:"bank_account_holder,omitempty" db:"bank_account_holder"`
	BankAccountNumber string     `json:"bankAccountNumber,omitempty" bson:"bank_account_number,omitempty" db:"bank_account_number"`
	IFSCCode          string     `json:"ifscCode,omitempty" bson:"ifsc_code,omitempty" db:"ifsc_code"`
	UPIID             string     `json:"upiId,omitempty" bson:"upi_id,omitempty" db:"upi_id"`
	InchargeName      string     `json:"inchargeName,omitempty" bson:"incharge_name,omitempty" db:"incharge_name"`
	InchargePhone     string     `json:"inchargePhone,omitempty" bson:"incharge_phone,omitempty" db:"incharge_phone"`
	CreatedAt         time.Time  `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
