package models

import "time"

type AppUser struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Role      string    `json:"role" bson:"role" db:"role"`
	Password  string    `json:"password,omitempty" bson:"password" db:"password"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
