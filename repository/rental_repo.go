package repository

import (
	"lightbill/models"
)

type RentalRepository interface {
	CreateRental(rental *models.Rental) error
	GetRentals(filters map[string]interface{}) ([]*models.Rental, error)
	GetRentalByID(id string) (*models.Rental, error)
	UpdateRental(id string, rental *models.Rental) error
	UpdateRentalStatus(id string, status string) error
	DeleteRental(id string) error
}
