package repository

import (
	"lightbill/models"
)

type InventoryRepository interface {
	CreateItem(item *models.InventoryItem) error
	GetItems(filters map[string]interface{}) ([]*models.InventoryItem, error)
	GetItemByID(id string) (*models.InventoryItem, error)
	UpdateItem(id string, item *models.InventoryItem) error
	DeleteItem(id string) error
}
