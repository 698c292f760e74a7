package repository

import (
	"lightbill/models"
)

type ClientRepository interface {
	CreateClient(client *models.Client) error
	GetClients(filters map[string]interface{}) ([]*models.Client, error)
	GetClientByID(id string) (*models.Client, error)
	GetClientByName(name string) (*models.Client, error)
	UpdateClient(id string, client *models.Client) error
	DeleteClient(id string) error
}
