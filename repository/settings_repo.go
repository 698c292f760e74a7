package repository

import (
	"lightbill/models"
)

type SettingsRepository interface {
	SaveSettings(settings *models.Settings) error
	// GetSettings returns (nil, nil) when nothing has been saved yet.
	GetSettings() (*models.Settings, error)
}
