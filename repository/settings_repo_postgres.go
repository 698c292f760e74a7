package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

// PostgresSettingsRepo keeps a single settings row; SaveSettings updates it
// in place once it exists.
type PostgresSettingsRepo struct {
	DB *sql.DB
}

func NewPostgresSettingsRepo(db *sql.DB) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{DB: db}
}

func (r *PostgresSettingsRepo) SaveSettings(settings *models.Settings) error {
	existing, err := r.GetSettings()
	if err != nil {
		return err
	}

	if existing == nil {
		if settings.CreatedAt.IsZero() {
			settings.CreatedAt = time.Now().UTC()
		}
		var id int64
		err := r.DB.QueryRow(`
			INSERT INTO settings(business_name,gst,address,sender_email,currency,
				invoice_prefix,tax_rate,logo_image,created_at)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
			RETURNING id
		`, settings.BusinessName, settings.GST, settings.Address, settings.SenderEmail,
			settings.Currency, settings.InvoicePrefix, float64(settings.TaxRate),
			settings.LogoImage, settings.CreatedAt).Scan(&id)
		if err != nil {
			return err
		}
		settings.ID = formatPgID(id)
		return nil
	}

	pgID, err := parsePgID(existing.ID)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE settings SET
			business_name=$1,gst=$2,address=$3,sender_email=$4,currency=$5,
			invoice_prefix=$6,tax_rate=$7,logo_image=$8,updated_at=now()
		WHERE id=$9
	`, settings.BusinessName, settings.GST, settings.Address, settings.SenderEmail,
		settings.Currency, settings.InvoicePrefix, float64(settings.TaxRate),
		settings.LogoImage, pgID)
	if err == nil {
		settings.ID = existing.ID
	}
	return err
}

func (r *PostgresSettingsRepo) GetSettings() (*models.Settings, error) {
	row := r.DB.QueryRow(`
		SELECT id,business_name,gst,address,sender_email,currency,invoice_prefix,
		       tax_rate,logo_image,created_at,updated_at
		FROM settings ORDER BY id LIMIT 1`)

	var settings models.Settings
	var id int64
	var businessName, gst, address, senderEmail, currency, prefix, logo sql.NullString
	var taxRate float64
	var updatedAt sql.NullTime

	err := row.Scan(&id, &businessName, &gst, &address, &senderEmail, &currency,
		&prefix, &taxRate, &logo, &settings.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	settings.ID = formatPgID(id)
	settings.BusinessName = businessName.String
	settings.GST = gst.String
	settings.Address = address.String
	settings.SenderEmail = senderEmail.String
	settings.Currency = currency.String
	settings.InvoicePrefix = prefix.String
	settings.TaxRate = models.FlexFloat(taxRate)
	settings.LogoImage = logo.String
	if updatedAt.Valid {
		t := updatedAt.Time
		settings.UpdatedAt = &t
	}
	return &settings, nil
}
