package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresClientRepo struct {
	DB *sql.DB
}

func NewPostgresClientRepo(db *sql.DB) *PostgresClientRepo {
	return &PostgresClientRepo{DB: db}
}

const clientColumns = `id,name,company_id,phone,email,address,city,state,zip_code,dues,created_at,updated_at`

func (r *PostgresClientRepo) CreateClient(client *models.Client) error {
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.DB.QueryRow(`
		INSERT INTO client(name,company_id,phone,email,address,city,state,zip_code,dues,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`, client.Name, client.CompanyID, client.Phone, client.Email, client.Address,
		client.City, client.State, client.ZipCode, client.Dues, client.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	client.ID = formatPgID(id)
	return nil
}

func (r *PostgresClientRepo) GetClients(filters map[string]interface{}) ([]*models.Client, error) {
	where, args := buildWhere(filters)
	rows, err := r.DB.Query(`SELECT `+clientColumns+` FROM client`+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, client)
	}
	return out, rows.Err()
}

func scanClient(rows *sql.Rows) (*models.Client, error) {
	var client models.Client
	var id int64
	var companyID, phone, email, address, city, state, zip sql.NullString
	var updatedAt sql.NullTime

	err := rows.Scan(&id, &client.Name, &companyID, &phone, &email, &address, &city,
		&state, &zip, &client.Dues, &client.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	client.ID = formatPgID(id)
	client.CompanyID = companyID.String
	client.Phone = phone.String
	client.Email = email.String
	client.Address = address.String
	client.City = city.String
	client.State = state.String
	client.ZipCode = zip.String
	if updatedAt.Valid {
		t := updatedAt.Time
		client.UpdatedAt = &t
	}
	return &client, nil
}

func (r *PostgresClientRepo) GetClientByID(id string) (*models.Client, error) {
	clients, err := r.GetClients(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, nil
	}
	return clients[0], nil
}

func (r *PostgresClientRepo) GetClientByName(name string) (*models.Client, error) {
	clients, err := r.GetClients(map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, nil
	}
	return clients[0], nil
}

func (r *PostgresClientRepo) UpdateClient(id string, client *models.Client) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE client SET
			name=$1,company_id=$2,phone=$3,email=$4,address=$5,city=$6,state=$7,
			zip_code=$8,dues=$9,updated_at=now()
		WHERE id=$10
	`, client.Name, client.CompanyID, client.Phone, client.Email, client.Address,
		client.City, client.State, client.ZipCode, client.Dues, pgID)
	if err == nil {
		client.ID = id
	}
	return err
}

func (r *PostgresClientRepo) DeleteClient(id string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`DELETE FROM client WHERE id=$1`, pgID)
	return err
}
