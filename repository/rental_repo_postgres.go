package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresRentalRepo struct {
	DB *sql.DB
}

func NewPostgresRentalRepo(db *sql.DB) *PostgresRentalRepo {
	return &PostgresRentalRepo{DB: db}
}

// CreateRental inserts the rental and its line items in one transaction.
func (r *PostgresRentalRepo) CreateRental(rental *models.Rental) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if rental.CreatedAt.IsZero() {
		rental.CreatedAt = time.Now().UTC()
	}

	var id int64
	err = tx.QueryRow(`
		INSERT INTO rental(
			client_name,location,incharge,doh,dor,nod,
			transport,security_deposit,subtotal,grand_total,status,due,created_at
		) VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`, rental.ClientName, rental.Location, rental.Incharge, rental.DOH, rental.DOR, rental.NOD,
		float64(rental.Transport), float64(rental.SecurityDeposit), rental.Subtotal,
		rental.GrandTotal, rental.Status, rental.Due, rental.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	rental.ID = formatPgID(id)

	if err := insertRentalItems(tx, id, rental.Items); err != nil {
		return err
	}

	return tx.Commit()
}

func insertRentalItems(tx *sql.Tx, rentalID int64, items []models.RentalLineItem) error {
	for i, it := range items {
		_, err := tx.Exec(`
			INSERT INTO rental_item(rental_id,position,name,qty,rate,total)
			VALUES($1,$2,$3,$4,$5,$6)
		`, rentalID, i, it.Name, int(it.Qty), float64(it.Rate), it.Total)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetRentals fetches rentals matching the filters, newest first, with their
// line items populated.
func (r *PostgresRentalRepo) GetRentals(filters map[string]interface{}) ([]*models.Rental, error) {
	where, args := buildWhere(filters)
	rows, err := r.DB.Query(`
		SELECT id,client_name,location,incharge,doh,dor,nod,
		       transport,security_deposit,subtotal,grand_total,status,due,created_at,updated_at
		FROM rental`+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rental)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rental := range out {
		if err := r.loadItems(rental); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanRental(rows *sql.Rows) (*models.Rental, error) {
	var rental models.Rental
	var id int64
	var location, incharge, doh, dor sql.NullString
	var transport, deposit float64
	var updatedAt sql.NullTime

	err := rows.Scan(&id, &rental.ClientName, &location, &incharge, &doh, &dor, &rental.NOD,
		&transport, &deposit, &rental.Subtotal, &rental.GrandTotal, &rental.Status,
		&rental.Due, &rental.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rental.ID = formatPgID(id)
	rental.Location = location.String
	rental.Incharge = incharge.String
	rental.DOH = doh.String
	rental.DOR = dor.String
	rental.Transport = models.FlexFloat(transport)
	rental.SecurityDeposit = models.FlexFloat(deposit)
	if updatedAt.Valid {
		t := updatedAt.Time
		rental.UpdatedAt = &t
	}
	return &rental, nil
}

func (r *PostgresRentalRepo) loadItems(rental *models.Rental) error {
	id, err := parsePgID(rental.ID)
	if err != nil {
		return err
	}

	rows, err := r.DB.Query(`
		SELECT name,qty,rate,total FROM rental_item
		WHERE rental_id=$1 ORDER BY position
	`, id)
	if err != nil {
		return err
	}
	defer rows.Close()

	var items []models.RentalLineItem
	for rows.Next() {
		var it models.RentalLineItem
		var qty int
		var rate float64
		if err := rows.Scan(&it.Name, &qty, &rate, &it.Total); err != nil {
			return err
		}
		it.Qty = models.FlexInt(qty)
		it.Rate = models.FlexFloat(rate)
		items = append(items, it)
	}
	rental.Items = items
	return rows.Err()
}

func (r *PostgresRentalRepo) GetRentalByID(id string) (*models.Rental, error) {
	rentals, err := r.GetRentals(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return nil, nil
	}
	return rentals[0], nil
}

// UpdateRental replaces the rental row and rewrites its line items.
func (r *PostgresRentalRepo) UpdateRental(id string, rental *models.Rental) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE rental SET
			client_name=$1,location=$2,incharge=$3,doh=$4,dor=$5,nod=$6,
			transport=$7,security_deposit=$8,subtotal=$9,grand_total=$10,
			status=$11,due=$12,updated_at=now()
		WHERE id=$13
	`, rental.ClientName, rental.Location, rental.Incharge, rental.DOH, rental.DOR, rental.NOD,
		float64(rental.Transport), float64(rental.SecurityDeposit), rental.Subtotal,
		rental.GrandTotal, rental.Status, rental.Due, pgID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM rental_item WHERE rental_id=$1`, pgID); err != nil {
		return err
	}
	if err := insertRentalItems(tx, pgID, rental.Items); err != nil {
		return err
	}

	rental.ID = id
	return tx.Commit()
}

func (r *PostgresRentalRepo) UpdateRentalStatus(id string, status string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`UPDATE rental SET status=$1, updated_at=now() WHERE id=$2`, status, pgID)
	return err
}

func (r *PostgresRentalRepo) DeleteRental(id string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`DELETE FROM rental WHERE id=$1`, pgID)
	return err
}
