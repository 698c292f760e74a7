package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresInventoryRepo struct {
	DB *sql.DB
}

func NewPostgresInventoryRepo(db *sql.DB) *PostgresInventoryRepo {
	return &PostgresInventoryRepo{DB: db}
}

func (r *PostgresInventoryRepo) CreateItem(item *models.InventoryItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.DB.QueryRow(`
		INSERT INTO inventory(name,category,description,quantity,unit,rate,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, item.Name, item.Category, item.Description, int(item.Quantity), item.Unit,
		float64(item.Rate), item.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	item.ID = formatPgID(id)
	return nil
}

func (r *PostgresInventoryRepo) GetItems(filters map[string]interface{}) ([]*models.InventoryItem, error) {
	where, args := buildWhere(filters)
	rows, err := r.DB.Query(`
		SELECT id,name,category,description,quantity,unit,rate,created_at,updated_at
		FROM inventory`+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		var id int64
		var category, description, unit sql.NullString
		var qty int
		var rate float64
		var updatedAt sql.NullTime

		err := rows.Scan(&id, &item.Name, &category, &description, &qty, &unit, &rate,
			&item.CreatedAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		item.ID = formatPgID(id)
		item.Category = category.String
		item.Description = description.String
		item.Unit = unit.String
		item.Quantity = models.FlexInt(qty)
		item.Rate = models.FlexFloat(rate)
		if updatedAt.Valid {
			t := updatedAt.Time
			item.UpdatedAt = &t
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

func (r *PostgresInventoryRepo) GetItemByID(id string) (*models.InventoryItem, error) {
	items, err := r.GetItems(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (r *PostgresInventoryRepo) UpdateItem(id string, item *models.InventoryItem) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE inventory SET
			name=$1,category=$2,description=$3,quantity=$4,unit=$5,rate=$6,updated_at=now()
		WHERE id=$7
	`, item.Name, item.Category, item.Description, int(item.Quantity), item.Unit,
		float64(item.Rate), pgID)
	if err == nil {
		item.ID = id
	}
	return err
}

func (r *PostgresInventoryRepo) DeleteItem(id string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`DELETE FROM inventory WHERE id=$1`, pgID)
	return err
}
