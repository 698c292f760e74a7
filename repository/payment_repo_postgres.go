package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresPaymentRepo struct {
	DB *sql.DB
}

func NewPostgresPaymentRepo(db *sql.DB) *PostgresPaymentRepo {
	return &PostgresPaymentRepo{DB: db}
}

func (r *PostgresPaymentRepo) CreatePayment(payment *models.Payment) error {
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	if payment.Status == "" {
		payment.Status = models.PaymentCompleted
	}

	var id int64
	err := r.DB.QueryRow(`
		INSERT INTO payment(client_name,amount,mode,date,status,created_at)
		VALUES($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, payment.ClientName, float64(payment.Amount), payment.Mode, payment.Date,
		payment.Status, payment.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	payment.ID = formatPgID(id)
	return nil
}

func (r *PostgresPaymentRepo) GetPayments(filters map[string]interface{}) ([]*models.Payment, error) {
	where, args := buildWhere(filters)
	rows, err := r.DB.Query(`
		SELECT id,client_name,amount,mode,date,status,created_at
		FROM payment`+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		var payment models.Payment
		var id int64
		var date sql.NullString
		var amount float64

		err := rows.Scan(&id, &payment.ClientName, &amount, &payment.Mode, &date,
			&payment.Status, &payment.CreatedAt)
		if err != nil {
			return nil, err
		}

		payment.ID = formatPgID(id)
		payment.Amount = models.FlexFloat(amount)
		payment.Date = date.String
		out = append(out, &payment)
	}
	return out, rows.Err()
}
