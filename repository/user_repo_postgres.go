package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.AppUser) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.DB.QueryRow(`
		INSERT INTO app_user(name,email,role,password,created_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, user.Name, user.Email, user.Role, user.Password, user.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	user.ID = formatPgID(id)
	return nil
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	row := r.DB.QueryRow(`
		SELECT id,name,email,role,password,created_at FROM app_user WHERE email=$1
	`, email)

	var user models.AppUser
	var id int64
	err := row.Scan(&id, &user.Name, &user.Email, &user.Role, &user.Password, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.ID = formatPgID(id)
	return &user, nil
}
