package repository

import (
	"database/sql"
	"time"

	"lightbill/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

const companyColumns = `id,name,address,gst_number,phone,email,bank_name,bank_account_holder,
	bank_account_number,ifsc_code,upi_id,incharge_name,incharge_phone,created_at,updated_at`

func (r *PostgresCompanyRepo) CreateCompany(company *models.Company) error {
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.DB.QueryRow(`
		INSERT INTO company(name,address,gst_number,phone,email,bank_name,bank_account_holder,
			bank_account_number,ifsc_code,upi_id,incharge_name,incharge_phone,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`, company.Name, company.Address, company.GSTNumber, company.Phone, company.Email,
		company.BankName, company.BankAccountHolder, company.BankAccountNumber,
		company.IFSCCode, company.UPIID, company.InchargeName, company.InchargePhone,
		company.CreatedAt).Scan(&id)
	if err != nil {
		return err
	}
	company.ID = formatPgID(id)
	return nil
}

func (r *PostgresCompanyRepo) GetCompanies(filters map[string]interface{}) ([]*models.Company, error) {
	where, args := buildWhere(filters)
	rows, err := r.DB.Query(`SELECT `+companyColumns+` FROM company`+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, company)
	}
	return out, rows.Err()
}

func scanCompany(rows *sql.Rows) (*models.Company, error) {
	var company models.Company
	var id int64
	var address, gst, phone, email, bankName, holder, account, ifsc, upi, inchargeName, inchargePhone sql.NullString
	var updatedAt sql.NullTime

	err := rows.Scan(&id, &company.Name, &address, &gst, &phone, &email, &bankName,
		&holder, &account, &ifsc, &upi, &inchargeName, &inchargePhone,
		&company.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	company.ID = formatPgID(id)
	company.Address = address.String
	company.GSTNumber = gst.String
	company.Phone = phone.String
	company.Email = email.String
	company.BankName = bankName.String
	company.BankAccountHolder = holder.String
	company.BankAccountNumber = account.String
	company.IFSCCode = ifsc.String
	company.UPIID = upi.String
	company.InchargeName = inchargeName.String
	company.InchargePhone = inchargePhone.String
	if updatedAt.Valid {
		t := updatedAt.Time
		company.UpdatedAt = &t
	}
	return &company, nil
}

func (r *PostgresCompanyRepo) GetCompanyByID(id string) (*models.Company, error) {
	companies, err := r.GetCompanies(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, nil
	}
	return companies[0], nil
}

func (r *PostgresCompanyRepo) UpdateCompany(id string, company *models.Company) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE company SET
			name=$1,address=$2,gst_number=$3,phone=$4,email=$5,bank_name=$6,
			bank_account_holder=$7,bank_account_number=$8,ifsc_code=$9,upi_id=$10,
			incharge_name=$11,incharge_phone=$12,updated_at=now()
		WHERE id=$13
	`, company.Name, company.Address, company.GSTNumber, company.Phone, company.Email,
		company.BankName, company.BankAccountHolder, company.BankAccountNumber,
		company.IFSCCode, company.UPIID, company.InchargeName, company.InchargePhone, pgID)
	if err == nil {
		company.ID = id
	}
	return err
}

func (r *PostgresCompanyRepo) DeleteCompany(id string) error {
	pgID, err := parsePgID(id)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`DELETE FROM company WHERE id=$1`, pgID)
	return err
}
