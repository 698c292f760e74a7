package repository

import (
	"lightbill/models"
)

type CompanyRepository interface {
	CreateCompany(company *models.Company) error
	GetCompanies(filters map[string]interface{}) ([]*models.Company, error)
	GetCompanyByID(id string) (*models.Company, error)
	UpdateCompany(id string, company *models.Company) error
	DeleteCompany(id string) error
}
