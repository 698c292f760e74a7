package handlers

import (
	"encoding/json"
	"net/http"

	"lightbill/models"
	"lightbill/repository"
)

type CompanyHandler struct {
	Repo repository.CompanyRepository
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if company.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Company name is required",
		})
		return
	}

	if err := h.Repo.CreateCompany(&company); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create company: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Company created successfully",
		Data:    company,
	})
}

func (h *CompanyHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	companies, err := h.Repo.GetCompanies(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch companies: " + err.Error(),
		})
		return
	}
	if companies == nil {
		companies = []*models.Company{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Companies fetched successfully",
		Data:    companies,
	})
}

func (h *CompanyHandler) GetCompanyByID(w http.ResponseWriter, r *http.Request, id string) {
	company, err := h.Repo.GetCompanyByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch company: " + err.Error(),
		})
		return
	}
	if company == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Company not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Company fetched successfully",
		Data:    company,
	})
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request, id string) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.UpdateCompany(id, &company); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update company: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Company updated successfully",
		Data:    company,
	})
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteCompany(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete company: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Company deleted successfully",
	})
}
