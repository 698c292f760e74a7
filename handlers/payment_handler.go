package handlers

import (
	"encoding/json"
	"net/http"

	"lightbill/models"
	"lightbill/repository"
)

// PaymentHandler exposes the append-only payment ledger: create and list,
// nothing else.
type PaymentHandler struct {
	Repo repository.PaymentRepository
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if payment.ClientName == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Client name is required",
		})
		return
	}

	if err := h.Repo.CreatePayment(&payment); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to record payment: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Payment recorded successfully",
		Data:    payment,
	})
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	payments, err := h.Repo.GetPayments(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch payments: " + err.Error(),
		})
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Payments fetched successfully",
		Data:    payments,
	})
}
