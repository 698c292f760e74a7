package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"lightbill/logger"
	"lightbill/models"
	"lightbill/notify"
	"lightbill/pricing"
	"lightbill/repository"
)

// Booking outcome messages. A failed email never fails the booking.
const (
	msgBookingSavedAndSent = "Booking saved and invoice sent!"
	msgBookingSaved        = "Booking saved!"
	msgBookingEmailFailed  = "Booking saved, but failed to send email."
)

type RentalHandler struct {
	Repo         repository.RentalRepository
	ClientRepo   repository.ClientRepository
	SettingsRepo repository.SettingsRepository
	Mailer       notify.Mailer

	// RenderInvoice produces the PDF attached to the confirmation email.
	// Optional; when nil the email goes out without an attachment.
	RenderInvoice func(rental *models.Rental, client *models.Client, settings *models.Settings, invoiceNo string) ([]byte, error)
}

// CreateRental validates, prices, and persists a booking, then sends the
// confirmation email best-effort. The response message reports which of the
// three outcomes happened.
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var rental models.Rental
	if err := json.NewDecoder(r.Body).Decode(&rental); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := pricing.FinalizeBooking(&rental); err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: verr.Message,
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if err := h.Repo.CreateRental(&rental); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save booking: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: h.notifyClient(&rental),
		Data:    rental,
	})
}

// notifyClient looks up the client's email and sends the confirmation with
// the invoice attached. Returns the user-facing outcome message.
func (h *RentalHandler) notifyClient(rental *models.Rental) string {
	if h.Mailer == nil || h.ClientRepo == nil {
		return msgBookingSaved
	}

	client, err := h.ClientRepo.GetClientByName(rental.ClientName)
	if err != nil || client == nil || client.Email == "" {
		return msgBookingSaved
	}

	settings := models.DefaultSettings()
	if h.SettingsRepo != nil {
		if saved, err := h.SettingsRepo.GetSettings(); err == nil && saved != nil {
			settings = saved
		}
	}

	var pdf []byte
	if h.RenderInvoice != nil {
		pdf, err = h.RenderInvoice(rental, client, settings, bookingInvoiceNumber(settings.InvoicePrefix, rental.ID))
		if err != nil {
			logger.Warn("invoice render failed, sending without attachment", "rental_id", rental.ID, "error", err)
			pdf = nil
		}
	}

	if err := h.Mailer.SendBookingConfirmation(client.Email, rental, pdf); err != nil {
		logger.Warn("booking email failed", "rental_id", rental.ID, "to", client.Email, "error", err)
		return msgBookingEmailFailed
	}
	return msgBookingSavedAndSent
}

// bookingInvoiceNumber derives the provisional number on the emailed invoice
// from the rental id, e.g. INV-64F2A1.
func bookingInvoiceNumber(prefix, rentalID string) string {
	if prefix == "" {
		prefix = "INV"
	}
	ref := rentalID
	if len(ref) > 6 {
		ref = ref[:6]
	}
	return prefix + "-" + strings.ToUpper(ref)
}

// GetRentals lists rentals, newest first, optionally filtered by query
// parameters (status, client_name, ...).
func (h *RentalHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	rentals, err := h.Repo.GetRentals(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch rentals: " + err.Error(),
		})
		return
	}
	if rentals == nil {
		rentals = []*models.Rental{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Rentals fetched successfully",
		Data:    rentals,
	})
}

func (h *RentalHandler) GetRentalByID(w http.ResponseWriter, r *http.Request, id string) {
	rental, err := h.Repo.GetRentalByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch rental: " + err.Error(),
		})
		return
	}
	if rental == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Rental not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Rental fetched successfully",
		Data:    rental,
	})
}

// UpdateRental reprices the incoming rental before persisting so stored
// totals can never drift from the line items and dates.
func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request, id string) {
	var rental models.Rental
	if err := json.NewDecoder(r.Body).Decode(&rental); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	pricing.Reprice(&rental)

	if err := h.Repo.UpdateRental(id, &rental); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update rental: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Rental updated successfully",
		Data:    rental,
	})
}

// UpdateRentalStatus handles PATCH /rentals/{id}/status.
func (h *RentalHandler) UpdateRentalStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if body.Status == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Status is required",
		})
		return
	}

	if err := h.Repo.UpdateRentalStatus(id, body.Status); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update rental status: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Rental status updated successfully",
	})
}

func (h *RentalHandler) DeleteRental(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteRental(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete rental: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Rental deleted successfully",
	})
}
