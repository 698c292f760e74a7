package handlers

import (
	"encoding/json"
	"net/http"

	"lightbill/models"
	"lightbill/repository"
)

type SettingsHandler struct {
	Repo repository.SettingsRepository
}

func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.SaveSettings(&settings); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save settings: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Settings saved successfully",
		Data:    settings,
	})
}

// GetSettings falls back to the built-in defaults when nothing has been
// saved yet, so the frontend always gets a complete profile.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Repo.GetSettings()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch settings: " + err.Error(),
		})
		return
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Settings fetched successfully",
		Data:    settings,
	})
}
