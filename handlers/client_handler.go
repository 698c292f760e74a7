package handlers

import (
	"encoding/json"
	"net/http"

	"lightbill/models"
	"lightbill/repository"
)

type ClientHandler struct {
	Repo repository.ClientRepository
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if client.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Client name is required",
		})
		return
	}

	if err := h.Repo.CreateClient(&client); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create client: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Client created successfully",
		Data:    client,
	})
}

func (h *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	clients, err := h.Repo.GetClients(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch clients: " + err.Error(),
		})
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Clients fetched successfully",
		Data:    clients,
	})
}

func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request, id string) {
	client, err := h.Repo.GetClientByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch client: " + err.Error(),
		})
		return
	}
	if client == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Client not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Client fetched successfully",
		Data:    client,
	})
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request, id string) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.UpdateClient(id, &client); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update client: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Client updated successfully",
		Data:    client,
	})
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteClient(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete client: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Client deleted successfully",
	})
}
