package handlers

import (
	"encoding/json"
	"net/http"

	"lightbill/models"
	"lightbill/repository"
)

type InventoryHandler struct {
	Repo repository.InventoryRepository
}

func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if item.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Item name is required",
		})
		return
	}

	if err := h.Repo.CreateItem(&item); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create item: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

func (h *InventoryHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	items, err := h.Repo.GetItems(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch items: " + err.Error(),
		})
		return
	}
	if items == nil {
		items = []*models.InventoryItem{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Items fetched successfully",
		Data:    items,
	})
}

func (h *InventoryHandler) GetItemByID(w http.ResponseWriter, r *http.Request, id string) {
	item, err := h.Repo.GetItemByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch item: " + err.Error(),
		})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Item not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Item fetched successfully",
		Data:    item,
	})
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request, id string) {
	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.UpdateItem(id, &item); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update item: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteItem(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete item: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Item deleted successfully",
	})
}
