package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biryaniking52/catering-app/internal/httpx"
	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/store"
	"github.com/biryaniking52/catering-app/internal/validation"
)

type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(s *store.Store) *CategoryHandler { return &CategoryHandler{Store: s} }

// List: GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Store.Categories()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_categories", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": cats, "total": len(cats)})
}

type categoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Create: POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	validation.Required("name", name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	c := models.Category{Name: name}
	if req.Description != nil {
		c.Description = *req.Description
	}
	created, err := h.Store.AddCategory(c)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_category", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// Update: POST /categories/update?id=...
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	updated, err := h.Store.UpdateCategory(id, updates)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_category", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete: POST /categories/delete?id=...
// Food items keep their categoryId; orphans are tolerated at read time.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteCategory(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_category", nil)
		return
	}
	if !removed {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}
