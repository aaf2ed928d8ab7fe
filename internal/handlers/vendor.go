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

type VendorHandler struct {
	Store *store.Store
}

func NewVendorHandler(s *store.Store) *VendorHandler { return &VendorHandler{Store: s} }

// List: GET /vendors
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.Store.Vendors()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_vendors", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": vendors, "total": len(vendors)})
}

type vendorReq struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
}

// Create: POST /vendors
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vendorReq
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
	vendor := models.Vendor{Name: name}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	created, err := h.Store.AddVendor(vendor)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_vendor", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// Update: POST /vendors/update?id=...
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req vendorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		updates["contact_person"] = *req.ContactPerson
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	updated, err := h.Store.UpdateVendor(id, updates)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_vendor", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete: POST /vendors/delete?id=...
// Food items keep their price entries for the vendor; pricing skips lines
// whose vendor lookup fails.
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteVendor(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_vendor", nil)
		return
	}
	if !removed {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}
