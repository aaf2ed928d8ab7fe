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

type CustomerHandler struct {
	Store *store.Store
}

func NewCustomerHandler(s *store.Store) *CustomerHandler { return &CustomerHandler{Store: s} }

// List: GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Store.Customers()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_customers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": customers, "total": len(customers)})
}

type customerReq struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Create: POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerReq
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
	c := models.Customer{Name: name}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	created, err := h.Store.AddCustomer(c)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// Update: POST /customers/update?id=...
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req customerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	updated, err := h.Store.UpdateCustomer(id, updates)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete: POST /customers/delete?id=...
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteCustomer(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_customer", nil)
		return
	}
	if !removed {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// Match: GET /customers/match?name=&email=&phone=
// Best-effort lookup used by the quote edit form to preselect a customer.
// A miss is a 200 with match:null, not an error.
func (h *CustomerHandler) Match(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := h.Store.MatchCustomer(q.Get("name"), q.Get("email"), q.Get("phone"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_match_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"match": c})
}
