package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biryaniking52/catering-app/internal/httpx"
	"github.com/biryaniking52/catering-app/internal/middleware"
	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/store"
	"github.com/biryaniking52/catering-app/internal/validation"
)

type FoodItemHandler struct {
	Store *store.Store
}

func NewFoodItemHandler(s *store.Store) *FoodItemHandler { return &FoodItemHandler{Store: s} }

// vendorPriceView hides the cost column from non-admin viewers. The stored
// record always keeps both prices; this is presentation only.
type vendorPriceView struct {
	VendorID    uint     `json:"vendorId"`
	CostPrice   *float64 `json:"costPrice,omitempty"`
	RetailPrice float64  `json:"retailPrice"`
}

type foodItemView struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	CategoryID   uint              `json:"categoryId"`
	Diet         string            `json:"diet"`
	VendorPrices []vendorPriceView `json:"vendorPrices"`
}

func foodItemForRole(item models.FoodItem, role string) foodItemView {
	view := foodItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CategoryID:  item.CategoryID,
		Diet:        item.Diet,
	}
	for _, vp := range item.VendorPrices {
		pv := vendorPriceView{VendorID: vp.VendorID, RetailPrice: vp.RetailPrice}
		if role == middleware.RoleAdmin {
			cost := vp.CostPrice
			pv.CostPrice = &cost
		}
		view.VendorPrices = append(view.VendorPrices, pv)
	}
	return view
}

// List: GET /fooditems
func (h *FoodItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.FoodItems()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_food_items", nil)
		return
	}
	role := middleware.RoleFrom(r)
	views := make([]foodItemView, 0, len(items))
	for _, item := range items {
		views = append(views, foodItemForRole(item, role))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": views, "total": len(views)})
}

type foodItemReq struct {
	Name         *string               `json:"name"`
	Description  *string               `json:"description"`
	CategoryID   *uint                 `json:"categoryId"`
	Diet         *string               `json:"diet"`
	VendorPrices *[]models.VendorPrice `json:"vendorPrices"`
}

// validatePrices enforces the usability invariant: an item needs at least
// one vendor price, each non-negative. Retail below cost is allowed (margin
// can be negative).
func validatePrices(prices []models.VendorPrice, v validation.Violations) {
	if len(prices) == 0 {
		v["vendorPrices"] = "at_least_one_required"
		return
	}
	for _, vp := range prices {
		if vp.VendorID == 0 {
			v["vendorPrices"] = "vendor_required"
			return
		}
		validation.NonNegativeFloat("vendorPrices.costPrice", vp.CostPrice, v)
		validation.NonNegativeFloat("vendorPrices.retailPrice", vp.RetailPrice, v)
	}
}

// Create: POST /fooditems
func (h *FoodItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req foodItemReq
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
	var prices []models.VendorPrice
	if req.VendorPrices != nil {
		prices = *req.VendorPrices
	}
	validatePrices(prices, v)
	diet := models.DietVeg
	if req.Diet != nil {
		diet = *req.Diet
	}
	if diet != models.DietVeg && diet != models.DietNonVeg {
		v["diet"] = "must_be_veg_or_non_veg"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	item := models.FoodItem{Name: name, Diet: diet, VendorPrices: prices}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CategoryID != nil {
		// Not checked against the category collection: a dangling reference
		// is tolerated and resolves to "unknown category" at read time.
		item.CategoryID = *req.CategoryID
	}
	created, err := h.Store.AddFoodItem(item)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_food_item", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// BulkCreate: POST /fooditems/bulk
// Imports a whole menu section in one transaction. All rows must pass
// validation; a single bad row rejects the batch.
func (h *FoodItemHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []foodItemReq `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if len(req.Items) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"items": "required"})
		return
	}
	items := make([]models.FoodItem, 0, len(req.Items))
	for i, row := range req.Items {
		v := validation.Violations{}
		name := ""
		if row.Name != nil {
			name = *row.Name
		}
		validation.Required("name", name, v)
		var prices []models.VendorPrice
		if row.VendorPrices != nil {
			prices = *row.VendorPrices
		}
		validatePrices(prices, v)
		diet := models.DietVeg
		if row.Diet != nil {
			diet = *row.Diet
		}
		if diet != models.DietVeg && diet != models.DietNonVeg {
			v["diet"] = "must_be_veg_or_non_veg"
		}
		if !v.Empty() {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]any{"row": i, "violations": v})
			return
		}
		item := models.FoodItem{Name: name, Diet: diet, VendorPrices: prices}
		if row.Description != nil {
			item.Description = *row.Description
		}
		if row.CategoryID != nil {
			item.CategoryID = *row.CategoryID
		}
		items = append(items, item)
	}
	created, err := h.Store.BulkAddFoodItems(items)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_food_items", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"items": created, "total": len(created)})
}

// Update: POST /fooditems/update?id=...
func (h *FoodItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req foodItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	updates := map[string]any{}
	if req.Name != nil {
		validation.Required("name", *req.Name, v)
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Diet != nil {
		if *req.Diet != models.DietVeg && *req.Diet != models.DietNonVeg {
			v["diet"] = "must_be_veg_or_non_veg"
		}
		updates["diet"] = *req.Diet
	}
	if req.VendorPrices != nil {
		validatePrices(*req.VendorPrices, v)
		updates["vendor_prices"] = *req.VendorPrices
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	updated, err := h.Store.UpdateFoodItem(id, updates)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_food_item", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete: POST /fooditems/delete?id=...
func (h *FoodItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteFoodItem(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_food_item", nil)
		return
	}
	if !removed {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}
