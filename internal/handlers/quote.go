package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/biryaniking52/catering-app/internal/httpx"
	"github.com/biryaniking52/catering-app/internal/lifecycle"
	"github.com/biryaniking52/catering-app/internal/menu"
	"github.com/biryaniking52/catering-app/internal/middleware"
	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/pdf"
	"github.com/biryaniking52/catering-app/internal/pricing"
	"github.com/biryaniking52/catering-app/internal/store"
	"github.com/biryaniking52/catering-app/internal/validation"
)

type QuoteHandler struct {
	Store     *store.Store
	Lifecycle *lifecycle.Service
	// DefaultGST pre-fills new quotes when the request carries no GST; the
	// calculator itself treats a missing value as 0.
	DefaultGST     float64
	CurrencySymbol string
}

func NewQuoteHandler(s *store.Store, lc *lifecycle.Service, defaultGST float64, currency string) *QuoteHandler {
	return &QuoteHandler{Store: s, Lifecycle: lc, DefaultGST: defaultGST, CurrencySymbol: currency}
}

// List: GET /quotes?status=&q=&limit=&page=
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Store.Quotes()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_quotes", nil)
		return
	}
	status := r.URL.Query().Get("status")
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	filtered := make([]models.Quote, 0, len(quotes))
	for _, quote := range quotes {
		if status != "" && status != "all" && quote.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(quote.ClientName), q) {
			continue
		}
		filtered = append(filtered, quote)
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items": filtered[offset:end], "total": total, "limit": limit, "offset": offset,
	})
}

type quoteReq struct {
	ClientName            *string                       `json:"clientName"`
	ClientEmail           *string                       `json:"clientEmail"`
	ClientPhone           *string                       `json:"clientPhone"`
	EventDate             *string                       `json:"eventDate"`
	EventType             *string                       `json:"eventType"`
	VenueAddress          *string                       `json:"venueAddress"`
	GuestCount            *int                          `json:"guestCount"`
	Items                 *[]models.QuoteItem           `json:"items"`
	Status                *string                       `json:"status"`
	Notes                 *string                       `json:"notes"`
	GST                   *float64                      `json:"gst"`
	Discount              *float64                      `json:"discount"`
	MiscellaneousExpenses *models.MiscellaneousExpenses `json:"miscellaneousExpenses"`
}

// validateItems rejects an empty selection, non-positive quantities and
// duplicate food items (selection is keyed by food item; one line each).
func validateItems(items []models.QuoteItem, v validation.Violations) {
	if len(items) == 0 {
		v["items"] = "select_at_least_one_item"
		return
	}
	seen := map[uint]bool{}
	for _, it := range items {
		if it.FoodItemID == 0 || it.VendorID == 0 {
			v["items"] = "invalid_item_or_vendor"
			return
		}
		validation.PositiveInt("items.quantity", it.Quantity, v)
		if seen[it.FoodItemID] {
			v["items"] = "duplicate_food_item"
			return
		}
		seen[it.FoodItemID] = true
	}
}

// Create: POST /quotes
// New quotes start as draft; a request may ask for pending directly, which
// skips the separate submit step. Other statuses are rejected at creation.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	clientName := ""
	if req.ClientName != nil {
		clientName = *req.ClientName
	}
	validation.Required("clientName", clientName, v)
	var items []models.QuoteItem
	if req.Items != nil {
		items = *req.Items
	}
	validateItems(items, v)
	validation.Percent("gst", req.GST, v)
	validation.Percent("discount", req.Discount, v)
	status := models.StatusDraft
	if req.Status != nil {
		status = *req.Status
		if status != models.StatusDraft && status != models.StatusPending {
			v["status"] = "must_be_draft_or_pending"
		}
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	quote := models.Quote{ClientName: clientName, Status: status, Items: items}
	if req.ClientEmail != nil {
		quote.ClientEmail = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		quote.ClientPhone = *req.ClientPhone
	}
	if req.EventDate != nil {
		quote.EventDate = *req.EventDate
	}
	if req.EventType != nil {
		quote.EventType = *req.EventType
	}
	if req.VenueAddress != nil {
		quote.VenueAddress = *req.VenueAddress
	}
	if req.GuestCount != nil {
		quote.GuestCount = *req.GuestCount
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}
	if req.GST != nil {
		quote.GST = req.GST
	} else {
		gst := h.DefaultGST
		quote.GST = &gst
	}
	if req.Discount != nil {
		quote.Discount = req.Discount
	}
	if req.MiscellaneousExpenses != nil {
		quote.MiscellaneousExpenses = *req.MiscellaneousExpenses
	}
	created, err := h.Store.AddQuote(quote)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_quote", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// Update: POST /quotes/update?id=...
// Content edits are allowed for draft, pending and rejected quotes only.
// A status change through this endpoint is limited to the draft -> pending
// submission; approval and fulfillment moves have their own endpoints with
// their own side effects.
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	current, err := h.Store.GetQuote(id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_quote", nil)
		return
	}
	if err := lifecycle.EnsureEditable(current.Status); err != nil {
		httpx.JSONError(w, http.StatusConflict, "quote_not_editable", map[string]string{"status": current.Status})
		return
	}

	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Percent("gst", req.GST, v)
	validation.Percent("discount", req.Discount, v)
	var items []models.QuoteItem
	if req.Items != nil {
		items = *req.Items
		validateItems(items, v)
	}
	updates := map[string]any{}
	if req.ClientName != nil {
		validation.Required("clientName", *req.ClientName, v)
		updates["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		updates["client_email"] = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		updates["client_phone"] = *req.ClientPhone
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.VenueAddress != nil {
		updates["venue_address"] = *req.VenueAddress
	}
	if req.GuestCount != nil {
		updates["guest_count"] = *req.GuestCount
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.GST != nil {
		updates["gst"] = *req.GST
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.MiscellaneousExpenses != nil {
		updates["miscellaneous_expenses"] = *req.MiscellaneousExpenses
	}
	if req.Status != nil && *req.Status != current.Status {
		if !(current.Status == models.StatusDraft && *req.Status == models.StatusPending) {
			v["status"] = "invalid_status_change"
		} else {
			updates["status"] = *req.Status
		}
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var itemsArg []models.QuoteItem
	if req.Items != nil {
		itemsArg = items
	}
	updated, err := h.Store.UpdateQuote(id, updates, itemsArg)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_quote", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete: POST /quotes/delete?id=...  (administrative delete)
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteQuote(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_quote", nil)
		return
	}
	if !removed {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// workflow endpoints: POST /quotes/{submit,approve,reject,start,complete}?id=...

func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, func(id uint) (*models.Quote, error) { return h.Lifecycle.Submit(id) })
}

func (h *QuoteHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApprovedBy string `json:"approvedBy"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	approver := body.ApprovedBy
	if approver == "" {
		approver = "Admin"
	}
	h.applyTransition(w, r, func(id uint) (*models.Quote, error) { return h.Lifecycle.Approve(id, approver) })
}

func (h *QuoteHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, func(id uint) (*models.Quote, error) { return h.Lifecycle.Reject(id) })
}

func (h *QuoteHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, func(id uint) (*models.Quote, error) { return h.Lifecycle.Start(id) })
}

func (h *QuoteHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, func(id uint) (*models.Quote, error) { return h.Lifecycle.Complete(id) })
}

func (h *QuoteHandler) applyTransition(w http.ResponseWriter, r *http.Request, fn func(uint) (*models.Quote, error)) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	updated, err := fn(id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if errors.Is(err, lifecycle.ErrInvalidTransition) {
		httpx.JSONError(w, http.StatusConflict, "invalid_transition", map[string]string{"detail": err.Error()})
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_status", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Totals: GET /quotes/totals?id=...
// Figures are rounded to two decimals here, at the presentation edge. The
// cost-side figures (totalCost, profitMargin) are computed for every role
// but only included for admins.
func (h *QuoteHandler) Totals(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	quote, err := h.Store.GetQuote(id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_quote", nil)
		return
	}
	foodItems, err := h.Store.FoodItems()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_food_items", nil)
		return
	}
	totals := pricing.Calculate(quote, foodItems)
	payload := map[string]any{
		"totalRetail":    pricing.Round2(totals.TotalRetail),
		"discountAmount": pricing.Round2(totals.DiscountAmount),
		"afterDiscount":  pricing.Round2(totals.AfterDiscount),
		"gstAmount":      pricing.Round2(totals.GSTAmount),
		"miscTotal":      pricing.Round2(totals.MiscTotal),
		"finalTotal":     pricing.Round2(totals.FinalTotal),
		"currency":       h.CurrencySymbol,
	}
	if middleware.RoleFrom(r) == middleware.RoleAdmin {
		payload["totalCost"] = pricing.Round2(totals.TotalCost)
		payload["profitMargin"] = pricing.Round2(totals.ProfitMargin)
	}
	httpx.JSON(w, http.StatusOK, payload)
}

// Menu: GET /quotes/menu?id=...
// The working view and the print view both read this grouping; keeping one
// code path keeps them consistent by construction.
func (h *QuoteHandler) Menu(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	quote, groups, err := h.groupedMenu(id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_quote", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"quote": quote, "groups": groups})
}

// PDF: GET /quotes/pdf?id=...
func (h *QuoteHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	quote, groups, err := h.groupedMenu(id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_quote", nil)
		return
	}
	foodItems, err := h.Store.FoodItems()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_food_items", nil)
		return
	}
	totals := pricing.Calculate(quote, foodItems)
	doc, err := pdf.RenderQuote(quote, groups, totals, h.CurrencySymbol)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_render_pdf", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=quote-"+quote.Reference+".pdf")
	if _, werr := w.Write(doc); werr != nil {
		_ = werr
	}
}

func (h *QuoteHandler) groupedMenu(id uint) (*models.Quote, []menu.CategoryGroup, error) {
	quote, err := h.Store.GetQuote(id)
	if err != nil {
		return nil, nil, err
	}
	foodItems, err := h.Store.FoodItems()
	if err != nil {
		return nil, nil, err
	}
	categories, err := h.Store.Categories()
	if err != nil {
		return nil, nil, err
	}
	vendors, err := h.Store.Vendors()
	if err != nil {
		return nil, nil, err
	}
	return quote, menu.GroupByCategory(quote.Items, foodItems, categories, vendors), nil
}
