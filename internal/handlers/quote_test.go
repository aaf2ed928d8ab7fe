package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/biryaniking52/catering-app/internal/lifecycle"
	"github.com/biryaniking52/catering-app/internal/middleware"
	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/store"
)

func newQuoteHandler(st *store.Store) *QuoteHandler {
	return NewQuoteHandler(st, lifecycle.NewService(st), 5, "₹")
}

// seedCatalog creates one category, one vendor and one priced food item
// (cost 12, retail 20) and returns the item.
func seedCatalog(t *testing.T, st *store.Store) models.FoodItem {
	t.Helper()
	if _, err := st.AddCategory(models.Category{Name: "Rice & Noodles"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if _, err := st.AddVendor(models.Vendor{Name: "In-House Kitchen"}); err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	item, err := st.AddFoodItem(models.FoodItem{
		Name:         "Chicken Biryani",
		CategoryID:   1,
		Diet:         models.DietNonVeg,
		VendorPrices: []models.VendorPrice{{VendorID: 1, CostPrice: 12, RetailPrice: 20}},
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func TestQuoteCreateValidation(t *testing.T) {
	h := newQuoteHandler(testStore(t))

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing client name", map[string]any{
			"items": []map[string]any{{"foodItemId": 1, "vendorId": 1, "quantity": 10}},
		}},
		{"empty selection", map[string]any{"clientName": "John Doe"}},
		{"non-positive quantity", map[string]any{
			"clientName": "John Doe",
			"items":      []map[string]any{{"foodItemId": 1, "vendorId": 1, "quantity": 0}},
		}},
		{"duplicate food item", map[string]any{
			"clientName": "John Doe",
			"items": []map[string]any{
				{"foodItemId": 1, "vendorId": 1, "quantity": 5},
				{"foodItemId": 1, "vendorId": 2, "quantity": 5},
			},
		}},
		{"discount above 100", map[string]any{
			"clientName": "John Doe",
			"discount":   150,
			"items":      []map[string]any{{"foodItemId": 1, "vendorId": 1, "quantity": 5}},
		}},
		{"created as approved", map[string]any{
			"clientName": "John Doe",
			"status":     models.StatusApproved,
			"items":      []map[string]any{{"foodItemId": 1, "vendorId": 1, "quantity": 5}},
		}},
	}
	for _, c := range cases {
		rec := doJSON(t, h.Create, http.MethodPost, "/quotes", c.body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400 (%s)", c.name, rec.Code, rec.Body)
		}
	}
}

func TestQuoteCreateDefaults(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)

	rec := doJSON(t, h.Create, http.MethodPost, "/quotes", map[string]any{
		"clientName": "John Doe",
		"items":      []map[string]any{{"foodItemId": 1, "vendorId": 1, "quantity": 10}},
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	body := decode(t, rec)
	if body["status"] != models.StatusDraft {
		t.Errorf("status: got %v want draft", body["status"])
	}
	if body["gst"].(float64) != 5 {
		t.Errorf("gst default: got %v want 5", body["gst"])
	}
	if !strings.HasPrefix(body["reference"].(string), "Q-") {
		t.Errorf("reference: %v", body["reference"])
	}

	// pending may be requested directly, skipping the submit step
	rec = doJSON(t, h.Create, http.MethodPost, "/quotes", map[string]any{
		"clientName": "Jane Smith",
		"status":     models.StatusPending,
		"items":      []map[string]any{{"foodItemId": 1, "vendorId": 1, "quantity": 10}},
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("pending create: status %d", rec.Code)
	}
	if body := decode(t, rec); body["status"] != models.StatusPending {
		t.Errorf("status: got %v want pending", body["status"])
	}
}

func TestQuoteUpdateLockedAfterApproval(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	q, err := st.AddQuote(models.Quote{
		ClientName: "Jane Smith",
		Status:     models.StatusApproved,
		Items:      []models.QuoteItem{{FoodItemID: 1, VendorID: 1, Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	rec := doJSON(t, h.Update, http.MethodPost, fmt.Sprintf("/quotes/update?id=%d", q.ID),
		map[string]any{"notes": "changed my mind"}, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409: %s", rec.Code, rec.Body)
	}
	if body := decode(t, rec); body["error"] != "quote_not_editable" {
		t.Fatalf("error: %v", body["error"])
	}

	got, _ := st.GetQuote(q.ID)
	if got.Notes != "" {
		t.Fatalf("locked quote was modified: %q", got.Notes)
	}
}

func TestQuoteUpdateStatusChanges(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	q, _ := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		Items:      []models.QuoteItem{{FoodItemID: 1, VendorID: 1, Quantity: 10}},
	})

	// draft -> pending through the edit endpoint is the submit shortcut
	rec := doJSON(t, h.Update, http.MethodPost, fmt.Sprintf("/quotes/update?id=%d", q.ID),
		map[string]any{"status": models.StatusPending}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("draft->pending: status %d: %s", rec.Code, rec.Body)
	}

	// pending -> approved must go through the approve endpoint instead
	rec = doJSON(t, h.Update, http.MethodPost, fmt.Sprintf("/quotes/update?id=%d", q.ID),
		map[string]any{"status": models.StatusApproved}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("pending->approved via edit: status %d, want 400", rec.Code)
	}
}

func TestQuoteUpdateReplacesItems(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	q, _ := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		Items: []models.QuoteItem{
			{FoodItemID: 1, VendorID: 1, Quantity: 10},
			{FoodItemID: 2, VendorID: 1, Quantity: 5},
		},
	})

	rec := doJSON(t, h.Update, http.MethodPost, fmt.Sprintf("/quotes/update?id=%d", q.ID),
		map[string]any{"items": []map[string]any{{"foodItemId": 3, "vendorId": 1, "quantity": 7}}}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	got, _ := st.GetQuote(q.ID)
	if len(got.Items) != 1 || got.Items[0].FoodItemID != 3 {
		t.Fatalf("items not replaced: %+v", got.Items)
	}
}

func TestQuoteUpdateMiscExpensesFlowsIntoTotals(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	item := seedCatalog(t, st)
	gst, discount := 0.0, 0.0
	q, err := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		GST:        &gst,
		Discount:   &discount,
		Items:      []models.QuoteItem{{FoodItemID: item.ID, VendorID: 1, Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	rec := doJSON(t, h.Update, http.MethodPost, fmt.Sprintf("/quotes/update?id=%d", q.ID), map[string]any{
		"discount": 10,
		"gst":      5,
		"miscellaneousExpenses": map[string]any{
			"transport": map[string]any{"quantity": 1, "price": 30},
		},
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d: %s", rec.Code, rec.Body)
	}
	body := decode(t, rec)
	misc, ok := body["miscellaneousExpenses"].(map[string]any)
	if !ok || misc["transport"] == nil {
		t.Fatalf("misc expenses missing from response: %v", body["miscellaneousExpenses"])
	}

	// retail 200, discount 20, gst 9, misc 30
	rec = doJSON(t, h.Totals, http.MethodGet, fmt.Sprintf("/quotes/totals?id=%d", q.ID), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("totals: status %d", rec.Code)
	}
	totals := decode(t, rec)
	if totals["miscTotal"].(float64) != 30 {
		t.Errorf("miscTotal: got %v want 30", totals["miscTotal"])
	}
	if totals["finalTotal"].(float64) != 219 {
		t.Errorf("finalTotal: got %v want 219", totals["finalTotal"])
	}
}

func TestQuoteWorkflowEndpoints(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	q, _ := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		Items:      []models.QuoteItem{{FoodItemID: 1, VendorID: 1, Quantity: 10}},
	})
	target := func(action string) string { return fmt.Sprintf("/quotes/%s?id=%d", action, q.ID) }

	rec := doJSON(t, h.Submit, http.MethodPost, target("submit"), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: status %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, h.Approve, http.MethodPost, target("approve"), map[string]string{"approvedBy": "Priya"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("approve: status %d: %s", rec.Code, rec.Body)
	}
	body := decode(t, rec)
	if body["approvedBy"] != "Priya" {
		t.Errorf("approvedBy: got %v", body["approvedBy"])
	}
	if body["approvedAt"] == nil {
		t.Error("approvedAt not stamped")
	}

	// approving twice is an invalid transition
	rec = doJSON(t, h.Approve, http.MethodPost, target("approve"), nil, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("double approve: status %d, want 409", rec.Code)
	}

	rec = doJSON(t, h.Start, http.MethodPost, target("start"), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("start: status %d", rec.Code)
	}
	rec = doJSON(t, h.Complete, http.MethodPost, target("complete"), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: status %d", rec.Code)
	}

	rec = doJSON(t, h.Submit, http.MethodPost, "/quotes/submit?id=9999", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing quote: status %d, want 404", rec.Code)
	}
}

func TestQuoteTotalsRoleFiltering(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	item := seedCatalog(t, st)
	gst, discount := 5.0, 10.0
	q, err := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		GST:        &gst,
		Discount:   &discount,
		MiscellaneousExpenses: models.MiscellaneousExpenses{
			"transport": {Quantity: 1, Price: 30},
		},
		Items: []models.QuoteItem{{FoodItemID: item.ID, VendorID: 1, Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	target := fmt.Sprintf("/quotes/totals?id=%d", q.ID)

	rec := doJSON(t, h.Totals, http.MethodGet, target, nil, middleware.RoleStaff)
	if rec.Code != http.StatusOK {
		t.Fatalf("staff totals: status %d", rec.Code)
	}
	body := decode(t, rec)
	if body["finalTotal"].(float64) != 219 {
		t.Errorf("finalTotal: got %v want 219", body["finalTotal"])
	}
	if _, ok := body["totalCost"]; ok {
		t.Error("staff response includes totalCost")
	}
	if _, ok := body["profitMargin"]; ok {
		t.Error("staff response includes profitMargin")
	}
	if body["currency"] != "₹" {
		t.Errorf("currency: got %v", body["currency"])
	}

	rec = doJSON(t, h.Totals, http.MethodGet, target, nil, middleware.RoleAdmin)
	body = decode(t, rec)
	if body["totalCost"].(float64) != 120 {
		t.Errorf("admin totalCost: got %v want 120", body["totalCost"])
	}
	if body["profitMargin"].(float64) != 80 {
		t.Errorf("admin profitMargin: got %v want 80", body["profitMargin"])
	}
}

func TestQuoteMenuGrouping(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	item := seedCatalog(t, st)
	q, _ := st.AddQuote(models.Quote{
		ClientName: "John Doe",
		Items:      []models.QuoteItem{{FoodItemID: item.ID, VendorID: 1, Quantity: 10}},
	})

	rec := doJSON(t, h.Menu, http.MethodGet, fmt.Sprintf("/quotes/menu?id=%d", q.ID), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	body := decode(t, rec)
	groups, ok := body["groups"].([]any)
	if !ok || len(groups) != 1 {
		t.Fatalf("groups: %v", body["groups"])
	}
	group := groups[0].(map[string]any)
	category := group["category"].(map[string]any)
	if category["name"] != "Rice & Noodles" {
		t.Errorf("category: %v", category["name"])
	}
}

func TestQuoteListFilters(t *testing.T) {
	st := testStore(t)
	h := newQuoteHandler(st)
	statuses := []string{models.StatusDraft, models.StatusPending, models.StatusApproved}
	for i, status := range statuses {
		_, err := st.AddQuote(models.Quote{
			ClientName: fmt.Sprintf("Client %d", i),
			Status:     status,
			Items:      []models.QuoteItem{{FoodItemID: 1, VendorID: 1, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("seed quote: %v", err)
		}
	}

	rec := doJSON(t, h.List, http.MethodGet, "/quotes?status=pending", nil, "")
	if body := decode(t, rec); body["total"].(float64) != 1 {
		t.Fatalf("status filter: total %v", body["total"])
	}

	rec = doJSON(t, h.List, http.MethodGet, "/quotes?q=client+2", nil, "")
	if body := decode(t, rec); body["total"].(float64) != 1 {
		t.Fatalf("search filter: total %v", body["total"])
	}

	rec = doJSON(t, h.List, http.MethodGet, "/quotes?status=all", nil, "")
	if body := decode(t, rec); body["total"].(float64) != 3 {
		t.Fatalf("status=all: total %v", body["total"])
	}
}
