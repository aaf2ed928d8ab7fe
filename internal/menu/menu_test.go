package menu

import (
	"reflect"
	"testing"

	"github.com/biryaniking52/catering-app/internal/models"
)

func fixtures() ([]models.Category, []models.Vendor, []models.FoodItem) {
	categories := []models.Category{
		{ID: 1, Name: "Breads & Basics"},
		{ID: 2, Name: "Rice & Noodles"},
		{ID: 3, Name: "Desserts & Beverages"},
	}
	vendors := []models.Vendor{
		{ID: 1, Name: "In-House Kitchen"},
		{ID: 2, Name: "Vendor A"},
	}
	foodItems := []models.FoodItem{
		{ID: 10, Name: "Butter Naan", CategoryID: 1, VendorPrices: []models.VendorPrice{{VendorID: 2, CostPrice: 2.1, RetailPrice: 3}}},
		{ID: 11, Name: "Chicken Biryani", CategoryID: 2, VendorPrices: []models.VendorPrice{{VendorID: 1, CostPrice: 10.5, RetailPrice: 15}}},
		{ID: 12, Name: "Veg Biryani", CategoryID: 2, VendorPrices: []models.VendorPrice{{VendorID: 1, CostPrice: 8.4, RetailPrice: 12}}},
		{ID: 13, Name: "Gulab Jamun", CategoryID: 99, VendorPrices: []models.VendorPrice{{VendorID: 1, CostPrice: 3.5, RetailPrice: 5}}},
	}
	return categories, vendors, foodItems
}

func TestResolveVendorPrice(t *testing.T) {
	item := models.FoodItem{VendorPrices: []models.VendorPrice{
		{VendorID: 1, CostPrice: 10, RetailPrice: 15},
		{VendorID: 2, CostPrice: 11, RetailPrice: 14},
	}}
	vp, ok := ResolveVendorPrice(item, 2)
	if !ok || vp.RetailPrice != 14 {
		t.Fatalf("expected vendor 2 price, got %+v ok=%v", vp, ok)
	}
	if _, ok := ResolveVendorPrice(item, 3); ok {
		t.Fatal("vendor 3 never priced this item")
	}
	if _, ok := ResolveVendorPrice(models.FoodItem{}, 1); ok {
		t.Fatal("item with no vendor prices must not resolve")
	}
}

func TestGroupByCategoryOrdering(t *testing.T) {
	categories, vendors, foodItems := fixtures()
	// quote lines arrive rice-first; groups must still follow category order
	quoteItems := []models.QuoteItem{
		{FoodItemID: 12, VendorID: 1, Quantity: 20},
		{FoodItemID: 10, VendorID: 2, Quantity: 50},
		{FoodItemID: 11, VendorID: 1, Quantity: 30},
	}
	groups := GroupByCategory(quoteItems, foodItems, categories, vendors)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category.ID != 1 || groups[1].Category.ID != 2 {
		t.Fatalf("groups out of category order: %d, %d", groups[0].Category.ID, groups[1].Category.ID)
	}
	// within a category, entries keep quote scan order
	rice := groups[1].Entries
	if len(rice) != 2 || rice[0].FoodItem.ID != 12 || rice[1].FoodItem.ID != 11 {
		t.Fatalf("entry order wrong: %+v", rice)
	}
	if groups[0].Entries[0].VendorName != "Vendor A" {
		t.Fatalf("vendor name: got %q", groups[0].Entries[0].VendorName)
	}
}

func TestGroupByCategoryDropsUnresolvableLines(t *testing.T) {
	categories, vendors, foodItems := fixtures()
	quoteItems := []models.QuoteItem{
		{FoodItemID: 10, VendorID: 2, Quantity: 5},
		{FoodItemID: 777, VendorID: 1, Quantity: 5}, // food item deleted
		{FoodItemID: 13, VendorID: 1, Quantity: 5},  // category 99 does not exist
	}
	groups := GroupByCategory(quoteItems, foodItems, categories, vendors)
	if len(groups) != 1 || len(groups[0].Entries) != 1 {
		t.Fatalf("unresolvable lines must be dropped silently, got %+v", groups)
	}
}

func TestGroupByCategoryUnknownVendorName(t *testing.T) {
	categories, vendors, foodItems := fixtures()
	quoteItems := []models.QuoteItem{{FoodItemID: 11, VendorID: 42, Quantity: 5}}
	groups := GroupByCategory(quoteItems, foodItems, categories, vendors)
	if len(groups) != 1 {
		t.Fatalf("line with deleted vendor must still group, got %+v", groups)
	}
	if got := groups[0].Entries[0].VendorName; got != UnknownVendorName {
		t.Fatalf("vendor name: got %q want %q", got, UnknownVendorName)
	}
}

func TestGroupByCategoryIsDeterministic(t *testing.T) {
	categories, vendors, foodItems := fixtures()
	quoteItems := []models.QuoteItem{
		{FoodItemID: 10, VendorID: 2, Quantity: 50},
		{FoodItemID: 11, VendorID: 1, Quantity: 30},
		{FoodItemID: 12, VendorID: 1, Quantity: 20},
	}
	first := GroupByCategory(quoteItems, foodItems, categories, vendors)
	second := GroupByCategory(quoteItems, foodItems, categories, vendors)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different groupings:\n%+v\n%+v", first, second)
	}
}
