// Package menu resolves a quote's item/vendor selections against the
// current catalog: effective vendor prices for pricing, and category
// groupings shared by the working view and the printable quote.
package menu

import "github.com/biryaniking52/catering-app/internal/models"

// UnknownVendorName labels lines whose vendor has been deleted since the
// quote was written.
const UnknownVendorName = "Unknown Vendor"

// Entry is one resolved line inside a category group.
type Entry struct {
	FoodItem   models.FoodItem `json:"foodItem"`
	Quantity   int             `json:"quantity"`
	VendorName string          `json:"vendorName"`
}

// CategoryGroup collects the resolved lines of one menu category.
type CategoryGroup struct {
	Category models.Category `json:"category"`
	Entries  []Entry         `json:"entries"`
}

// ResolveVendorPrice finds the price entry a vendor quoted for an item.
// The second return is false when the vendor never priced the item or has
// been deleted; callers skip such lines rather than failing.
func ResolveVendorPrice(item models.FoodItem, vendorID uint) (models.VendorPrice, bool) {
	for _, vp := range item.VendorPrices {
		if vp.VendorID == vendorID {
			return vp, true
		}
	}
	return models.VendorPrice{}, false
}

// GroupByCategory orders a quote's line items by menu category. Lines whose
// food item or category no longer exists are dropped silently, matching the
// calculator's skip policy so both stay consistent on partially stale data.
// Group order follows the category collection; entries within a group keep
// the order lines were encountered in the quote.
func GroupByCategory(quoteItems []models.QuoteItem, foodItems []models.FoodItem, categories []models.Category, vendors []models.Vendor) []CategoryGroup {
	itemsByID := make(map[uint]models.FoodItem, len(foodItems))
	for _, fi := range foodItems {
		itemsByID[fi.ID] = fi
	}
	vendorNames := make(map[uint]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.ID] = v.Name
	}

	entriesByCategory := make(map[uint][]Entry)
	for _, qi := range quoteItems {
		fi, ok := itemsByID[qi.FoodItemID]
		if !ok {
			continue
		}
		name, ok := vendorNames[qi.VendorID]
		if !ok {
			name = UnknownVendorName
		}
		entriesByCategory[fi.CategoryID] = append(entriesByCategory[fi.CategoryID], Entry{
			FoodItem:   fi,
			Quantity:   qi.Quantity,
			VendorName: name,
		})
	}

	groups := make([]CategoryGroup, 0, len(entriesByCategory))
	for _, c := range categories {
		if entries, ok := entriesByCategory[c.ID]; ok {
			groups = append(groups, CategoryGroup{Category: c, Entries: entries})
		}
	}
	return groups
}
