// Package pricing computes the financial breakdown of a quote. Calculate is
// a pure function: all state comes in as arguments and the same inputs
// always produce the same totals.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/biryaniking52/catering-app/internal/menu"
	"github.com/biryaniking52/catering-app/internal/models"
)

// Totals is the full breakdown for a quote. TotalCost and ProfitMargin are
// admin-facing figures; the presentation layer decides whether to show
// them, they are always computed.
type Totals struct {
	TotalCost      float64 `json:"totalCost"`
	TotalRetail    float64 `json:"totalRetail"`
	DiscountAmount float64 `json:"discountAmount"`
	AfterDiscount  float64 `json:"afterDiscount"`
	GSTAmount      float64 `json:"gstAmount"`
	MiscTotal      float64 `json:"miscTotal"`
	FinalTotal     float64 `json:"finalTotal"`
	ProfitMargin   float64 `json:"profitMargin"`
}

var hundred = decimal.NewFromInt(100)

// Calculate derives all totals for a quote from its line items and the
// current food-item catalog.
//
// The sequence is fixed: line sums, then discount on the retail subtotal,
// then GST on the discounted amount, then flat miscellaneous expenses on
// top. Lines whose food item is gone or whose vendor never priced the item
// are skipped entirely; they contribute zero everywhere. Nil discount/gst
// mean 0. An empty selection yields all-zero totals.
//
// Accumulation is decimal end to end; values are converted to float64 only
// for the result, and rounding to two decimals is left to presentation.
func Calculate(q *models.Quote, foodItems []models.FoodItem) Totals {
	itemsByID := make(map[uint]models.FoodItem, len(foodItems))
	for _, fi := range foodItems {
		itemsByID[fi.ID] = fi
	}

	totalCost := decimal.Zero
	totalRetail := decimal.Zero
	for _, line := range q.Items {
		fi, ok := itemsByID[line.FoodItemID]
		if !ok {
			continue
		}
		vp, ok := menu.ResolveVendorPrice(fi, line.VendorID)
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		totalCost = totalCost.Add(decimal.NewFromFloat(vp.CostPrice).Mul(qty))
		totalRetail = totalRetail.Add(decimal.NewFromFloat(vp.RetailPrice).Mul(qty))
	}

	discount := decimal.Zero
	if q.Discount != nil {
		discount = decimal.NewFromFloat(*q.Discount)
	}
	gst := decimal.Zero
	if q.GST != nil {
		gst = decimal.NewFromFloat(*q.GST)
	}

	subtotal := totalRetail
	discountAmount := subtotal.Mul(discount).Div(hundred)
	afterDiscount := subtotal.Sub(discountAmount)
	gstAmount := afterDiscount.Mul(gst).Div(hundred)
	miscTotal := MiscTotal(q.MiscellaneousExpenses)
	finalTotal := afterDiscount.Add(gstAmount).Add(miscTotal)

	return Totals{
		TotalCost:      totalCost.InexactFloat64(),
		TotalRetail:    subtotal.InexactFloat64(),
		DiscountAmount: discountAmount.InexactFloat64(),
		AfterDiscount:  afterDiscount.InexactFloat64(),
		GSTAmount:      gstAmount.InexactFloat64(),
		MiscTotal:      miscTotal.InexactFloat64(),
		FinalTotal:     finalTotal.InexactFloat64(),
		// Margin compares vendor cost to pre-discount retail. It is about
		// vendor markup, not what the client is ultimately billed.
		ProfitMargin: totalRetail.Sub(totalCost).InexactFloat64(),
	}
}

// MiscTotal sums quantity x price over the fixed expense slots. Absent
// slots and absent sub-fields count as zero; keys outside the slot table
// are ignored.
func MiscTotal(expenses models.MiscellaneousExpenses) decimal.Decimal {
	total := decimal.Zero
	if expenses == nil {
		return total
	}
	for _, slot := range models.ExpenseSlots {
		line, ok := expenses[slot.Key]
		if !ok {
			continue
		}
		qty := decimal.NewFromFloat(line.Quantity)
		price := decimal.NewFromFloat(line.Price)
		total = total.Add(qty.Mul(price))
	}
	return total
}

// Round2 rounds a computed amount for display. Totals are kept at full
// precision internally; call this at the edge only.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
