// Package pdf renders the printable quote: client and event details, the
// menu grouped by category, and the totals block.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/biryaniking52/catering-app/internal/menu"
	"github.com/biryaniking52/catering-app/internal/models"
	"github.com/biryaniking52/catering-app/internal/pricing"
)

// RenderQuote produces the PDF bytes for a quote. The grouping passed in is
// the same one the working view uses, so print and screen always agree.
func RenderQuote(q *models.Quote, groups []menu.CategoryGroup, totals pricing.Totals, currency string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(12, "Catering Quote", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(6, text.NewCol(12, "Quote "+q.Reference, props.Text{Size: 9, Align: align.Center}))
	m.AddRows(line.NewRow(4))

	m.AddRow(6,
		detailCol(6, "Client", q.ClientName),
		detailCol(6, "Event Date", q.EventDate),
	)
	m.AddRow(6,
		detailCol(6, "Contact", q.ClientPhone),
		detailCol(6, "Event Type", q.EventType),
	)
	m.AddRow(6,
		detailCol(6, "Email", q.ClientEmail),
		detailCol(6, "Guests", fmt.Sprintf("%d", q.GuestCount)),
	)
	m.AddRow(6, detailCol(12, "Venue", q.VenueAddress))
	m.AddRows(line.NewRow(4))

	for _, group := range groups {
		m.AddRow(8, text.NewCol(12, group.Category.Name, props.Text{Size: 11, Style: fontstyle.Bold}))
		for _, entry := range group.Entries {
			m.AddRow(5,
				text.NewCol(6, entry.FoodItem.Name, props.Text{Size: 9}),
				text.NewCol(3, entry.VendorName, props.Text{Size: 9}),
				text.NewCol(3, fmt.Sprintf("x %d", entry.Quantity), props.Text{Size: 9, Align: align.Right}),
			)
		}
	}
	m.AddRows(line.NewRow(4))

	addTotal(m, "Subtotal", totals.TotalRetail, currency, false)
	if totals.DiscountAmount > 0 {
		addTotal(m, "Discount", -totals.DiscountAmount, currency, false)
		addTotal(m, "After Discount", totals.AfterDiscount, currency, false)
	}
	if totals.GSTAmount > 0 {
		addTotal(m, "GST", totals.GSTAmount, currency, false)
	}
	if totals.MiscTotal > 0 {
		addMiscBlock(m, q.MiscellaneousExpenses, currency)
		addTotal(m, "Miscellaneous Total", totals.MiscTotal, currency, false)
	}
	addTotal(m, "Grand Total", totals.FinalTotal, currency, true)

	if q.Notes != "" {
		m.AddRows(line.NewRow(4))
		m.AddRow(6, text.NewCol(12, "Notes: "+q.Notes, props.Text{Size: 8}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func detailCol(size int, label, value string) core.Col {
	return col.New(size).Add(
		text.New(label+": "+value, props.Text{Size: 9}),
	)
}

func addTotal(m core.Maroto, label string, amount float64, currency string, grand bool) {
	style := fontstyle.Normal
	size := 9.0
	if grand {
		style = fontstyle.Bold
		size = 11
	}
	m.AddRow(6,
		text.NewCol(8, label, props.Text{Size: size, Style: style}),
		text.NewCol(4, fmt.Sprintf("%s%.2f", currency, pricing.Round2(amount)), props.Text{Size: size, Style: style, Align: align.Right}),
	)
}

// addMiscBlock itemizes the expense slots that actually carry a value,
// in slot-table order.
func addMiscBlock(m core.Maroto, expenses models.MiscellaneousExpenses, currency string) {
	m.AddRow(6, text.NewCol(12, "Miscellaneous Expenses", props.Text{Size: 9, Style: fontstyle.Bold}))
	for _, slot := range models.ExpenseSlots {
		lineItem, ok := expenses[slot.Key]
		if !ok || lineItem.Quantity == 0 || lineItem.Price == 0 {
			continue
		}
		m.AddRow(5,
			text.NewCol(6, slot.Label, props.Text{Size: 8}),
			text.NewCol(3, fmt.Sprintf("%.0f x %s%.2f", lineItem.Quantity, currency, lineItem.Price), props.Text{Size: 8}),
			text.NewCol(3, fmt.Sprintf("%s%.2f", currency, lineItem.Quantity*lineItem.Price), props.Text{Size: 8, Align: align.Right}),
		)
	}
}
