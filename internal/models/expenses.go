package models

// ExpenseLine is an optional quantity/price pair for one expense slot.
// Absent fields count as zero.
type ExpenseLine struct {
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// MiscellaneousExpenses holds flat event expenses keyed by slot. Only the
// keys listed in ExpenseSlots contribute to totals.
type MiscellaneousExpenses map[string]ExpenseLine

// ExpenseSlot names one miscellaneous expense category.
type ExpenseSlot struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ExpenseSlots is the ordered set of expense categories. Adding a new
// category is a data change here, not a schema change.
var ExpenseSlots = []ExpenseSlot{
	{Key: "transport", Label: "Transport"},
	{Key: "waiters", Label: "Waiters"},
	{Key: "tables", Label: "Tables"},
	{Key: "kitchenStaff", Label: "Kitchen Staff"},
	{Key: "kamlaka", Label: "Kamlaka"},
	{Key: "ice", Label: "Ice"},
	{Key: "gas", Label: "Gas"},
	{Key: "crockeryCutlery", Label: "Crockery & Cutlery"},
}
