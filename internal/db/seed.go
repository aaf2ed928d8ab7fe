package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/biryaniking52/catering-app/internal/models"
)

// Seed loads the default catering data set: menu categories, vendors,
// walk-in customers, a starter menu with per-vendor prices, and two sample
// quotes. Safe to run repeatedly; existing rows (matched by name) are kept.
func Seed(db *gorm.DB) {
	seedCategories(db)
	seedVendors(db)
	seedCustomers(db)
	seedFoodItems(db)
	seedQuotes(db)
}

func seedCategories(db *gorm.DB) {
	base := []models.Category{
		{Name: "Breads & Basics", Description: "Fresh breads and essential accompaniments"},
		{Name: "Salads & Accompaniments", Description: "Fresh salads and side dishes"},
		{Name: "Snacks & Quick Bites", Description: "Light snacks and quick bites"},
		{Name: "Soups", Description: "Hot and comforting soups"},
		{Name: "Starters - Vegetarian", Description: "Vegetarian appetizers and starters"},
		{Name: "Starters - Non-Vegetarian", Description: "Non-vegetarian appetizers and starters"},
		{Name: "Main Course - Chicken", Description: "Chicken main course dishes"},
		{Name: "Main Course - Mutton", Description: "Mutton main course dishes"},
		{Name: "Main Course - Seafood", Description: "Seafood main course dishes"},
		{Name: "Rice & Noodles", Description: "Rice dishes and noodle preparations"},
		{Name: "Arabic Specialties", Description: "Authentic Arabic dishes"},
		{Name: "Egg Items", Description: "Egg-based dishes"},
		{Name: "Desserts & Beverages", Description: "Sweet treats and refreshing drinks"},
	}
	for _, c := range base {
		var existing models.Category
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&c)
		}
	}
}

func seedVendors(db *gorm.DB) {
	base := []models.Vendor{
		{Name: "In-House Kitchen", ContactPerson: "Chef Ramesh", Phone: "555-1000", Email: "kitchen@biryaniking52.com"},
		{Name: "Spice Paradise Suppliers", ContactPerson: "Anil Kumar", Phone: "555-2000", Email: "anil@spiceparadise.com"},
		{Name: "Fresh Farms Co.", ContactPerson: "Priya Sharma", Phone: "555-3000", Email: "priya@freshfarms.com"},
		{Name: "Vendor A", ContactPerson: "Vendor A Contact", Phone: "555-4000", Email: "vendora@example.com"},
		{Name: "Vendor B", ContactPerson: "Vendor B Contact", Phone: "555-5000", Email: "vendorb@example.com"},
		{Name: "Vendor C", ContactPerson: "Vendor C Contact", Phone: "555-6000", Email: "vendorc@example.com"},
		{Name: "Vendor D", ContactPerson: "Vendor D Contact", Phone: "555-7000", Email: "vendord@example.com"},
	}
	for _, v := range base {
		var existing models.Vendor
		if err := db.Where("name = ?", v.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&v)
		}
	}
}

func seedCustomers(db *gorm.DB) {
	base := []models.Customer{
		{Name: "Rajesh Kumar", Email: "rajesh.kumar@example.com", Phone: "9876543210", Address: "123 Main Street, Mumbai"},
		{Name: "Priya Sharma", Email: "priya.sharma@example.com", Phone: "9876543211", Address: "456 Park Avenue, Delhi"},
		{Name: "Amit Patel", Email: "amit.patel@example.com", Phone: "9876543212", Address: "789 Business District, Bangalore"},
	}
	for _, c := range base {
		var existing models.Customer
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&c)
		}
	}
}

// costOf applies the house convention for default menu rows: cost is 70% of
// retail, rounded to paise.
func costOf(retail float64) float64 {
	return float64(int(retail*0.7*100+0.5)) / 100
}

func seedFoodItems(db *gorm.DB) {
	type row struct {
		name, desc, category, diet, vendor string
		retail                             float64
	}
	rows := []row{
		{"Plain Naan", "Soft, leavened flatbread", "Breads & Basics", models.DietVeg, "Vendor A", 2.00},
		{"Butter Naan", "Naan brushed with butter", "Breads & Basics", models.DietVeg, "Vendor A", 3.00},
		{"Garlic Naan", "Naan with garlic and herbs", "Breads & Basics", models.DietVeg, "Vendor A", 4.00},
		{"Roti", "Whole wheat flatbread", "Breads & Basics", models.DietVeg, "Vendor A", 1.50},
		{"Garden Salad", "Fresh mixed greens with vinaigrette", "Salads & Accompaniments", models.DietVeg, "Vendor B", 8.50},
		{"Raita", "Yogurt with cucumber and spices", "Salads & Accompaniments", models.DietVeg, "Vendor B", 5.00},
		{"Papad", "Crispy lentil crackers", "Salads & Accompaniments", models.DietVeg, "Vendor B", 3.00},
		{"Samosa (Veg)", "Crispy pastry with spiced potato filling", "Snacks & Quick Bites", models.DietVeg, "Vendor C", 3.00},
		{"Pakora", "Mixed vegetable fritters", "Snacks & Quick Bites", models.DietVeg, "Vendor C", 4.50},
		{"Tomato Soup", "Creamy tomato soup", "Soups", models.DietVeg, "Vendor C", 6.00},
		{"Chicken Soup", "Clear chicken soup", "Soups", models.DietNonVeg, "Vendor C", 8.00},
		{"Paneer Tikka", "Grilled cottage cheese with spices", "Starters - Vegetarian", models.DietVeg, "Vendor C", 12.00},
		{"Chicken 65", "Spicy fried chicken appetizer", "Starters - Non-Vegetarian", models.DietNonVeg, "Vendor C", 14.00},
		{"Tandoori Chicken", "Yogurt-marinated grilled chicken", "Starters - Non-Vegetarian", models.DietNonVeg, "Vendor C", 16.00},
		{"Butter Chicken", "Chicken in creamy tomato gravy", "Main Course - Chicken", models.DietNonVeg, "In-House Kitchen", 18.00},
		{"Mutton Rogan Josh", "Kashmiri mutton curry", "Main Course - Mutton", models.DietNonVeg, "In-House Kitchen", 22.00},
		{"Chicken Biryani", "Fragrant rice with spiced chicken", "Rice & Noodles", models.DietNonVeg, "In-House Kitchen", 15.00},
		{"Veg Biryani", "Fragrant rice with vegetables", "Rice & Noodles", models.DietVeg, "In-House Kitchen", 12.00},
		{"Gulab Jamun", "Milk dumplings in sugar syrup", "Desserts & Beverages", models.DietVeg, "Vendor D", 5.00},
		{"Masala Chai", "Spiced Indian tea", "Desserts & Beverages", models.DietVeg, "Vendor D", 2.50},
	}
	for _, r := range rows {
		var existing models.FoodItem
		if err := db.Where("name = ?", r.name).First(&existing).Error; err != gorm.ErrRecordNotFound {
			continue
		}
		var category models.Category
		if err := db.Where("name = ?", r.category).First(&category).Error; err != nil {
			continue
		}
		var vendor models.Vendor
		if err := db.Where("name = ?", r.vendor).First(&vendor).Error; err != nil {
			continue
		}
		db.Create(&models.FoodItem{
			Name:        r.name,
			Description: r.desc,
			CategoryID:  category.ID,
			Diet:        r.diet,
			VendorPrices: []models.VendorPrice{
				{VendorID: vendor.ID, CostPrice: costOf(r.retail), RetailPrice: r.retail},
			},
		})
	}
}

func seedQuotes(db *gorm.DB) {
	var count int64
	db.Model(&models.Quote{}).Count(&count)
	if count > 0 {
		return
	}
	var naan, biryani models.FoodItem
	if err := db.Where("name = ?", "Butter Naan").First(&naan).Error; err != nil {
		return
	}
	if err := db.Where("name = ?", "Chicken Biryani").First(&biryani).Error; err != nil {
		return
	}
	pending := models.Quote{
		Reference:    models.NewReference(),
		ClientName:   "John Doe",
		ClientEmail:  "john@example.com",
		ClientPhone:  "555-0123",
		EventDate:    "2026-12-15",
		EventType:    "Corporate Event",
		VenueAddress: "123 Business Park, Mumbai",
		GuestCount:   50,
		Status:       models.StatusPending,
		Notes:        "Please arrange for vegetarian options",
		Items: []models.QuoteItem{
			{FoodItemID: naan.ID, VendorID: naan.VendorPrices[0].VendorID, Quantity: 50},
			{FoodItemID: biryani.ID, VendorID: biryani.VendorPrices[0].VendorID, Quantity: 50},
		},
	}
	db.Create(&pending)

	now := time.Now()
	approved := models.Quote{
		Reference:    models.NewReference(),
		ClientName:   "Jane Smith",
		ClientEmail:  "jane@example.com",
		ClientPhone:  "555-0456",
		EventDate:    "2026-12-20",
		EventType:    "Wedding",
		VenueAddress: "456 Garden Palace, Delhi",
		GuestCount:   150,
		Status:       models.StatusApproved,
		Notes:        "Outdoor venue, need delivery by 4 PM",
		ApprovedAt:   &now,
		ApprovedBy:   "Admin",
		Items: []models.QuoteItem{
			{FoodItemID: biryani.ID, VendorID: biryani.VendorPrices[0].VendorID, Quantity: 150},
		},
	}
	db.Create(&approved)
}
