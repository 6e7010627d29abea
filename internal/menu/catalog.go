// Package menu holds the static, read-only menu catalog. Items are
// loaded as a constant table; there is no mutation path and no backing
// store.
package menu

import "table-order/internal/domain"

const (
	CategoryStarters = "starters"
	CategoryMains    = "mains"
	CategoryDrinks   = "drinks"
	CategoryDesserts = "desserts"
)

// Categories lists the menu sections in display order.
var Categories = []string{CategoryStarters, CategoryMains, CategoryDrinks, CategoryDesserts}

// Prices are in UGX.
var items = []domain.MenuItem{
	{ID: "1", Name: "Grilled Chicken Wings", Description: "Juicy chicken wings marinated in herbs and spices, grilled to perfection", Price: 15000, Category: CategoryStarters, Image: "https://placehold.co/400x300?text=Grilled+Chicken+Wings"},
	{ID: "2", Name: "Spring Rolls", Description: "Crispy vegetable spring rolls served with sweet chili sauce", Price: 8000, Category: CategoryStarters, Image: "https://placehold.co/400x300?text=Spring+Rolls"},
	{ID: "3", Name: "Samosas", Description: "Traditional pastries filled with spiced vegetables or meat", Price: 5000, Category: CategoryStarters, Image: "https://placehold.co/400x300?text=Samosas"},
	{ID: "4", Name: "Grilled Tilapia", Description: "Fresh tilapia grilled with lemon and herbs, served with rice and vegetables", Price: 25000, Category: CategoryMains, Image: "https://placehold.co/400x300?text=Grilled+Tilapia"},
	{ID: "5", Name: "Beef Stew", Description: "Tender beef slow-cooked with local spices, served with posho or rice", Price: 20000, Category: CategoryMains, Image: "https://placehold.co/400x300?text=Beef+Stew"},
	{ID: "6", Name: "Chicken Curry", Description: "Aromatic chicken curry with coconut milk and spices", Price: 18000, Category: CategoryMains, Image: "https://placehold.co/400x300?text=Chicken+Curry"},
	{ID: "7", Name: "Vegetarian Pasta", Description: "Fresh pasta with seasonal vegetables in tomato basil sauce", Price: 16000, Category: CategoryMains, Image: "https://placehold.co/400x300?text=Vegetarian+Pasta"},
	{ID: "8", Name: "Passion Juice", Description: "Fresh passion fruit juice, naturally sweet and refreshing", Price: 6000, Category: CategoryDrinks, Image: "https://placehold.co/400x300?text=Passion+Juice"},
	{ID: "9", Name: "Mango Smoothie", Description: "Creamy mango smoothie made with fresh mangoes and yogurt", Price: 8000, Category: CategoryDrinks, Image: "https://placehold.co/400x300?text=Mango+Smoothie"},
	{ID: "10", Name: "Coffee", Description: "Freshly brewed Ugandan coffee, served hot", Price: 4000, Category: CategoryDrinks, Image: "https://placehold.co/400x300?text=Coffee"},
	{ID: "11", Name: "Soda", Description: "Assorted soft drinks - Coca Cola, Fanta, Sprite", Price: 3000, Category: CategoryDrinks, Image: "https://placehold.co/400x300?text=Soda"},
	{ID: "12", Name: "Chocolate Cake", Description: "Rich chocolate cake with creamy frosting", Price: 12000, Category: CategoryDesserts, Image: "https://placehold.co/400x300?text=Chocolate+Cake"},
	{ID: "13", Name: "Fruit Salad", Description: "Fresh seasonal fruits with honey dressing", Price: 8000, Category: CategoryDesserts, Image: "https://placehold.co/400x300?text=Fruit+Salad"},
	{ID: "14", Name: "Ice Cream", Description: "Vanilla, chocolate, or strawberry ice cream", Price: 6000, Category: CategoryDesserts, Image: "https://placehold.co/400x300?text=Ice+Cream"},
}

// All returns a copy of the full catalog in display order.
func All() []domain.MenuItem {
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}

// ByCategory returns the items belonging to one menu section.
func ByCategory(category string) []domain.MenuItem {
	var out []domain.MenuItem
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// ByID looks up a single catalog entry.
func ByID(id string) (domain.MenuItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.MenuItem{}, false
}
