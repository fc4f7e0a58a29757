package models

type Drink struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}

// InitialDrinks is the fixed seed catalog, applied only when the drinks
// key is completely absent from the store.
var InitialDrinks = []Drink{
	{ID: "1", Name: "Café Normal", Price: 2.0, Category: "Café", Description: "Un café traditionnel de qualité"},
	{ID: "2", Name: "Espresso", Price: 2.5, Category: "Café", Description: "Un café fort et concentré"},
	{ID: "3", Name: "Cappuccino", Price: 3.5, Category: "Café", Description: "Espresso, lait mousseux et cacao"},
	{ID: "4", Name: "Latte", Price: 4.0, Category: "Café", Description: "Espresso avec beaucoup de lait"},
	{ID: "5", Name: "Thé Vert", Price: 3.0, Category: "Thé", Description: "Thé vert bio"},
	{ID: "6", Name: "Jus d'Orange", Price: 3.5, Category: "Jus", Description: "Pressé à la minute"},
	{ID: "7", Name: "Jus de Banane", Price: 3.8, Category: "Jus", Description: "Onctueux et rafraîchissant"},
	{ID: "8", Name: "Panaché", Price: 4.0, Category: "Boisson", Description: "Bière et limonade"},
	{ID: "9", Name: "Petit Déjeuner", Price: 8.5, Category: "Repas", Description: "Café, jus d'orange et viennoiserie"},
	{ID: "10", Name: "Lait au Chocolat", Price: 3.2, Category: "Boisson", Description: "Lait chaud avec du chocolat artisanal"},
	{ID: "11", Name: "Coca-Cola", Price: 3.0, Category: "Soda", Description: "Classique et rafraîchissant"},
	{ID: "12", Name: "Fanta", Price: 3.0, Category: "Soda", Description: "Saveur orange pétillante"},
	{ID: "13", Name: "Eau Minérale Plate", Price: 2.5, Category: "Eau", Description: "Eau minérale naturelle"},
	{ID: "14", Name: "Eau Minérale Gazeuse", Price: 2.7, Category: "Eau", Description: "Eau minérale pétillante"},
}

// SeedDrinks returns a fresh copy of the seed catalog so callers can
// mutate the result without touching the seed itself.
func SeedDrinks() []Drink {
	drinks := make([]Drink, len(InitialDrinks))
	copy(drinks, InitialDrinks)
	return drinks
}
