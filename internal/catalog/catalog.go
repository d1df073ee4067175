// Package catalog holds the static category and product tables used for
// grouping, display metadata, and category suggestion. The curated product
// list is a heuristic aid for autocomplete and categorization — it is not
// meant to be exhaustive or authoritative.
package catalog

import "strings"

// Category is the closed set of coarse grouping tags. Anything that does not
// resolve to a known category falls back to Other.
type Category string

const (
	FruitsVegetables Category = "Fruits & Vegetables"
	DairyEggs        Category = "Dairy & Eggs"
	MeatSeafood      Category = "Meat & Seafood"
	Bakery           Category = "Bakery"
	Pantry           Category = "Pantry"
	Beverages        Category = "Beverages"
	Snacks           Category = "Snacks"
	Frozen           Category = "Frozen"
	Household        Category = "Household"
	PersonalCare     Category = "Personal Care"
	Other            Category = "Other"
)

// Info carries display metadata for a category (icon names follow the
// Ionicons set used by the mobile client).
type Info struct {
	Name  Category
	Icon  string
	Color string
}

// Categories is the master category table. Its order doubles as the default
// ("Custom") store layout.
var Categories = []Info{
	{Name: FruitsVegetables, Icon: "leaf-outline", Color: "#4CAF50"},
	{Name: DairyEggs, Icon: "egg-outline", Color: "#FFC107"},
	{Name: MeatSeafood, Icon: "fish-outline", Color: "#F44336"},
	{Name: Bakery, Icon: "pizza-outline", Color: "#795548"},
	{Name: Pantry, Icon: "cube-outline", Color: "#FF9800"},
	{Name: Beverages, Icon: "beer-outline", Color: "#2196F3"},
	{Name: Snacks, Icon: "fast-food-outline", Color: "#9C27B0"},
	{Name: Frozen, Icon: "snow-outline", Color: "#00BCD4"},
	{Name: Household, Icon: "home-outline", Color: "#607D8B"},
	{Name: PersonalCare, Icon: "body-outline", Color: "#E91E63"},
	{Name: Other, Icon: "ellipsis-horizontal-outline", Color: "#9E9E9E"},
}

// All returns the category names in master order.
func All() []Category {
	out := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, c.Name)
	}
	return out
}

// Color returns the display color for a category, falling back to the Other
// color for unknown names.
func Color(cat Category) string {
	for _, c := range Categories {
		if c.Name == cat {
			return c.Color
		}
	}
	return "#9E9E9E"
}

// Icon returns the icon name for a category, falling back to the Other icon.
func Icon(cat Category) string {
	for _, c := range Categories {
		if c.Name == cat {
			return c.Icon
		}
	}
	return "ellipsis-horizontal-outline"
}

// Units lists the supported quantity units. The first entry is the
// application-wide default.
var Units = []string{
	"pcs", "kg", "g", "lb", "oz", "L", "ml",
	"pack", "bottle", "can", "box", "bag",
}

// Entry associates a curated product name with its typical category.
type Entry struct {
	Name     string
	Category Category
}

// CommonProducts is the curated product table, ordered by category. Lookup
// order matters: SuggestCategory returns the first match in table order.
var CommonProducts = []Entry{
	{Name: "Apples", Category: FruitsVegetables},
	{Name: "Bananas", Category: FruitsVegetables},
	{Name: "Oranges", Category: FruitsVegetables},
	{Name: "Tomatoes", Category: FruitsVegetables},
	{Name: "Potatoes", Category: FruitsVegetables},
	{Name: "Onions", Category: FruitsVegetables},
	{Name: "Carrots", Category: FruitsVegetables},
	{Name: "Lettuce", Category: FruitsVegetables},
	{Name: "Cucumber", Category: FruitsVegetables},
	{Name: "Broccoli", Category: FruitsVegetables},
	{Name: "Spinach", Category: FruitsVegetables},
	{Name: "Grapes", Category: FruitsVegetables},
	{Name: "Lemons", Category: FruitsVegetables},
	{Name: "Avocado", Category: FruitsVegetables},
	{Name: "Milk", Category: DairyEggs},
	{Name: "Eggs", Category: DairyEggs},
	{Name: "Cheese", Category: DairyEggs},
	{Name: "Butter", Category: DairyEggs},
	{Name: "Yogurt", Category: DairyEggs},
	{Name: "Cream", Category: DairyEggs},
	{Name: "Mozzarella", Category: DairyEggs},
	{Name: "Chicken Breast", Category: MeatSeafood},
	{Name: "Ground Beef", Category: MeatSeafood},
	{Name: "Salmon", Category: MeatSeafood},
	{Name: "Bacon", Category: MeatSeafood},
	{Name: "Shrimp", Category: MeatSeafood},
	{Name: "Pork Chops", Category: MeatSeafood},
	{Name: "Sausages", Category: MeatSeafood},
	{Name: "Bread", Category: Bakery},
	{Name: "Croissants", Category: Bakery},
	{Name: "Bagels", Category: Bakery},
	{Name: "Tortillas", Category: Bakery},
	{Name: "Baguette", Category: Bakery},
	{Name: "Rice", Category: Pantry},
	{Name: "Pasta", Category: Pantry},
	{Name: "Olive Oil", Category: Pantry},
	{Name: "Sugar", Category: Pantry},
	{Name: "Flour", Category: Pantry},
	{Name: "Salt", Category: Pantry},
	{Name: "Pepper", Category: Pantry},
	{Name: "Cereal", Category: Pantry},
	{Name: "Canned Tomatoes", Category: Pantry},
	{Name: "Beans", Category: Pantry},
	{Name: "Water", Category: Beverages},
	{Name: "Orange Juice", Category: Beverages},
	{Name: "Coffee", Category: Beverages},
	{Name: "Tea", Category: Beverages},
	{Name: "Soda", Category: Beverages},
	{Name: "Wine", Category: Beverages},
	{Name: "Beer", Category: Beverages},
	{Name: "Chips", Category: Snacks},
	{Name: "Cookies", Category: Snacks},
	{Name: "Chocolate", Category: Snacks},
	{Name: "Nuts", Category: Snacks},
	{Name: "Popcorn", Category: Snacks},
	{Name: "Ice Cream", Category: Frozen},
	{Name: "Frozen Pizza", Category: Frozen},
	{Name: "Frozen Vegetables", Category: Frozen},
	{Name: "Frozen Berries", Category: Frozen},
	{Name: "Toilet Paper", Category: Household},
	{Name: "Paper Towels", Category: Household},
	{Name: "Dish Soap", Category: Household},
	{Name: "Laundry Detergent", Category: Household},
	{Name: "Trash Bags", Category: Household},
	{Name: "Cleaning Spray", Category: Household},
	{Name: "Shampoo", Category: PersonalCare},
	{Name: "Toothpaste", Category: PersonalCare},
	{Name: "Soap", Category: PersonalCare},
	{Name: "Deodorant", Category: PersonalCare},
}

// SuggestCategory resolves a product name to a category by scanning the
// curated table in order. A curated product matches when its name equals the
// query (case-insensitive) or the query contains it as a substring. The
// containment check is a known heuristic limitation: short curated names can
// match inside unrelated words (e.g. "Soap" inside "soapstone").
func SuggestCategory(productName string) (Category, bool) {
	lower := strings.ToLower(productName)
	for _, p := range CommonProducts {
		pn := strings.ToLower(p.Name)
		if pn == lower || strings.Contains(lower, pn) {
			return p.Category, true
		}
	}
	return "", false
}

// ProductSuggestions returns up to limit curated products whose names contain
// the query, case-insensitive. An empty or whitespace query yields nothing.
func ProductSuggestions(query string, limit int) []Entry {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}
	lower := strings.ToLower(query)
	var out []Entry
	for _, p := range CommonProducts {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
