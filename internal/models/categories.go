package models

// Categories содержит таксономию категорий и подкатегорий объявлений.
// Порядок соответствует порядку отображения в интерфейсе.
var Categories = map[string][]string{
	"Vehicles":    {"Cars", "Motorcycles", "Trucks", "Boats", "Other Vehicles"},
	"Electronics": {"Mobile Phones", "Computers", "TVs", "Cameras", "Audio", "Other Electronics"},
	"Property":    {"Apartments", "Houses", "Land", "Commercial", "Vacation Rentals"},
	"Jobs":        {"Full-time", "Part-time", "Freelance", "Internship", "Other Jobs"},
	"Services":    {"Home Services", "Business Services", "Lessons", "Other Services"},
	"Furniture":   {"Living Room", "Bedroom", "Dining", "Office", "Garden", "Other Furniture"},
	"Fashion":     {"Men's Clothing", "Women's Clothing", "Jewelry", "Bags", "Shoes", "Other Fashion"},
	"Pets":        {"Dogs", "Cats", "Birds", "Fish", "Other Pets", "Pet Supplies"},
	"Hobbies":     {"Books", "Sports", "Music", "Art", "Collectibles", "Other Hobbies"},
	"Other":       {"Miscellaneous"},
}

// ValidCategory проверяет, что пара категория/подкатегория присутствует в таксономии.
func ValidCategory(category, subcategory string) bool {
	subs, ok := Categories[category]
	if !ok {
		return false
	}
	for _, s := range subs {
		if s == subcategory {
			return true
		}
	}
	return false
}
