package intent

// keywordCategories maps a lowercase query token to the catalog categories it
// implies, most likely first. Singular and plural forms are listed separately
// on purpose; tokens are matched literally.
var keywordCategories = map[string][]string{
	// Footwear
	"shoe":     {"footwear", "shoes", "sneakers", "boots"},
	"shoes":    {"footwear", "shoes", "sneakers", "boots"},
	"sneaker":  {"footwear", "shoes", "sneakers"},
	"sneakers": {"footwear", "shoes", "sneakers"},
	"boot":     {"footwear", "shoes", "boots"},
	"boots":    {"footwear", "shoes", "boots"},
	"sandal":   {"footwear", "shoes", "sandals"},
	"sandals":  {"footwear", "shoes", "sandals"},

	// Clothing
	"dress":    {"clothing", "fashion", "womens-clothing", "mens-clothing"},
	"dresses":  {"clothing", "fashion", "womens-clothing"},
	"shirt":    {"clothing", "mens-clothing", "fashion"},
	"shirts":   {"clothing", "mens-clothing", "fashion"},
	"tshirt":   {"clothing", "mens-clothing", "fashion"},
	"tshirts":  {"clothing", "mens-clothing", "fashion"},
	"jeans":    {"clothing", "mens-clothing", "womens-clothing", "fashion"},
	"pant":     {"clothing", "mens-clothing", "womens-clothing", "fashion"},
	"pants":    {"clothing", "mens-clothing", "womens-clothing", "fashion"},
	"trouser":  {"clothing", "mens-clothing", "fashion"},
	"trousers": {"clothing", "mens-clothing", "fashion"},

	// Fitness / gym
	"dumbell":   {"sports-fitness", "fitness", "gym", "sports"},
	"dumbbell":  {"sports-fitness", "fitness", "gym", "sports"},
	"dumbbells": {"sports-fitness", "fitness", "gym", "sports"},
	"gym":       {"sports-fitness", "fitness", "sports"},
	"fitness":   {"sports-fitness", "fitness", "sports"},
	"workout":   {"sports-fitness", "fitness", "sports"},
	"exercise":  {"sports-fitness", "fitness", "sports"},
	"weights":   {"sports-fitness", "fitness", "gym", "sports"},
	"barbell":   {"sports-fitness", "fitness", "gym", "sports"},

	// Electronics
	"phone":      {"smartphones", "electronics", "mobile"},
	"smartphone": {"smartphones", "electronics", "mobile"},
	"mobile":     {"smartphones", "electronics", "mobile"},
	"laptop":     {"laptops-computers", "electronics", "computers"},
	"computer":   {"laptops-computers", "electronics", "computers"},
	"tablet":     {"electronics", "tablets"},
	"headphone":  {"electronics", "audio", "headphones"},
	"headphones": {"electronics", "audio", "headphones"},

	// Home & kitchen
	"kitchen":   {"home-kitchen", "kitchen", "home"},
	"cookware":  {"home-kitchen", "kitchen"},
	"appliance": {"home-kitchen", "kitchen", "home"},
	"furniture": {"home-kitchen", "home"},

	// Beauty
	"makeup":    {"beauty", "cosmetics"},
	"cosmetic":  {"beauty", "cosmetics"},
	"perfume":   {"beauty", "fragrance"},
	"fragrance": {"beauty", "fragrance"},
}

// relatedCategories lists the categories worth trying when a category
// search comes back empty.
var relatedCategories = map[string][]string{
	"footwear":          {"sports-fitness", "fashion", "mens-clothing", "womens-clothing"},
	"shoes":             {"sports-fitness", "fashion", "mens-clothing", "womens-clothing"},
	"clothing":          {"fashion", "mens-clothing", "womens-clothing", "footwear"},
	"fashion":           {"mens-clothing", "womens-clothing", "footwear", "jewelry"},
	"sports-fitness":    {"fitness", "gym", "sports", "footwear"},
	"fitness":           {"sports-fitness", "gym", "sports"},
	"gym":               {"sports-fitness", "fitness", "sports"},
	"smartphones":       {"electronics", "mobile", "accessories"},
	"electronics":       {"smartphones", "laptops-computers", "audio"},
	"laptops-computers": {"electronics", "computers", "accessories"},
	"home-kitchen":      {"home", "kitchen", "appliances"},
	"beauty":            {"cosmetics", "fragrance", "personal-care"},
}
