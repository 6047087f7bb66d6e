package catalog

import (
	"strings"

	"fruit-order-service/models"
)

// 静态商品目录，进程生命周期内只读
var products = []models.Product{
	{
		ID:           "1",
		Name:         "Royal Alphonso Mango",
		Category:     models.CategorySeasonal,
		PricePerUnit: 450,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1553279768-865429fa0078?w=400",
		IsBestSeller: true,
		Description:  "Premium Alphonso mangoes from Ratnagiri. Sweet, aromatic, and perfect for bulk orders.",
		Stock:        500,
	},
	{
		ID:           "2",
		Name:         "Fresh Bananas",
		Category:     models.CategorySeasonal,
		PricePerUnit: 60,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400",
		IsBestSeller: true,
		Description:  "Farm-fresh bananas, ideal for restaurants and cafes.",
		Stock:        1000,
	},
	{
		ID:           "3",
		Name:         "Washington Apples",
		Category:     models.CategoryImported,
		PricePerUnit: 280,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400",
		IsBestSeller: true,
		Description:  "Crisp and sweet Washington apples, imported fresh.",
		Stock:        300,
	},
	{
		ID:           "4",
		Name:         "California Oranges",
		Category:     models.CategoryImported,
		PricePerUnit: 180,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1547514701-42782101795e?w=400",
		IsBestSeller: true,
		Description:  "Juicy California oranges, perfect for juice bars.",
		Stock:        400,
	},
	{
		ID:           "5",
		Name:         "Watermelon",
		Category:     models.CategorySeasonal,
		PricePerUnit: 35,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1587049352846-4a222e784d38?w=400",
		IsBestSeller: false,
		Description:  "Sweet and refreshing watermelons, summer special.",
		Stock:        800,
	},
	{
		ID:           "6",
		Name:         "Papaya",
		Category:     models.CategorySeasonal,
		PricePerUnit: 55,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1517282009859-f000ec3b26fe?w=400",
		IsBestSeller: false,
		Description:  "Ripe papayas, great for hotels and restaurants.",
		Stock:        350,
	},
	{
		ID:           "7",
		Name:         "Sweet Lime (Mosambi)",
		Category:     models.CategorySeasonal,
		PricePerUnit: 80,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1590502593747-42a996133562?w=400",
		IsBestSeller: false,
		Description:  "Fresh sweet limes, perfect for fresh juice.",
		Stock:        450,
	},
	{
		ID:           "8",
		Name:         "Pomegranate",
		Category:     models.CategorySeasonal,
		PricePerUnit: 200,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1541344999736-83eca272f6fc?w=400",
		IsBestSeller: false,
		Description:  "Ruby red pomegranates with juicy seeds.",
		Stock:        250,
	},
	{
		ID:           "9",
		Name:         "Green Kiwi",
		Category:     models.CategoryImported,
		PricePerUnit: 350,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1585059895524-72359e06133a?w=400",
		IsBestSeller: false,
		Description:  "Fresh New Zealand kiwis, tangy and nutritious.",
		Stock:        150,
	},
	{
		ID:           "10",
		Name:         "Blueberries",
		Category:     models.CategoryImported,
		PricePerUnit: 800,
		Unit:         models.UnitBox,
		ImageURL:     "https://images.unsplash.com/photo-1498557850523-fd3d118b962e?w=400",
		IsBestSeller: false,
		Description:  "Premium blueberries, packed fresh. 125g per box.",
		Stock:        200,
	},
	{
		ID:           "11",
		Name:         "Red Grapes",
		Category:     models.CategoryImported,
		PricePerUnit: 180,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1537640538966-79f369143f8f?w=400",
		IsBestSeller: false,
		Description:  "Sweet seedless red grapes from Chile.",
		Stock:        300,
	},
	{
		ID:           "12",
		Name:         "Dragon Fruit",
		Category:     models.CategoryExotic,
		PricePerUnit: 400,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1527325678964-54921661f888?w=400",
		IsBestSeller: false,
		Description:  "Vibrant pink dragon fruit, perfect for premium presentations.",
		Stock:        100,
	},
	{
		ID:           "13",
		Name:         "Passion Fruit",
		Category:     models.CategoryExotic,
		PricePerUnit: 500,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1604495772376-9657f0035eb5?w=400",
		IsBestSeller: false,
		Description:  "Aromatic passion fruits for desserts and drinks.",
		Stock:        80,
	},
	{
		ID:           "14",
		Name:         "Avocado",
		Category:     models.CategoryExotic,
		PricePerUnit: 350,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400",
		IsBestSeller: true,
		Description:  "Creamy Hass avocados, cafe favorite.",
		Stock:        200,
	},
	{
		ID:           "15",
		Name:         "Fresh Figs",
		Category:     models.CategoryExotic,
		PricePerUnit: 600,
		Unit:         models.UnitKg,
		ImageURL:     "https://images.unsplash.com/photo-1601379760883-1bb497c558f0?w=400",
		IsBestSeller: false,
		Description:  "Delicate fresh figs, limited seasonal availability.",
		Stock:        50,
	},
}

var offers = []models.Offer{
	{
		ID:              "1",
		Title:           "35% Discount",
		Subtitle:        "100% Guaranteed all Fresh\nGrocery Items",
		BackgroundColor: "#1E5631",
		TextColor:       "#FFFFFF",
		Discount:        "35% OFF",
	},
	{
		ID:              "2",
		Title:           "Bulk Order Special",
		Subtitle:        "Order 100kg+ and save extra 10%",
		BackgroundColor: "#2D7A46",
		TextColor:       "#FFFFFF",
		Discount:        "10% EXTRA",
	},
	{
		ID:              "3",
		Title:           "Fresh Imports",
		Subtitle:        "New batch of exotic fruits arrived",
		BackgroundColor: "#143D22",
		TextColor:       "#FFFFFF",
	},
	{
		ID:              "4",
		Title:           "Free Delivery",
		Subtitle:        "On orders above ₹5000",
		BackgroundColor: "#FF9800",
		TextColor:       "#FFFFFF",
		Discount:        "FREE",
	},
}

func AllProducts() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

func GetProductByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func BestSellers() []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	return out
}

func ByCategory(category models.ProductCategory) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts 按名称或分类做大小写不敏感的子串匹配
func SearchProducts(query string) []models.Product {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) {
			out = append(out, p)
		}
	}
	return out
}

func Offers() []models.Offer {
	out := make([]models.Offer, len(offers))
	copy(out, offers)
	return out
}
