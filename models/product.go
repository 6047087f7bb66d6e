package models

type ProductCategory string

const (
	CategorySeasonal ProductCategory = "Seasonal"
	CategoryImported ProductCategory = "Imported"
	CategoryExotic   ProductCategory = "Exotic"
)

type ProductUnit string

const (
	UnitKg  ProductUnit = "kg"
	UnitBox ProductUnit = "box"
)

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	PricePerUnit float64         `json:"pricePerUnit"`
	Unit         ProductUnit     `json:"unit"`
	ImageURL     string          `json:"imageUrl"`
	IsBestSeller bool            `json:"isBestSeller"`
	Description  string          `json:"description,omitempty"`
	Stock        int             `json:"stock"`
}

// Offer 首页促销轮播数据
type Offer struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Discount        string `json:"discount,omitempty"`
}
