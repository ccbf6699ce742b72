package models

import "time"

// PlaceholderImage is used when a product has no uploaded image.
const PlaceholderImage = "https://via.placeholder.com/150"

// ProductCategories is the fixed set a product may belong to.
var ProductCategories = []string{
	"Kopi",
	"Non-Kopi",
	"Pastry",
	"Makanan",
	"Minuman Dingin",
	"Snack",
}

func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Price       *int    `json:"price"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Stock       *int    `json:"stock"`
}

func (p *ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
}
