package models

import "time"

// Product est l'entité stockée dans la table products.
// Le prix circule en texte sur le fil mais est stocké en numérique.
type Product struct {
	ProductID   string    `json:"productId" db:"product_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Currency    string    `json:"currency" db:"currency"`
	ImageURLs   []string  `json:"images" db:"image_urls"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProductSummary est la projection renvoyée par GET /products :
// uniquement la première image, le prix au format texte-numérique stocké.
type ProductSummary struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Image       string `json:"image"`
}
