package database

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"cms_back_end/internal/models"
)

// ProductStore encapsule l'accès à la table products (put-item + scan complet)
type ProductStore struct {
	session *gocql.Session
}

func NewProductStore(session *gocql.Session) *ProductStore {
	return &ProductStore{session: session}
}

const (
	insertProductCQL = `INSERT INTO products (product_id, name, description, price, currency, image_urls, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	scanProductsCQL = `SELECT product_id, name, description, price, currency, image_urls, created_at FROM products`
)

// Insert écrit l'item produit en un seul put, sans condition ni transaction
func (s *ProductStore) Insert(ctx context.Context, p models.Product) error {
	err := s.session.Query(insertProductCQL,
		p.ProductID, p.Name, p.Description, p.Price, p.Currency, p.ImageURLs, p.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("erreur création produit: %w", err)
	}
	return nil
}

// ScanAll parcourt la table entière, sans pagination ni limite.
// L'ordre de retour dépend du provider et n'est pas stable.
func (s *ProductStore) ScanAll(ctx context.Context) ([]models.Product, error) {
	iter := s.session.Query(scanProductsCQL).WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ProductID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.ImageURLs, &p.CreatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erreur lecture produits: %w", err)
	}

	return products, nil
}
