package repository

import "github.com/payetonkawa/api-produit/internal/domain/entity"

// ProduitRepository définit le port de persistance pour Produit (DIP).
// GetByID renvoie (nil, nil) si aucune ligne ne correspond.
type ProduitRepository interface {
	List() ([]*entity.Produit, error)
	GetByID(id int64) (*entity.Produit, error)
	Create(produit *entity.Produit) error
	Update(produit *entity.Produit) error
	Delete(id int64) error
}
