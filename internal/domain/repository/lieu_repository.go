package repository

import "github.com/payetonkawa/api-produit/internal/domain/entity"

// LieuRepository définit le port de persistance pour Lieu (DIP).
// GetByID renvoie (nil, nil) si aucune ligne ne correspond.
type LieuRepository interface {
	List() ([]*entity.Lieu, error)
	GetByID(id int64) (*entity.Lieu, error)
	Create(lieu *entity.Lieu) error
	Update(lieu *entity.Lieu) error
	Delete(id int64) error
}
