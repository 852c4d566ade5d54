package repository

import "github.com/payetonkawa/api-produit/internal/domain/entity"

// ProduitLieuRepository port de persistance pour les lignes de stock produit/lieu.
// Les DeleteBy* servent à la suppression en cascade explicite des lignes
// de jointure avant celle de la ligne propriétaire.
type ProduitLieuRepository interface {
	ListByProduit(idProduit int64) ([]*entity.ProduitLieu, error)
	Upsert(pl *entity.ProduitLieu) error
	DeleteByProduit(idProduit int64) error
	DeleteByLieu(idLieu int64) error
}
