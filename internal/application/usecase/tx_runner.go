package usecase

import (
	"context"

	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

// TxRunner exécute fn dans une transaction, avec des repos liés à celle-ci.
// Utilisé par les suppressions: lignes de stock puis ligne propriétaire,
// validées ou annulées ensemble (aucune ligne produit_lieu orpheline).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produits repository.ProduitRepository,
		lieux repository.LieuRepository,
		stocks repository.ProduitLieuRepository,
	) error) error
}
