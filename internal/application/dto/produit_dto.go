package dto

import "github.com/shopspring/decimal"

// CreateProduitRequest entrée pour créer un produit. Tous les champs sont requis.
type CreateProduitRequest struct {
	Nom         string           `json:"nom" validate:"required,max=100"`
	Description string           `json:"description" validate:"required,max=255"`
	Prix        *decimal.Decimal `json:"prix" validate:"required"`
	Provenance  string           `json:"provenance" validate:"required,max=50"`
}

// UpdateProduitRequest entrée pour la mise à jour partielle d'un produit.
// Seuls les champs présents dans le payload sont appliqués.
type UpdateProduitRequest struct {
	Nom         *string          `json:"nom" validate:"omitempty,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Prix        *decimal.Decimal `json:"prix"`
	Provenance  *string          `json:"provenance" validate:"omitempty,max=50"`
}

// ProduitResponse sortie d'un produit.
type ProduitResponse struct {
	IDProduit   int64           `json:"id_produit"`
	Nom         string          `json:"nom"`
	Description string          `json:"description"`
	Prix        decimal.Decimal `json:"prix"`
	Provenance  string          `json:"provenance"`
}
