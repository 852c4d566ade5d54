package entity

import "github.com/shopspring/decimal"

// Produit représente un produit du catalogue café.
// L'identifiant est généré par la base (BIGSERIAL); le stock par lieu est
// porté par ProduitLieu.
type Produit struct {
	ID          int64
	Nom         string          // max 100
	Description string          // max 255
	Prix        decimal.Decimal // DECIMAL(5,2)
	Provenance  string          // max 50
}
