package entity

// ProduitLieu ligne de jointure produit/lieu avec la quantité en stock.
// Clé composite (IDProduit, IDLieu); n'existe que tant que les deux lignes
// référencées existent.
type ProduitLieu struct {
	IDProduit int64
	IDLieu    int64
	Stock     int
}
