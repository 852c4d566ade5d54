package entity

// Lieu représente un point de vente ou de stockage.
type Lieu struct {
	ID         int64
	Nom        string // max 100
	Adresse    string // max 100
	CodePostal string // max 10
	Ville      string // max 50
}
