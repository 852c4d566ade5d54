package dto

// CreateLieuRequest entrée pour créer un lieu. Tous les champs sont requis.
type CreateLieuRequest struct {
	Nom        string `json:"nom" validate:"required,max=100"`
	Adresse    string `json:"adresse" validate:"required,max=100"`
	CodePostal string `json:"code_postal" validate:"required,max=10"`
	Ville      string `json:"ville" validate:"required,max=50"`
}

// UpdateLieuRequest entrée pour la mise à jour partielle d'un lieu.
// Seuls les champs présents dans le payload sont appliqués.
type UpdateLieuRequest struct {
	Nom        *string `json:"nom" validate:"omitempty,max=100"`
	Adresse    *string `json:"adresse" validate:"omitempty,max=100"`
	CodePostal *string `json:"code_postal" validate:"omitempty,max=10"`
	Ville      *string `json:"ville" validate:"omitempty,max=50"`
}

// LieuResponse sortie d'un lieu.
type LieuResponse struct {
	IDLieu     int64  `json:"id_lieu"`
	Nom        string `json:"nom"`
	Adresse    string `json:"adresse"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
}
