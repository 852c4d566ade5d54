package dto

// ErrorResponse corps d'erreur HTTP. La clé detail reprend le format
// historique de l'API (clients existants).
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldError erreur de validation sur un champ précis du payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse corps des réponses 422: detail porte la liste
// des erreurs par champ.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

// DeletedResponse corps de réponse d'une suppression.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
