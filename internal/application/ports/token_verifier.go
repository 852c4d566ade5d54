package ports

import "context"

// TokenVerifier port de vérification d'un jeton auprès de l'API
// d'authentification. Verify rend nil si le jeton est valide; sinon une des
// erreurs typées de l'adaptateur (authapi).
type TokenVerifier interface {
	Verify(ctx context.Context, token string) error
}
