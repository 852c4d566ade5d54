package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/payetonkawa/api-produit/internal/application/dto"
	"github.com/payetonkawa/api-produit/internal/application/ports"
	"github.com/payetonkawa/api-produit/internal/infrastructure/authapi"
)

// TokenMiddleware vérifie le header token auprès de l'API d'authentification
// avant de laisser passer la requête. Appliqué aux routes produit uniquement:
// les routes lieu restent ouvertes (asymétrie volontaire du service historique).
// Chaque requête protégée déclenche une vérification; aucun cache de résultats.
func TokenMiddleware(verifier ports.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Detail: "Authorization header missing"})
		}

		err := verifier.Verify(c.UserContext(), token)
		if err == nil {
			return c.Next()
		}

		if errors.Is(err, authapi.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).
				JSON(dto.ErrorResponse{Detail: "UnAuthorized"})
		}
		var upstream *authapi.UpstreamStatusError
		if errors.As(err, &upstream) {
			// L'API d'authentification a répondu: son statut est reporté tel quel.
			return c.Status(upstream.StatusCode).
				JSON(dto.ErrorResponse{Detail: "Failed to send data to external API"})
		}
		// Échec transport (connexion refusée, timeout): l'upstream n'a pas répondu.
		return c.Status(fiber.StatusBadGateway).
			JSON(dto.ErrorResponse{Detail: "Failed to send data to external API"})
	}
}
