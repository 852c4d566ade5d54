package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/payetonkawa/api-produit/pkg/logger"
)

// LocalRequestID clé Locals de l'identifiant de requête.
const LocalRequestID = "request_id"

// RequestLogger journalise chaque requête traitée avec un identifiant unique,
// la méthode, le chemin, le statut et la latence.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("requête traitée")
		return err
	}
}
