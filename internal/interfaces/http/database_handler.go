package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// DatabaseHandler expose la création du schéma (POST /database).
type DatabaseHandler struct {
	createTables func(ctx context.Context) error
}

// NewDatabaseHandler construit le handler avec la fonction de création du schéma.
func NewDatabaseHandler(createTables func(ctx context.Context) error) *DatabaseHandler {
	return &DatabaseHandler{createTables: createTables}
}

// Create crée les tables du service. Sert aussi de vérification de la
// connexion à la base: échoue en 500 si elle est injoignable.
func (h *DatabaseHandler) Create(c *fiber.Ctx) error {
	if err := h.createTables(c.UserContext()); err != nil {
		return connectionFailed(c, err)
	}
	return c.JSON("database created")
}
