package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/payetonkawa/api-produit/internal/application/ports"
	"github.com/payetonkawa/api-produit/internal/application/usecase"
	"github.com/payetonkawa/api-produit/pkg/logger"
)

// RouterDeps dépendances pour le router.
type RouterDeps struct {
	ProduitUC    *usecase.ProduitUseCase
	LieuUC       *usecase.LieuUseCase
	Verifier     ports.TokenVerifier
	CreateTables func(ctx context.Context) error
	Log          *logger.Logger
}

// Router enregistre les routes de l'API.
// Les routes produit passent par le middleware token; les routes lieu et
// database restent ouvertes (comportement du service historique, conservé).
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	// Produits (protégé)
	produits := app.Group("/produit", TokenMiddleware(deps.Verifier))
	produitHandler := NewProduitHandler(deps.ProduitUC)
	produits.Get("/", produitHandler.List)
	produits.Get("/:id", produitHandler.GetByID)
	produits.Post("/", produitHandler.Create)
	produits.Patch("/:id", produitHandler.Update)
	produits.Delete("/:id", produitHandler.Delete)

	// Lieux (ouvert)
	lieux := app.Group("/lieu")
	lieuHandler := NewLieuHandler(deps.LieuUC)
	lieux.Get("/", lieuHandler.List)
	lieux.Get("/:id", lieuHandler.GetByID)
	lieux.Post("/", lieuHandler.Create)
	lieux.Patch("/:id", lieuHandler.Update)
	lieux.Delete("/:id", lieuHandler.Delete)

	// Création du schéma (ouvert)
	databaseHandler := NewDatabaseHandler(deps.CreateTables)
	app.Post("/database", databaseHandler.Create)
}
