package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/payetonkawa/api-produit/internal/application/usecase"
	"github.com/payetonkawa/api-produit/internal/infrastructure/authapi"
	"github.com/payetonkawa/api-produit/internal/infrastructure/postgres"
	httpRouter "github.com/payetonkawa/api-produit/internal/interfaces/http"
	"github.com/payetonkawa/api-produit/pkg/config"
	"github.com/payetonkawa/api-produit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	// prix sérialisé en nombre JSON, comme l'API historique
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	produitRepo := postgres.NewProduitRepository(pool)
	lieuRepo := postgres.NewLieuRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produitUC := usecase.NewProduitUseCase(produitRepo, txRunner)
	lieuUC := usecase.NewLieuUseCase(lieuRepo, txRunner)
	verifier := authapi.NewClient(cfg.Auth)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API Produit",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProduitUC: produitUC,
		LieuUC:    lieuUC,
		Verifier:  verifier,
		CreateTables: func(ctx context.Context) error {
			return postgres.CreateTables(ctx, pool)
		},
		Log: log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
