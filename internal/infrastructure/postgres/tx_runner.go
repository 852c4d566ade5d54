package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/payetonkawa/api-produit/internal/application/usecase"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
// Sert aux suppressions en cascade: lignes produit_lieu puis ligne propriétaire,
// validées ou annulées ensemble.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repos liés à la tx
// et fait Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produits repository.ProduitRepository,
	lieux repository.LieuRepository,
	stocks repository.ProduitLieuRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	produits := NewProduitRepository(tx)
	lieux := NewLieuRepository(tx)
	stocks := NewProduitLieuRepository(tx)

	if err := fn(produits, lieux, stocks); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
