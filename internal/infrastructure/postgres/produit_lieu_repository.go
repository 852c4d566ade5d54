package postgres

import (
	"context"
	"fmt"

	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

var _ repository.ProduitLieuRepository = (*ProduitLieuRepo)(nil)

// ProduitLieuRepo implémentation de ProduitLieuRepository sur PostgreSQL (pool ou tx).
type ProduitLieuRepo struct {
	q Querier
}

// NewProduitLieuRepository construit l'adaptateur des lignes de stock. Passer pool ou tx (Querier).
func NewProduitLieuRepository(q Querier) *ProduitLieuRepo {
	return &ProduitLieuRepo{q: q}
}

// ListByProduit renvoie les lignes de stock d'un produit.
func (r *ProduitLieuRepo) ListByProduit(idProduit int64) ([]*entity.ProduitLieu, error) {
	query := `
		SELECT id_produit, id_lieu, stock
		FROM produit_lieu WHERE id_produit = $1 ORDER BY id_lieu`
	rows, err := r.q.Query(context.Background(), query, idProduit)
	if err != nil {
		return nil, fmt.Errorf("list produit_lieu: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProduitLieu
	for rows.Next() {
		var pl entity.ProduitLieu
		if err := rows.Scan(&pl.IDProduit, &pl.IDLieu, &pl.Stock); err != nil {
			return nil, fmt.Errorf("scan produit_lieu: %w", err)
		}
		list = append(list, &pl)
	}
	return list, rows.Err()
}

// Upsert insère ou met à jour la quantité en stock (par produit et lieu).
func (r *ProduitLieuRepo) Upsert(pl *entity.ProduitLieu) error {
	query := `
		INSERT INTO produit_lieu (id_produit, id_lieu, stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (id_produit, id_lieu)
		DO UPDATE SET stock = EXCLUDED.stock`
	_, err := r.q.Exec(context.Background(), query, pl.IDProduit, pl.IDLieu, pl.Stock)
	if err != nil {
		return fmt.Errorf("upsert produit_lieu: %w", err)
	}
	return nil
}

// DeleteByProduit supprime toutes les lignes de stock d'un produit.
func (r *ProduitLieuRepo) DeleteByProduit(idProduit int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM produit_lieu WHERE id_produit = $1`, idProduit)
	if err != nil {
		return fmt.Errorf("delete produit_lieu par produit: %w", err)
	}
	return nil
}

// DeleteByLieu supprime toutes les lignes de stock d'un lieu.
func (r *ProduitLieuRepo) DeleteByLieu(idLieu int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM produit_lieu WHERE id_lieu = $1`, idLieu)
	if err != nil {
		return fmt.Errorf("delete produit_lieu par lieu: %w", err)
	}
	return nil
}
