package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

// ProduitRepo implémentation du port ProduitRepository sur PostgreSQL (pool ou tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construit l'adaptateur de persistance produit. Passer pool ou tx (Querier).
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

// List renvoie tous les produits dans l'ordre d'insertion.
func (r *ProduitRepo) List() ([]*entity.Produit, error) {
	query := `
		SELECT id_produit, nom, description, prix, provenance
		FROM produit ORDER BY id_produit`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produit
	for rows.Next() {
		var p entity.Produit
		if err := rows.Scan(&p.ID, &p.Nom, &p.Description, &p.Prix, &p.Provenance); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID renvoie un produit par son id, ou (nil, nil) s'il n'existe pas.
func (r *ProduitRepo) GetByID(id int64) (*entity.Produit, error) {
	query := `
		SELECT id_produit, nom, description, prix, provenance
		FROM produit WHERE id_produit = $1`
	var p entity.Produit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nom, &p.Description, &p.Prix, &p.Provenance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	return &p, nil
}

// Create insère un nouveau produit et renseigne l'identifiant généré.
func (r *ProduitRepo) Create(produit *entity.Produit) error {
	query := `
		INSERT INTO produit (nom, description, prix, provenance)
		VALUES ($1, $2, $3, $4)
		RETURNING id_produit`
	err := r.q.QueryRow(context.Background(), query,
		produit.Nom, produit.Description, produit.Prix, produit.Provenance,
	).Scan(&produit.ID)
	if err != nil {
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// Update réécrit les colonnes mutables du produit (un seul UPDATE).
func (r *ProduitRepo) Update(produit *entity.Produit) error {
	query := `
		UPDATE produit SET nom = $2, description = $3, prix = $4, provenance = $5
		WHERE id_produit = $1`
	_, err := r.q.Exec(context.Background(), query,
		produit.ID, produit.Nom, produit.Description, produit.Prix, produit.Provenance,
	)
	if err != nil {
		return fmt.Errorf("update produit: %w", err)
	}
	return nil
}

// Delete supprime un produit par id. Les lignes produit_lieu doivent être
// supprimées d'abord (voir TxRunner), sinon la contrainte FK rejette.
func (r *ProduitRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produit WHERE id_produit = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produit: %w", err)
	}
	return nil
}
