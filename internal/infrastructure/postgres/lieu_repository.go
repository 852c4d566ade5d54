package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

var _ repository.LieuRepository = (*LieuRepo)(nil)

// LieuRepo implémentation du port LieuRepository sur PostgreSQL (pool ou tx).
type LieuRepo struct {
	q Querier
}

// NewLieuRepository construit l'adaptateur de persistance lieu. Passer pool ou tx (Querier).
func NewLieuRepository(q Querier) *LieuRepo {
	return &LieuRepo{q: q}
}

// List renvoie tous les lieux dans l'ordre d'insertion.
func (r *LieuRepo) List() ([]*entity.Lieu, error) {
	query := `
		SELECT id_lieu, nom, adresse, code_postal, ville
		FROM lieu ORDER BY id_lieu`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list lieux: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lieu
	for rows.Next() {
		var l entity.Lieu
		if err := rows.Scan(&l.ID, &l.Nom, &l.Adresse, &l.CodePostal, &l.Ville); err != nil {
			return nil, fmt.Errorf("scan lieu: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetByID renvoie un lieu par son id, ou (nil, nil) s'il n'existe pas.
func (r *LieuRepo) GetByID(id int64) (*entity.Lieu, error) {
	query := `
		SELECT id_lieu, nom, adresse, code_postal, ville
		FROM lieu WHERE id_lieu = $1`
	var l entity.Lieu
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Nom, &l.Adresse, &l.CodePostal, &l.Ville,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lieu: %w", err)
	}
	return &l, nil
}

// Create insère un nouveau lieu et renseigne l'identifiant généré.
func (r *LieuRepo) Create(lieu *entity.Lieu) error {
	query := `
		INSERT INTO lieu (nom, adresse, code_postal, ville)
		VALUES ($1, $2, $3, $4)
		RETURNING id_lieu`
	err := r.q.QueryRow(context.Background(), query,
		lieu.Nom, lieu.Adresse, lieu.CodePostal, lieu.Ville,
	).Scan(&lieu.ID)
	if err != nil {
		return fmt.Errorf("insert lieu: %w", err)
	}
	return nil
}

// Update réécrit les colonnes mutables du lieu (un seul UPDATE).
func (r *LieuRepo) Update(lieu *entity.Lieu) error {
	query := `
		UPDATE lieu SET nom = $2, adresse = $3, code_postal = $4, ville = $5
		WHERE id_lieu = $1`
	_, err := r.q.Exec(context.Background(), query,
		lieu.ID, lieu.Nom, lieu.Adresse, lieu.CodePostal, lieu.Ville,
	)
	if err != nil {
		return fmt.Errorf("update lieu: %w", err)
	}
	return nil
}

// Delete supprime un lieu par id. Les lignes produit_lieu doivent être
// supprimées d'abord (voir TxRunner).
func (r *LieuRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lieu WHERE id_lieu = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lieu: %w", err)
	}
	return nil
}
