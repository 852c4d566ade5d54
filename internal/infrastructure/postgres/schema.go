package postgres

import (
	"context"
	"fmt"
)

// DDL des trois tables du service. Clés étrangères simples: la cascade de
// suppression des lignes produit_lieu est faite explicitement en transaction
// (voir TxRunner), pas par ON DELETE CASCADE.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS produit (
		id_produit  BIGSERIAL PRIMARY KEY,
		nom         VARCHAR(100) NOT NULL,
		description VARCHAR(255) NOT NULL,
		prix        DECIMAL(5,2) NOT NULL,
		provenance  VARCHAR(50)  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lieu (
		id_lieu     BIGSERIAL PRIMARY KEY,
		nom         VARCHAR(100) NOT NULL,
		adresse     VARCHAR(100) NOT NULL,
		code_postal VARCHAR(10)  NOT NULL,
		ville       VARCHAR(50)  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS produit_lieu (
		id_produit  BIGINT NOT NULL REFERENCES produit (id_produit),
		id_lieu     BIGINT NOT NULL REFERENCES lieu (id_lieu),
		stock       INTEGER NOT NULL,
		PRIMARY KEY (id_produit, id_lieu)
	)`,
}

// CreateTables crée les tables du service si elles n'existent pas.
// Sert aussi de test de connexion: échoue si la base est injoignable.
func CreateTables(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}
