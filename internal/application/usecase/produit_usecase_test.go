package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payetonkawa/api-produit/internal/application/dto"
	"github.com/payetonkawa/api-produit/internal/application/usecase"
	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

// memProduitRepo doublure minimale du port ProduitRepository.
type memProduitRepo struct {
	seq   int64
	items map[int64]*entity.Produit
}

func newMemProduitRepo() *memProduitRepo {
	return &memProduitRepo{items: make(map[int64]*entity.Produit)}
}

func (r *memProduitRepo) List() ([]*entity.Produit, error) {
	list := make([]*entity.Produit, 0, len(r.items))
	for i := int64(1); i <= r.seq; i++ {
		if p, ok := r.items[i]; ok {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memProduitRepo) GetByID(id int64) (*entity.Produit, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProduitRepo) Create(p *entity.Produit) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProduitRepo) Update(p *entity.Produit) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProduitRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

// journalTx enregistre l'ordre des suppressions faites dans la transaction.
type journalTx struct {
	repo    *memProduitRepo
	journal []string
}

func (t *journalTx) Run(ctx context.Context, fn func(
	produits repository.ProduitRepository,
	lieux repository.LieuRepository,
	stocks repository.ProduitLieuRepository,
) error) error {
	return fn(&journalProduits{t}, nil, &journalStocks{t})
}

type journalProduits struct{ tx *journalTx }

func (j *journalProduits) List() ([]*entity.Produit, error)        { return j.tx.repo.List() }
func (j *journalProduits) GetByID(id int64) (*entity.Produit, error) { return j.tx.repo.GetByID(id) }
func (j *journalProduits) Create(p *entity.Produit) error           { return j.tx.repo.Create(p) }
func (j *journalProduits) Update(p *entity.Produit) error           { return j.tx.repo.Update(p) }
func (j *journalProduits) Delete(id int64) error {
	j.tx.journal = append(j.tx.journal, "produit")
	return j.tx.repo.Delete(id)
}

type journalStocks struct{ tx *journalTx }

func (j *journalStocks) ListByProduit(int64) ([]*entity.ProduitLieu, error) { return nil, nil }
func (j *journalStocks) Upsert(*entity.ProduitLieu) error                   { return nil }
func (j *journalStocks) DeleteByLieu(int64) error                           { return nil }
func (j *journalStocks) DeleteByProduit(int64) error {
	j.tx.journal = append(j.tx.journal, "stocks")
	return nil
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seed(t *testing.T, repo *memProduitRepo) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Produit{
		Nom:         "café 1",
		Description: "café de test",
		Prix:        decimal.RequireFromString("10.50"),
		Provenance:  "France",
	}))
}

// La création renvoie un identifiant généré et les champs soumis inchangés.
func TestProduitUseCase_Create_EchoDesChamps(t *testing.T) {
	repo := newMemProduitRepo()
	uc := usecase.NewProduitUseCase(repo, &journalTx{repo: repo})

	out, err := uc.Create(dto.CreateProduitRequest{
		Nom:         "café 1",
		Description: "café de test",
		Prix:        decPtr("10.50"),
		Provenance:  "France",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.IDProduit)
	assert.Equal(t, "café 1", out.Nom)
	assert.Equal(t, "café de test", out.Description)
	assert.True(t, out.Prix.Equal(decimal.RequireFromString("10.50")))
	assert.Equal(t, "France", out.Provenance)
}

// Loi de la mise à jour partielle: seuls les champs présents changent.
func TestProduitUseCase_Update_Partiel(t *testing.T) {
	repo := newMemProduitRepo()
	uc := usecase.NewProduitUseCase(repo, &journalTx{repo: repo})
	seed(t, repo)

	out, err := uc.Update(1, dto.UpdateProduitRequest{
		Nom:  strPtr("café renommé"),
		Prix: decPtr("9.90"),
	})
	require.NoError(t, err)

	assert.Equal(t, "café renommé", out.Nom)
	assert.True(t, out.Prix.Equal(decimal.RequireFromString("9.90")))
	assert.Equal(t, "café de test", out.Description)
	assert.Equal(t, "France", out.Provenance)

	// la ligne persistée porte les mêmes valeurs
	stored, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "café renommé", stored.Nom)
	assert.Equal(t, "café de test", stored.Description)
}

// Payload vide: aucune mutation, la ligne est renvoyée telle quelle.
func TestProduitUseCase_Update_PayloadVide(t *testing.T) {
	repo := newMemProduitRepo()
	uc := usecase.NewProduitUseCase(repo, &journalTx{repo: repo})
	seed(t, repo)

	out, err := uc.Update(1, dto.UpdateProduitRequest{})
	require.NoError(t, err)

	assert.Equal(t, "café 1", out.Nom)
	assert.True(t, out.Prix.Equal(decimal.RequireFromString("10.50")))
}

// Mise à jour d'un produit absent: (nil, nil), pas d'erreur.
func TestProduitUseCase_Update_Absent(t *testing.T) {
	repo := newMemProduitRepo()
	uc := usecase.NewProduitUseCase(repo, &journalTx{repo: repo})

	out, err := uc.Update(42, dto.UpdateProduitRequest{Nom: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// La suppression passe par la transaction: lignes de stock d'abord,
// ligne produit ensuite.
func TestProduitUseCase_Delete_OrdreCascade(t *testing.T) {
	repo := newMemProduitRepo()
	tx := &journalTx{repo: repo}
	uc := usecase.NewProduitUseCase(repo, tx)
	seed(t, repo)

	found, err := uc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"stocks", "produit"}, tx.journal)

	stored, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

// Suppression d'un produit absent: (false, nil), rien n'est exécuté en transaction.
func TestProduitUseCase_Delete_Absent(t *testing.T) {
	repo := newMemProduitRepo()
	tx := &journalTx{repo: repo}
	uc := usecase.NewProduitUseCase(repo, tx)

	found, err := uc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, tx.journal)
}
