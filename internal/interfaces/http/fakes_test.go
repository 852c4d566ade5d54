package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/payetonkawa/api-produit/internal/application/usecase"
	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
	apphttp "github.com/payetonkawa/api-produit/internal/interfaces/http"
	"github.com/payetonkawa/api-produit/pkg/logger"
)

func TestMain(m *testing.M) {
	// Même réglage qu'au démarrage de l'application: prix en nombre JSON.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Doublures en mémoire des ports de persistance
// ──────────────────────────────────────────────────────────────────────────────

type fakeProduitRepo struct {
	seq   int64
	items map[int64]*entity.Produit
	err   error // si non nil, toutes les opérations échouent
}

func newFakeProduitRepo() *fakeProduitRepo {
	return &fakeProduitRepo{items: make(map[int64]*entity.Produit)}
}

func (r *fakeProduitRepo) List() ([]*entity.Produit, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Produit, 0, len(ids))
	for _, id := range ids {
		cp := *r.items[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProduitRepo) GetByID(id int64) (*entity.Produit, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProduitRepo) Create(produit *entity.Produit) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	produit.ID = r.seq
	cp := *produit
	r.items[produit.ID] = &cp
	return nil
}

func (r *fakeProduitRepo) Update(produit *entity.Produit) error {
	if r.err != nil {
		return r.err
	}
	cp := *produit
	r.items[produit.ID] = &cp
	return nil
}

func (r *fakeProduitRepo) Delete(id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.items, id)
	return nil
}

type fakeLieuRepo struct {
	seq   int64
	items map[int64]*entity.Lieu
	err   error
}

func newFakeLieuRepo() *fakeLieuRepo {
	return &fakeLieuRepo{items: make(map[int64]*entity.Lieu)}
}

func (r *fakeLieuRepo) List() ([]*entity.Lieu, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Lieu, 0, len(ids))
	for _, id := range ids {
		cp := *r.items[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeLieuRepo) GetByID(id int64) (*entity.Lieu, error) {
	if r.err != nil {
		return nil, r.err
	}
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLieuRepo) Create(lieu *entity.Lieu) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	lieu.ID = r.seq
	cp := *lieu
	r.items[lieu.ID] = &cp
	return nil
}

func (r *fakeLieuRepo) Update(lieu *entity.Lieu) error {
	if r.err != nil {
		return r.err
	}
	cp := *lieu
	r.items[lieu.ID] = &cp
	return nil
}

func (r *fakeLieuRepo) Delete(id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.items, id)
	return nil
}

type fakeProduitLieuRepo struct {
	items map[[2]int64]int // clé (id_produit, id_lieu) -> stock
}

func newFakeProduitLieuRepo() *fakeProduitLieuRepo {
	return &fakeProduitLieuRepo{items: make(map[[2]int64]int)}
}

func (r *fakeProduitLieuRepo) ListByProduit(idProduit int64) ([]*entity.ProduitLieu, error) {
	var list []*entity.ProduitLieu
	for k, stock := range r.items {
		if k[0] == idProduit {
			list = append(list, &entity.ProduitLieu{IDProduit: k[0], IDLieu: k[1], Stock: stock})
		}
	}
	return list, nil
}

func (r *fakeProduitLieuRepo) Upsert(pl *entity.ProduitLieu) error {
	r.items[[2]int64{pl.IDProduit, pl.IDLieu}] = pl.Stock
	return nil
}

func (r *fakeProduitLieuRepo) DeleteByProduit(idProduit int64) error {
	for k := range r.items {
		if k[0] == idProduit {
			delete(r.items, k)
		}
	}
	return nil
}

func (r *fakeProduitLieuRepo) DeleteByLieu(idLieu int64) error {
	for k := range r.items {
		if k[1] == idLieu {
			delete(r.items, k)
		}
	}
	return nil
}

// fakeTxRunner exécute fn directement avec les doublures, sans transaction.
type fakeTxRunner struct {
	produits repository.ProduitRepository
	lieux    repository.LieuRepository
	stocks   repository.ProduitLieuRepository
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	produits repository.ProduitRepository,
	lieux repository.LieuRepository,
	stocks repository.ProduitLieuRepository,
) error) error {
	return fn(t.produits, t.lieux, t.stocks)
}

// fakeVerifier doublure du port TokenVerifier; rend toujours err.
type fakeVerifier struct {
	err error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) error {
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Construction de l'application de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	produits *fakeProduitRepo
	lieux    *fakeLieuRepo
	stocks   *fakeProduitLieuRepo
}

// buildTestApp monte le router complet sur des doublures en mémoire.
// verifErr pilote la passerelle token (nil = jeton accepté).
func buildTestApp(verifErr error) *testEnv {
	produits := newFakeProduitRepo()
	lieux := newFakeLieuRepo()
	stocks := newFakeProduitLieuRepo()
	tx := &fakeTxRunner{produits: produits, lieux: lieux, stocks: stocks}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProduitUC:    usecase.NewProduitUseCase(produits, tx),
		LieuUC:       usecase.NewLieuUseCase(lieux, tx),
		Verifier:     &fakeVerifier{err: verifErr},
		CreateTables: func(ctx context.Context) error { return nil },
		Log:          logger.New(logger.Config{Env: "test", Level: "error"}),
	})
	return &testEnv{app: app, produits: produits, lieux: lieux, stocks: stocks}
}

// doRequest lance une requête sur l'application de test.
// token vide = pas de header token.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON décode le corps de la réponse dans out.
func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
