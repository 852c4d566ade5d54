package usecase

import (
	"context"

	"github.com/payetonkawa/api-produit/internal/application/dto"
	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

// ProduitUseCase cas d'usage CRUD pour les produits.
type ProduitUseCase struct {
	repo repository.ProduitRepository
	tx   TxRunner
}

// NewProduitUseCase construit le cas d'usage.
func NewProduitUseCase(repo repository.ProduitRepository, tx TxRunner) *ProduitUseCase {
	return &ProduitUseCase{repo: repo, tx: tx}
}

// List renvoie tous les produits dans l'ordre d'insertion.
func (uc *ProduitUseCase) List() ([]dto.ProduitResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProduitResponse(p))
	}
	return items, nil
}

// GetByID renvoie un produit, ou (nil, nil) s'il n'existe pas.
func (uc *ProduitUseCase) GetByID(id int64) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, nil
	}
	return toProduitResponse(produit), nil
}

// Create persiste un nouveau produit; l'identifiant est généré par la base.
func (uc *ProduitUseCase) Create(in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	produit := &entity.Produit{
		Nom:         in.Nom,
		Description: in.Description,
		Prix:        *in.Prix,
		Provenance:  in.Provenance,
	}
	if err := uc.repo.Create(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// Update applique uniquement les champs présents du payload sur la ligne
// existante, puis persiste en un seul UPDATE. Renvoie (nil, nil) si absent.
func (uc *ProduitUseCase) Update(id int64, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, nil
	}
	if in.Nom != nil {
		produit.Nom = *in.Nom
	}
	if in.Description != nil {
		produit.Description = *in.Description
	}
	if in.Prix != nil {
		produit.Prix = *in.Prix
	}
	if in.Provenance != nil {
		produit.Provenance = *in.Provenance
	}
	if err := uc.repo.Update(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// Delete supprime le produit et ses lignes de stock dans une même transaction.
// Renvoie (false, nil) si le produit n'existe pas.
func (uc *ProduitUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if produit == nil {
		return false, nil
	}
	err = uc.tx.Run(ctx, func(
		produits repository.ProduitRepository,
		_ repository.LieuRepository,
		stocks repository.ProduitLieuRepository,
	) error {
		if err := stocks.DeleteByProduit(id); err != nil {
			return err
		}
		return produits.Delete(id)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toProduitResponse(p *entity.Produit) *dto.ProduitResponse {
	if p == nil {
		return nil
	}
	return &dto.ProduitResponse{
		IDProduit:   p.ID,
		Nom:         p.Nom,
		Description: p.Description,
		Prix:        p.Prix,
		Provenance:  p.Provenance,
	}
}
