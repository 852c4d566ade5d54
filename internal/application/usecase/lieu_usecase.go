package usecase

import (
	"context"

	"github.com/payetonkawa/api-produit/internal/application/dto"
	"github.com/payetonkawa/api-produit/internal/domain/entity"
	"github.com/payetonkawa/api-produit/internal/domain/repository"
)

// LieuUseCase cas d'usage CRUD pour les lieux.
type LieuUseCase struct {
	repo repository.LieuRepository
	tx   TxRunner
}

// NewLieuUseCase construit le cas d'usage.
func NewLieuUseCase(repo repository.LieuRepository, tx TxRunner) *LieuUseCase {
	return &LieuUseCase{repo: repo, tx: tx}
}

// List renvoie tous les lieux dans l'ordre d'insertion.
func (uc *LieuUseCase) List() ([]dto.LieuResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LieuResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLieuResponse(l))
	}
	return items, nil
}

// GetByID renvoie un lieu, ou (nil, nil) s'il n'existe pas.
func (uc *LieuUseCase) GetByID(id int64) (*dto.LieuResponse, error) {
	lieu, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lieu == nil {
		return nil, nil
	}
	return toLieuResponse(lieu), nil
}

// Create persiste un nouveau lieu; l'identifiant est généré par la base.
func (uc *LieuUseCase) Create(in dto.CreateLieuRequest) (*dto.LieuResponse, error) {
	lieu := &entity.Lieu{
		Nom:        in.Nom,
		Adresse:    in.Adresse,
		CodePostal: in.CodePostal,
		Ville:      in.Ville,
	}
	if err := uc.repo.Create(lieu); err != nil {
		return nil, err
	}
	return toLieuResponse(lieu), nil
}

// Update applique uniquement les champs présents du payload sur la ligne
// existante, puis persiste en un seul UPDATE. Renvoie (nil, nil) si absent.
func (uc *LieuUseCase) Update(id int64, in dto.UpdateLieuRequest) (*dto.LieuResponse, error) {
	lieu, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lieu == nil {
		return nil, nil
	}
	if in.Nom != nil {
		lieu.Nom = *in.Nom
	}
	if in.Adresse != nil {
		lieu.Adresse = *in.Adresse
	}
	if in.CodePostal != nil {
		lieu.CodePostal = *in.CodePostal
	}
	if in.Ville != nil {
		lieu.Ville = *in.Ville
	}
	if err := uc.repo.Update(lieu); err != nil {
		return nil, err
	}
	return toLieuResponse(lieu), nil
}

// Delete supprime le lieu et ses lignes de stock dans une même transaction.
// Renvoie (false, nil) si le lieu n'existe pas.
func (uc *LieuUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	lieu, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if lieu == nil {
		return false, nil
	}
	err = uc.tx.Run(ctx, func(
		_ repository.ProduitRepository,
		lieux repository.LieuRepository,
		stocks repository.ProduitLieuRepository,
	) error {
		if err := stocks.DeleteByLieu(id); err != nil {
			return err
		}
		return lieux.Delete(id)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toLieuResponse(l *entity.Lieu) *dto.LieuResponse {
	if l == nil {
		return nil
	}
	return &dto.LieuResponse{
		IDLieu:     l.ID,
		Nom:        l.Nom,
		Adresse:    l.Adresse,
		CodePostal: l.CodePostal,
		Ville:      l.Ville,
	}
}
