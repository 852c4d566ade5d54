package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/payetonkawa/api-produit/internal/application/dto"
	"github.com/payetonkawa/api-produit/internal/application/usecase"
)

// ProduitHandler gère les requêtes HTTP des produits (routes protégées par le
// middleware token).
type ProduitHandler struct {
	uc *usecase.ProduitUseCase
}

// NewProduitHandler construit le handler.
func NewProduitHandler(uc *usecase.ProduitUseCase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

// List renvoie tous les produits.
func (h *ProduitHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return connectionFailed(c, err)
	}
	return c.JSON(items)
}

// GetByID renvoie le produit trouvé par son id.
func (h *ProduitHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return connectionFailed(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Produit not found"})
	}
	return c.JSON(out)
}

// Create crée un nouveau produit.
func (h *ProduitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(dto.ValidationErrorResponse{Detail: details})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return connectionFailed(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update met à jour les champs présents du payload (PATCH partiel).
func (h *ProduitHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(dto.ValidationErrorResponse{Detail: details})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return connectionFailed(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Produit not found"})
	}
	return c.JSON(out)
}

// Delete supprime un produit et ses lignes de stock.
func (h *ProduitHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	found, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return connectionFailed(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Produit not found"})
	}
	return c.JSON(dto.DeletedResponse{Deleted: id})
}

// parseID lit le paramètre de chemin id comme entier.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// invalidID id de chemin non entier -> 422 avec le champ en cause.
func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Detail: []dto.FieldError{{Field: "id", Message: "Must be an integer"}},
	})
}

// invalidBody corps non désérialisable -> 422.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Detail: []dto.FieldError{{Field: "body", Message: "Invalid JSON body"}},
	})
}

// connectionFailed toute autre panne de la couche de persistance -> 500,
// message du format historique.
func connectionFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.ErrorResponse{Detail: "Connection failed: " + err.Error()})
}
