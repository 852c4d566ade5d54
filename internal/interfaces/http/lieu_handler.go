package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/payetonkawa/api-produit/internal/application/dto"
	"github.com/payetonkawa/api-produit/internal/application/usecase"
)

// LieuHandler gère les requêtes HTTP des lieux (routes non protégées).
type LieuHandler struct {
	uc *usecase.LieuUseCase
}

// NewLieuHandler construit le handler.
func NewLieuHandler(uc *usecase.LieuUseCase) *LieuHandler {
	return &LieuHandler{uc: uc}
}

// List renvoie tous les lieux.
func (h *LieuHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return connectionFailed(c, err)
	}
	return c.JSON(items)
}

// GetByID renvoie le lieu trouvé par son id.
func (h *LieuHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return connectionFailed(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Lieu not found"})
	}
	return c.JSON(out)
}

// Create crée un nouveau lieu.
func (h *LieuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLieuRequest
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
func (h *LieuHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateLieuRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Lieu not found"})
	}
	return c.JSON(out)
}

// Delete supprime un lieu et ses lignes de stock.
func (h *LieuHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	found, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return connectionFailed(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Lieu not found"})
	}
	return c.JSON(dto.DeletedResponse{Deleted: id})
}
