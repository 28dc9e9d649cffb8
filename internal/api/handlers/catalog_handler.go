package handlers

import (
	"cooking-half/domain"
	"cooking-half/internal/api/presenters"
	"cooking-half/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetDietaryRestrictions(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetCategories, err)
	}
	return presenters.DataResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.catalogService.GetIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetIngredients, err)
	}
	return presenters.DataResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) GetDietaryRestrictions(c *fiber.Ctx) error {
	res, err := h.catalogService.GetDietaryRestrictions(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetRestrictions, err)
	}
	return presenters.DataResponse(c, res, fiber.StatusOK)
}
