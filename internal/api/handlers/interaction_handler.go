package handlers

import (
	"cooking-half/domain"
	"cooking-half/internal/api/presenters"
	"cooking-half/pkg/interaction"

	"github.com/gofiber/fiber/v2"
)

type (
	InteractionHandler interface {
		RateRecipe(c *fiber.Ctx) error
		GetRatings(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
	}

	interactionHandler struct {
		interactionService interaction.InteractionService
	}
)

func NewInteractionHandler(interactionService interaction.InteractionService) InteractionHandler {
	return &interactionHandler{interactionService: interactionService}
}

func (h *interactionHandler) RateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	req := new(domain.RateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.interactionService.RateRecipe(c.Context(), recipeID, userID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *interactionHandler) GetRatings(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	res, err := h.interactionService.GetRatingSummary(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetRatings, err)
	}

	return presenters.DataResponse(c, res, fiber.StatusOK)
}

func (h *interactionHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	req := new(domain.AddCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.interactionService.AddComment(c.Context(), recipeID, userID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *interactionHandler) GetComments(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	res, err := h.interactionService.GetComments(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetComments, err)
	}

	return presenters.DataResponse(c, res, fiber.StatusOK)
}

func (h *interactionHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	if err := h.interactionService.AddFavorite(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *interactionHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	if err := h.interactionService.RemoveFavorite(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *interactionHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	res, err := h.interactionService.GetFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetFavorites, err)
	}

	return presenters.DataResponse(c, res, fiber.StatusOK)
}
