package recipe

import (
	"context"
	"cooking-half/domain"
	"cooking-half/entities"
	"cooking-half/pkg/interaction"
	"errors"
	"math"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uint) (uint, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID uint) error
		DeleteRecipe(ctx context.Context, id uint, userID uint) error
	}

	recipeService struct {
		recipeRepository      RecipeRepository
		interactionRepository interaction.InteractionRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, interactionRepository interaction.InteractionRepository) RecipeService {
	return &recipeService{
		recipeRepository:      recipeRepository,
		interactionRepository: interactionRepository,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeSummary, error) {
	recipes, err := s.recipeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summary := domain.RecipeSummary{
			RecipeID:    recipe.ID,
			Title:       recipe.Title,
			Description: recipe.Description,
			ImageURL:    recipe.ImageURL,
		}
		if recipe.User != nil {
			summary.Author = recipe.User.Username
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	links, err := s.recipeRepository.GetIngredients(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	restrictions, err := s.recipeRepository.GetRestrictions(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	avg, count, err := s.interactionRepository.AggregateRating(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		RecipeID:            recipe.ID,
		Title:               recipe.Title,
		Description:         recipe.Description,
		Instructions:        recipe.Instructions,
		ImageURL:            recipe.ImageURL,
		PrepTime:            recipe.PrepTime,
		CookTime:            recipe.CookTime,
		Servings:            recipe.Servings,
		Ingredients:         make([]domain.RecipeIngredientInfo, 0, len(links)),
		DietaryRestrictions: make([]domain.RecipeRestrictionInfo, 0, len(restrictions)),
		AverageRating:       math.Round(avg*10) / 10,
		RatingsCount:        count,
		CreatedAt:           recipe.CreatedAt,
		UpdatedAt:           recipe.UpdatedAt,
	}

	if recipe.User != nil {
		detail.Author = domain.RecipeAuthor{
			UserID:   recipe.User.ID,
			Username: recipe.User.Username,
		}
	}
	if recipe.Category != nil {
		detail.Category = &domain.RecipeCategory{
			CategoryID: recipe.Category.ID,
			Name:       recipe.Category.Name,
		}
	}

	for _, link := range links {
		info := domain.RecipeIngredientInfo{
			IngredientID: link.IngredientID,
			Quantity:     link.Quantity,
			Unit:         link.Unit,
		}
		if link.Ingredient != nil {
			info.Name = link.Ingredient.Name
		}
		detail.Ingredients = append(detail.Ingredients, info)
	}
	for _, restriction := range restrictions {
		detail.DietaryRestrictions = append(detail.DietaryRestrictions, domain.RecipeRestrictionInfo{
			DietaryRestrictionID: restriction.ID,
			Name:                 restriction.Name,
		})
	}

	return detail, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uint) (uint, error) {
	recipe := &entities.Recipe{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		CategoryID:   req.CategoryID,
		ImageURL:     req.ImageURL,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
	}

	// the link table is unique per (recipe, restriction); a repeated id
	// in the payload is collapsed rather than rejected
	restrictionIDs := make([]uint, 0, len(req.DietaryRestrictions))
	seen := make(map[uint]struct{}, len(req.DietaryRestrictions))
	for _, restrictionID := range req.DietaryRestrictions {
		if _, ok := seen[restrictionID]; ok {
			continue
		}
		seen[restrictionID] = struct{}{}
		restrictionIDs = append(restrictionIDs, restrictionID)
	}

	if err := s.recipeRepository.CreateWithLinks(ctx, recipe, req.Ingredients, restrictionIDs); err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

// UpdateRecipe applies only the fields present in the payload; the
// repository save refreshes updated_at.
func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID uint) error {
	recipe, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !entities.IsOwner(recipe, userID) {
		return domain.ErrUserNotAllowed
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.CategoryID.Present {
		if req.CategoryID.Value != nil {
			exists, err := s.recipeRepository.CategoryExists(ctx, *req.CategoryID.Value)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrCategoryNotFound
			}
		}
		recipe.CategoryID = req.CategoryID.Value
	}
	if req.ImageURL.Present {
		recipe.ImageURL = req.ImageURL.Value
	}
	if req.PrepTime != nil {
		recipe.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = req.CookTime
	}
	if req.Servings != nil {
		recipe.Servings = req.Servings
	}

	// Save the bare entity so stale preloaded associations are not written back.
	recipe.User = nil
	recipe.Category = nil
	return s.recipeRepository.Update(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID uint) error {
	recipe, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !entities.IsOwner(recipe, userID) {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteCascade(ctx, id)
}
