package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "Recipe created successfully"
	MessageSuccessUpdateRecipe    = "Recipe updated successfully"
	MessageSuccessDeleteRecipe    = "Recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrRestrictionNotFound = errors.New("dietary restriction not found")
)

type (
	IngredientEntry struct {
		IngredientID uint    `json:"ingredient_id" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,max=50"`
	}

	CreateRecipeRequest struct {
		Title               string            `json:"title" validate:"required,max=200"`
		Description         string            `json:"description" validate:"required"`
		Instructions        string            `json:"instructions" validate:"required"`
		CategoryID          *uint             `json:"category_id"`
		ImageURL            *string           `json:"image_url"`
		PrepTime            *int              `json:"prep_time" validate:"omitempty,min=0"`
		CookTime            *int              `json:"cook_time" validate:"omitempty,min=0"`
		Servings            *int              `json:"servings" validate:"omitempty,gt=0"`
		Ingredients         []IngredientEntry `json:"ingredients" validate:"omitempty,dive"`
		DietaryRestrictions []uint            `json:"dietary_restrictions" validate:"omitempty,dive,gt=0"`
	}

	// CategoryID and ImageURL are nullable columns, so their update
	// fields track key presence: null clears, absence leaves alone.
	UpdateRecipeRequest struct {
		Title        *string          `json:"title" validate:"omitempty,max=200"`
		Description  *string          `json:"description" validate:"omitempty"`
		Instructions *string          `json:"instructions" validate:"omitempty"`
		CategoryID   Optional[uint]   `json:"category_id"`
		ImageURL     Optional[string] `json:"image_url"`
		PrepTime     *int             `json:"prep_time" validate:"omitempty,min=0"`
		CookTime     *int             `json:"cook_time" validate:"omitempty,min=0"`
		Servings     *int             `json:"servings" validate:"omitempty,gt=0"`
	}

	RecipeFilter struct {
		CategoryID uint
		DietaryID  uint
		Search     string
	}

	RecipeSummary struct {
		RecipeID    uint    `json:"recipe_id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		ImageURL    *string `json:"image_url"`
		Author      string  `json:"author"`
	}

	RecipeAuthor struct {
		UserID   uint   `json:"user_id"`
		Username string `json:"username"`
	}

	RecipeCategory struct {
		CategoryID uint   `json:"category_id"`
		Name       string `json:"name"`
	}

	RecipeIngredientInfo struct {
		IngredientID uint    `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}

	RecipeRestrictionInfo struct {
		DietaryRestrictionID uint   `json:"dietary_restriction_id"`
		Name                 string `json:"name"`
	}

	RecipeDetail struct {
		RecipeID            uint                    `json:"recipe_id"`
		Title               string                  `json:"title"`
		Description         string                  `json:"description"`
		Instructions        string                  `json:"instructions"`
		ImageURL            *string                 `json:"image_url"`
		PrepTime            *int                    `json:"prep_time"`
		CookTime            *int                    `json:"cook_time"`
		Servings            *int                    `json:"servings"`
		Author              RecipeAuthor            `json:"author"`
		Category            *RecipeCategory         `json:"category"`
		Ingredients         []RecipeIngredientInfo  `json:"ingredients"`
		DietaryRestrictions []RecipeRestrictionInfo `json:"dietary_restrictions"`
		AverageRating       float64                 `json:"average_rating"`
		RatingsCount        int64                   `json:"ratings_count"`
		CreatedAt           time.Time               `json:"created_at"`
		UpdatedAt           time.Time               `json:"updated_at"`
	}
)
