package recipe

import (
	"context"
	"cooking-half/domain"
	"cooking-half/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateWithLinks(ctx context.Context, recipe *entities.Recipe, ingredients []domain.IngredientEntry, restrictionIDs []uint) error
		GetByID(ctx context.Context, id uint) (*entities.Recipe, error)
		List(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		Update(ctx context.Context, recipe *entities.Recipe) error
		DeleteCascade(ctx context.Context, id uint) error
		GetIngredients(ctx context.Context, recipeID uint) ([]*entities.RecipeIngredient, error)
		GetRestrictions(ctx context.Context, recipeID uint) ([]*entities.DietaryRestriction, error)
		CategoryExists(ctx context.Context, id uint) (bool, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateWithLinks writes the recipe and its ingredient and dietary
// restriction links in a single transaction; an unknown link id aborts
// the whole create so no partial recipe survives.
func (r *recipeRepository) CreateWithLinks(ctx context.Context, recipe *entities.Recipe, ingredients []domain.IngredientEntry, restrictionIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if recipe.CategoryID != nil {
			var count int64
			if err := tx.Model(&entities.Category{}).Where("id = ?", *recipe.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrCategoryNotFound
			}
		}

		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for _, entry := range ingredients {
			var count int64
			if err := tx.Model(&entities.Ingredient{}).Where("id = ?", entry.IngredientID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrIngredientNotFound
			}

			link := entities.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: entry.IngredientID,
				Quantity:     entry.Quantity,
				Unit:         entry.Unit,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		for _, restrictionID := range restrictionIDs {
			var count int64
			if err := tx.Model(&entities.DietaryRestriction{}).Where("id = ?", restrictionID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrRestrictionNotFound
			}

			link := entities.RecipeDietaryRestriction{
				RecipeID:             recipe.ID,
				DietaryRestrictionID: restrictionID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List applies the category, dietary restriction and substring filters;
// they compose with AND.
func (r *recipeRepository) List(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Preload("User")

	if filter.CategoryID != 0 {
		query = query.Where("recipes.category_id = ?", filter.CategoryID)
	}
	if filter.DietaryID != 0 {
		query = query.
			Joins("JOIN recipe_dietary_restrictions ON recipes.id = recipe_dietary_restrictions.recipe_id").
			Where("recipe_dietary_restrictions.dietary_restriction_id = ?", filter.DietaryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("recipes.title ILIKE ? OR recipes.description ILIKE ?", pattern, pattern)
	}

	var recipes []*entities.Recipe
	if err := query.Order("recipes.created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteCascade removes the recipe and every dependent row in one
// transaction so no orphans remain.
func (r *recipeRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeDietaryRestriction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&entities.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID uint) ([]*entities.RecipeIngredient, error) {
	var links []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *recipeRepository) GetRestrictions(ctx context.Context, recipeID uint) ([]*entities.DietaryRestriction, error) {
	var restrictions []*entities.DietaryRestriction
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_dietary_restrictions ON dietary_restrictions.id = recipe_dietary_restrictions.dietary_restriction_id").
		Where("recipe_dietary_restrictions.recipe_id = ?", recipeID).
		Find(&restrictions).Error; err != nil {
		return nil, err
	}
	return restrictions, nil
}

func (r *recipeRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
