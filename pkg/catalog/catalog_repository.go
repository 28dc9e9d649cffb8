package catalog

import (
	"context"
	"cooking-half/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		ListCategories(ctx context.Context) ([]*entities.Category, error)
		ListIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		ListRestrictions(ctx context.Context) ([]*entities.DietaryRestriction, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *catalogRepository) ListRestrictions(ctx context.Context) ([]*entities.DietaryRestriction, error) {
	var restrictions []*entities.DietaryRestriction
	if err := r.db.WithContext(ctx).Order("name asc").Find(&restrictions).Error; err != nil {
		return nil, err
	}
	return restrictions, nil
}
