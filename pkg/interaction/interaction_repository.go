package interaction

import (
	"context"
	"cooking-half/entities"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	InteractionRepository interface {
		RecipeExists(ctx context.Context, recipeID uint) (bool, error)
		SaveRating(ctx context.Context, userID, recipeID uint, value int) error
		AggregateRating(ctx context.Context, recipeID uint) (float64, int64, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
		ListComments(ctx context.Context, recipeID uint) ([]*entities.Comment, error)
		CreateFavorite(ctx context.Context, favorite *entities.Favorite) error
		IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error)
		DeleteFavorite(ctx context.Context, userID, recipeID uint) (int64, error)
		ListFavorites(ctx context.Context, userID uint) ([]*entities.Favorite, error)
	}

	interactionRepository struct {
		db *gorm.DB
	}
)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) RecipeExists(ctx context.Context, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveRating overwrites an existing (user, recipe) rating instead of
// creating a duplicate row.
func (r *interactionRepository) SaveRating(ctx context.Context, userID, recipeID uint, value int) error {
	var existing entities.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		existing.Value = value
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rating := entities.Rating{
		UserID:    userID,
		RecipeID:  recipeID,
		Value:     value,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&rating).Error
}

func (r *interactionRepository) AggregateRating(ctx context.Context, recipeID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("COALESCE(AVG(value), 0) AS avg, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}

func (r *interactionRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *interactionRepository) ListComments(ctx context.Context, recipeID uint) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *interactionRepository) CreateFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *interactionRepository) IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *interactionRepository) DeleteFavorite(ctx context.Context, userID, recipeID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *interactionRepository) ListFavorites(ctx context.Context, userID uint) ([]*entities.Favorite, error) {
	var favorites []*entities.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}
