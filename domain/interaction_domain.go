package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRateRecipe     = "Rating submitted successfully"
	MessageSuccessGetRatings     = "success get ratings"
	MessageSuccessAddComment     = "Comment added successfully"
	MessageSuccessGetComments    = "success get comments"
	MessageSuccessAddFavorite    = "Recipe favorited successfully"
	MessageSuccessRemoveFavorite = "Recipe unfavorited successfully"
	MessageSuccessGetFavorites   = "success get favorites"

	MessageFailedRateRecipe     = "failed to submit rating"
	MessageFailedGetRatings     = "failed to get ratings"
	MessageFailedAddComment     = "failed to add comment"
	MessageFailedGetComments    = "failed to get comments"
	MessageFailedAddFavorite    = "failed to favorite recipe"
	MessageFailedRemoveFavorite = "failed to unfavorite recipe"
	MessageFailedGetFavorites   = "failed to get favorites"

	ErrInvalidRating    = errors.New("rating must be an integer between 1 and 5")
	ErrEmptyComment     = errors.New("comment must not be empty")
	ErrCommentTooLong   = errors.New("comment must be at most 1000 characters")
	ErrAlreadyFavorited = errors.New("recipe already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type (
	RateRecipeRequest struct {
		Rating int `json:"rating"`
	}

	RatingSummary struct {
		AverageRating   float64 `json:"average_rating"`
		NumberOfRatings int64   `json:"number_of_ratings"`
	}

	AddCommentRequest struct {
		Content string `json:"content"`
	}

	CommentResponse struct {
		CommentID uint      `json:"comment_id"`
		UserID    uint      `json:"user_id"`
		Username  string    `json:"username"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}

	FavoriteResponse struct {
		RecipeID    uint    `json:"recipe_id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		ImageURL    *string `json:"image_url"`
	}
)
