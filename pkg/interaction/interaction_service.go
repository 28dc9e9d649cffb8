package interaction

import (
	"context"
	"cooking-half/domain"
	"cooking-half/entities"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

type (
	InteractionService interface {
		RateRecipe(ctx context.Context, recipeID, userID uint, req domain.RateRecipeRequest) error
		GetRatingSummary(ctx context.Context, recipeID uint) (domain.RatingSummary, error)
		AddComment(ctx context.Context, recipeID, userID uint, req domain.AddCommentRequest) error
		GetComments(ctx context.Context, recipeID uint) ([]domain.CommentResponse, error)
		AddFavorite(ctx context.Context, recipeID, userID uint) error
		RemoveFavorite(ctx context.Context, recipeID, userID uint) error
		GetFavorites(ctx context.Context, userID uint) ([]domain.FavoriteResponse, error)
	}

	interactionService struct {
		interactionRepository InteractionRepository
	}
)

func NewInteractionService(interactionRepository InteractionRepository) InteractionService {
	return &interactionService{interactionRepository: interactionRepository}
}

// RateRecipe checks the parent recipe before the payload, so a rating for
// a missing recipe reports not-found rather than a field error.
func (s *interactionService) RateRecipe(ctx context.Context, recipeID, userID uint, req domain.RateRecipeRequest) error {
	exists, err := s.interactionRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	if req.Rating < 1 || req.Rating > 5 {
		return domain.ErrInvalidRating
	}

	return s.interactionRepository.SaveRating(ctx, userID, recipeID, req.Rating)
}

func (s *interactionService) GetRatingSummary(ctx context.Context, recipeID uint) (domain.RatingSummary, error) {
	exists, err := s.interactionRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	if !exists {
		return domain.RatingSummary{}, domain.ErrRecipeNotFound
	}

	avg, count, err := s.interactionRepository.AggregateRating(ctx, recipeID)
	if err != nil {
		return domain.RatingSummary{}, err
	}

	return domain.RatingSummary{
		AverageRating:   math.Round(avg*10) / 10,
		NumberOfRatings: count,
	}, nil
}

func (s *interactionService) AddComment(ctx context.Context, recipeID, userID uint, req domain.AddCommentRequest) error {
	exists, err := s.interactionRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.ErrEmptyComment
	}
	if utf8.RuneCountInString(content) > 1000 {
		return domain.ErrCommentTooLong
	}

	comment := &entities.Comment{
		UserID:    userID,
		RecipeID:  recipeID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	return s.interactionRepository.CreateComment(ctx, comment)
}

func (s *interactionService) GetComments(ctx context.Context, recipeID uint) ([]domain.CommentResponse, error) {
	exists, err := s.interactionRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrRecipeNotFound
	}

	comments, err := s.interactionRepository.ListComments(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		res := domain.CommentResponse{
			CommentID: comment.ID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			res.Username = comment.User.Username
		}
		responses = append(responses, res)
	}
	return responses, nil
}

func (s *interactionService) AddFavorite(ctx context.Context, recipeID, userID uint) error {
	exists, err := s.interactionRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	favorited, err := s.interactionRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if favorited {
		return domain.ErrAlreadyFavorited
	}

	favorite := &entities.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return s.interactionRepository.CreateFavorite(ctx, favorite)
}

func (s *interactionService) RemoveFavorite(ctx context.Context, recipeID, userID uint) error {
	affected, err := s.interactionRepository.DeleteFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (s *interactionService) GetFavorites(ctx context.Context, userID uint) ([]domain.FavoriteResponse, error) {
	favorites, err := s.interactionRepository.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Recipe == nil {
			continue
		}
		responses = append(responses, domain.FavoriteResponse{
			RecipeID:    favorite.Recipe.ID,
			Title:       favorite.Recipe.Title,
			Description: favorite.Recipe.Description,
			ImageURL:    favorite.Recipe.ImageURL,
		})
	}
	return responses, nil
}
