package catalog

import (
	"context"
	"cooking-half/domain"
)

type (
	CatalogService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetDietaryRestrictions(ctx context.Context) ([]domain.DietaryRestrictionResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, domain.CategoryResponse{
			CategoryID: category.ID,
			Name:       category.Name,
		})
	}
	return responses, nil
}

func (s *catalogService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.catalogRepository.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, domain.IngredientResponse{
			IngredientID: ingredient.ID,
			Name:         ingredient.Name,
		})
	}
	return responses, nil
}

func (s *catalogService) GetDietaryRestrictions(ctx context.Context) ([]domain.DietaryRestrictionResponse, error) {
	restrictions, err := s.catalogRepository.ListRestrictions(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.DietaryRestrictionResponse, 0, len(restrictions))
	for _, restriction := range restrictions {
		responses = append(responses, domain.DietaryRestrictionResponse{
			DietaryRestrictionID: restriction.ID,
			Name:                 restriction.Name,
		})
	}
	return responses, nil
}
