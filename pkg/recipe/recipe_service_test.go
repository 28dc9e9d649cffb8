package recipe

import (
	"context"
	"testing"
	"time"

	"cooking-half/domain"
	"cooking-half/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes      map[uint]*entities.Recipe
	links        map[uint][]*entities.RecipeIngredient
	restrictions map[uint][]*entities.DietaryRestriction
	categories   map[uint]bool
	ingredients  map[uint]string
	known        map[uint]string
	deleted      []uint
	nextID       uint
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:      map[uint]*entities.Recipe{},
		links:        map[uint][]*entities.RecipeIngredient{},
		restrictions: map[uint][]*entities.DietaryRestriction{},
		categories:   map[uint]bool{},
		ingredients:  map[uint]string{},
		known:        map[uint]string{},
	}
}

func (r *fakeRecipeRepository) CreateWithLinks(_ context.Context, recipe *entities.Recipe, ingredients []domain.IngredientEntry, restrictionIDs []uint) error {
	if recipe.CategoryID != nil && !r.categories[*recipe.CategoryID] {
		return domain.ErrCategoryNotFound
	}
	for _, entry := range ingredients {
		if _, ok := r.ingredients[entry.IngredientID]; !ok {
			return domain.ErrIngredientNotFound
		}
	}
	for _, id := range restrictionIDs {
		if _, ok := r.known[id]; !ok {
			return domain.ErrRestrictionNotFound
		}
	}

	r.nextID++
	recipe.ID = r.nextID
	r.recipes[recipe.ID] = recipe
	for _, entry := range ingredients {
		r.links[recipe.ID] = append(r.links[recipe.ID], &entities.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: entry.IngredientID,
			Quantity:     entry.Quantity,
			Unit:         entry.Unit,
			Ingredient:   &entities.Ingredient{ID: entry.IngredientID, Name: r.ingredients[entry.IngredientID]},
		})
	}
	for _, id := range restrictionIDs {
		r.restrictions[recipe.ID] = append(r.restrictions[recipe.ID], &entities.DietaryRestriction{
			ID:   id,
			Name: r.known[id],
		})
	}
	return nil
}

func (r *fakeRecipeRepository) GetByID(_ context.Context, id uint) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *recipe
	return &clone, nil
}

func (r *fakeRecipeRepository) List(_ context.Context, _ domain.RecipeFilter) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, recipe := range r.recipes {
		out = append(out, recipe)
	}
	return out, nil
}

// Update stamps UpdatedAt like the gorm save it stands in for.
func (r *fakeRecipeRepository) Update(_ context.Context, recipe *entities.Recipe) error {
	recipe.UpdatedAt = time.Now()
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *fakeRecipeRepository) DeleteCascade(_ context.Context, id uint) error {
	if _, ok := r.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(r.recipes, id)
	delete(r.links, id)
	delete(r.restrictions, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRecipeRepository) GetIngredients(_ context.Context, recipeID uint) ([]*entities.RecipeIngredient, error) {
	return r.links[recipeID], nil
}

func (r *fakeRecipeRepository) GetRestrictions(_ context.Context, recipeID uint) ([]*entities.DietaryRestriction, error) {
	return r.restrictions[recipeID], nil
}

func (r *fakeRecipeRepository) CategoryExists(_ context.Context, id uint) (bool, error) {
	return r.categories[id], nil
}

// stubInteractions provides fixed rating aggregates; nothing else is
// reachable through the recipe service.
type stubInteractions struct {
	avg   float64
	count int64
}

func (s *stubInteractions) RecipeExists(context.Context, uint) (bool, error) { return false, nil }
func (s *stubInteractions) SaveRating(context.Context, uint, uint, int) error {
	return nil
}
func (s *stubInteractions) AggregateRating(context.Context, uint) (float64, int64, error) {
	return s.avg, s.count, nil
}
func (s *stubInteractions) CreateComment(context.Context, *entities.Comment) error { return nil }
func (s *stubInteractions) ListComments(context.Context, uint) ([]*entities.Comment, error) {
	return nil, nil
}
func (s *stubInteractions) CreateFavorite(context.Context, *entities.Favorite) error { return nil }
func (s *stubInteractions) IsFavorited(context.Context, uint, uint) (bool, error) {
	return false, nil
}
func (s *stubInteractions) DeleteFavorite(context.Context, uint, uint) (int64, error) {
	return 0, nil
}
func (s *stubInteractions) ListFavorites(context.Context, uint) ([]*entities.Favorite, error) {
	return nil, nil
}

func TestCreateRecipeReturnsNewID(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, &stubInteractions{})

	id, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "soup",
		Description:  "warm",
		Instructions: "boil",
	}, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
	assert.Equal(t, uint(7), repo.recipes[id].UserID)
}

func TestCreateRecipeUnknownCategory(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, &stubInteractions{})

	category := uint(9)
	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "soup",
		Description:  "warm",
		Instructions: "boil",
		CategoryID:   &category,
	}, 7)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Empty(t, repo.recipes)
}

func TestCreateRecipeUnknownIngredient(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, &stubInteractions{})

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "soup",
		Description:  "warm",
		Instructions: "boil",
		Ingredients:  []domain.IngredientEntry{{IngredientID: 42, Quantity: 1, Unit: "cup"}},
	}, 7)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestCreateRecipeCollapsesRepeatedRestrictions(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.known[4] = "vegan"
	repo.known[5] = "gluten-free"
	service := NewRecipeService(repo, &stubInteractions{})

	id, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:               "soup",
		Description:         "warm",
		Instructions:        "boil",
		DietaryRestrictions: []uint{4, 4, 5, 4},
	}, 7)
	require.NoError(t, err)

	restrictions := repo.restrictions[id]
	require.Len(t, restrictions, 2)
	assert.Equal(t, uint(4), restrictions[0].ID)
	assert.Equal(t, uint(5), restrictions[1].ID)
}

func TestListRecipesMapsAuthor(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes[1] = &entities.Recipe{
		ID:          1,
		UserID:      7,
		Title:       "soup",
		Description: "warm",
		User:        &entities.User{ID: 7, Username: "alice"},
	}
	service := NewRecipeService(repo, &stubInteractions{})

	summaries, err := service.ListRecipes(context.Background(), domain.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "soup", summaries[0].Title)
	assert.Equal(t, "alice", summaries[0].Author)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), &stubInteractions{})

	_, err := service.GetRecipeDetail(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetailAggregates(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.categories[3] = true
	repo.ingredients[10] = "carrot"
	repo.known[4] = "vegan"
	service := NewRecipeService(repo, &stubInteractions{avg: 4.25, count: 4})

	category := uint(3)
	id, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:               "soup",
		Description:         "warm",
		Instructions:        "boil",
		CategoryID:          &category,
		Ingredients:         []domain.IngredientEntry{{IngredientID: 10, Quantity: 2, Unit: "pcs"}},
		DietaryRestrictions: []uint{4},
	}, 7)
	require.NoError(t, err)
	repo.recipes[id].User = &entities.User{ID: 7, Username: "alice"}
	repo.recipes[id].Category = &entities.Category{ID: 3, Name: "Soups"}

	detail, err := service.GetRecipeDetail(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "alice", detail.Author.Username)
	require.NotNil(t, detail.Category)
	assert.Equal(t, "Soups", detail.Category.Name)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "carrot", detail.Ingredients[0].Name)
	assert.Equal(t, 2.0, detail.Ingredients[0].Quantity)
	require.Len(t, detail.DietaryRestrictions, 1)
	assert.Equal(t, "vegan", detail.DietaryRestrictions[0].Name)
	assert.Equal(t, 4.3, detail.AverageRating)
	assert.Equal(t, int64(4), detail.RatingsCount)
}

func TestUpdateRecipeRequiresOwnership(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes[1] = &entities.Recipe{ID: 1, UserID: 7, Title: "soup"}
	service := NewRecipeService(repo, &stubInteractions{})

	title := "stolen"
	err := service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{Title: &title}, 8)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.Equal(t, "soup", repo.recipes[1].Title)
}

func TestUpdateRecipeAppliesOnlyPresentFields(t *testing.T) {
	repo := newFakeRecipeRepository()
	servings := 2
	repo.recipes[1] = &entities.Recipe{
		ID:           1,
		UserID:       7,
		Title:        "soup",
		Description:  "warm",
		Instructions: "boil",
		Servings:     &servings,
	}
	service := NewRecipeService(repo, &stubInteractions{})

	title := "stew"
	err := service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{Title: &title}, 7)
	require.NoError(t, err)

	updated := repo.recipes[1]
	assert.Equal(t, "stew", updated.Title)
	assert.Equal(t, "warm", updated.Description)
	require.NotNil(t, updated.Servings)
	assert.Equal(t, 2, *updated.Servings)
}

func TestUpdateRecipeAdvancesUpdatedAt(t *testing.T) {
	repo := newFakeRecipeRepository()
	stale := time.Now().Add(-time.Hour)
	recipe := &entities.Recipe{ID: 1, UserID: 7, Title: "soup"}
	recipe.UpdatedAt = stale
	repo.recipes[1] = recipe
	service := NewRecipeService(repo, &stubInteractions{})

	title := "stew"
	require.NoError(t, service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{Title: &title}, 7))

	assert.True(t, repo.recipes[1].UpdatedAt.After(stale))
}

func TestUpdateRecipeUnknownCategory(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes[1] = &entities.Recipe{ID: 1, UserID: 7, Title: "soup"}
	service := NewRecipeService(repo, &stubInteractions{})

	category := uint(99)
	err := service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{
		CategoryID: domain.Optional[uint]{Present: true, Value: &category},
	}, 7)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestUpdateRecipeClearsNullableFieldsOnNull(t *testing.T) {
	repo := newFakeRecipeRepository()
	category := uint(3)
	image := "/uploads/soup.jpg"
	repo.categories[3] = true
	repo.recipes[1] = &entities.Recipe{
		ID:         1,
		UserID:     7,
		Title:      "soup",
		CategoryID: &category,
		ImageURL:   &image,
	}
	service := NewRecipeService(repo, &stubInteractions{})

	err := service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{
		CategoryID: domain.Optional[uint]{Present: true},
		ImageURL:   domain.Optional[string]{Present: true},
	}, 7)
	require.NoError(t, err)

	updated := repo.recipes[1]
	assert.Nil(t, updated.CategoryID)
	assert.Nil(t, updated.ImageURL)
}

func TestUpdateRecipeAbsentFieldsLeaveNullablesAlone(t *testing.T) {
	repo := newFakeRecipeRepository()
	category := uint(3)
	repo.categories[3] = true
	repo.recipes[1] = &entities.Recipe{ID: 1, UserID: 7, Title: "soup", CategoryID: &category}
	service := NewRecipeService(repo, &stubInteractions{})

	title := "stew"
	err := service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{Title: &title}, 7)
	require.NoError(t, err)

	require.NotNil(t, repo.recipes[1].CategoryID)
	assert.Equal(t, uint(3), *repo.recipes[1].CategoryID)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), &stubInteractions{})

	title := "x"
	err := service.UpdateRecipe(context.Background(), 1, domain.UpdateRecipeRequest{Title: &title}, 7)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRecipeRequiresOwnership(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes[1] = &entities.Recipe{ID: 1, UserID: 7, Title: "soup"}
	service := NewRecipeService(repo, &stubInteractions{})

	err := service.DeleteRecipe(context.Background(), 1, 8)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.Contains(t, repo.recipes, uint(1))
}

func TestDeleteRecipeCascades(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes[1] = &entities.Recipe{ID: 1, UserID: 7, Title: "soup"}
	repo.links[1] = []*entities.RecipeIngredient{{RecipeID: 1, IngredientID: 10}}
	service := NewRecipeService(repo, &stubInteractions{})

	require.NoError(t, service.DeleteRecipe(context.Background(), 1, 7))
	assert.Equal(t, []uint{1}, repo.deleted)
	assert.NotContains(t, repo.recipes, uint(1))
	assert.Empty(t, repo.links[1])
}
