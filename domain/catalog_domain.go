package domain

var (
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessGetIngredients  = "success get ingredients"
	MessageSuccessGetRestrictions = "success get dietary restrictions"

	MessageFailedGetCategories   = "failed to get categories"
	MessageFailedGetIngredients  = "failed to get ingredients"
	MessageFailedGetRestrictions = "failed to get dietary restrictions"
)

type (
	CategoryResponse struct {
		CategoryID uint   `json:"category_id"`
		Name       string `json:"name"`
	}

	IngredientResponse struct {
		IngredientID uint   `json:"ingredient_id"`
		Name         string `json:"name"`
	}

	DietaryRestrictionResponse struct {
		DietaryRestrictionID uint   `json:"dietary_restriction_id"`
		Name                 string `json:"name"`
	}
)
