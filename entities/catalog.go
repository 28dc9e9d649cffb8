package entities

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"category_id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Recipes []*Recipe `gorm:"foreignKey:CategoryID" json:"-"`
}

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"ingredient_id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Recipes []*RecipeIngredient `gorm:"foreignKey:IngredientID" json:"-"`
}

type DietaryRestriction struct {
	ID   uint   `gorm:"primaryKey" json:"dietary_restriction_id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
