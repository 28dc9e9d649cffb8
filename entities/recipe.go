package entities

type Recipe struct {
	ID           uint    `gorm:"primaryKey" json:"recipe_id"`
	UserID       uint    `gorm:"not null;index" json:"user_id"`
	Title        string  `gorm:"size:200;not null" json:"title"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Instructions string  `gorm:"type:text;not null" json:"instructions"`
	CategoryID   *uint   `gorm:"index" json:"category_id,omitempty"`
	ImageURL     *string `gorm:"type:text" json:"image_url,omitempty"`
	PrepTime     *int    `json:"prep_time,omitempty"`
	CookTime     *int    `json:"cook_time,omitempty"`
	Servings     *int    `json:"servings,omitempty"`

	User        *User                       `gorm:"foreignKey:UserID" json:"-"`
	Category    *Category                   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	Ingredients []*RecipeIngredient         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Restriction []*RecipeDietaryRestriction `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings     []*Rating                   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Comments    []*Comment                  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites   []*Favorite                 `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (r *Recipe) OwnerID() uint { return r.UserID }

type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null" json:"ingredient_id"`
	Quantity     float64 `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Unit         string  `gorm:"size:50;not null" json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}

type RecipeDietaryRestriction struct {
	ID                   uint `gorm:"primaryKey" json:"id"`
	RecipeID             uint `gorm:"not null;uniqueIndex:idx_recipe_dietary" json:"recipe_id"`
	DietaryRestrictionID uint `gorm:"not null;uniqueIndex:idx_recipe_dietary" json:"dietary_restriction_id"`

	Recipe             *Recipe             `gorm:"foreignKey:RecipeID" json:"-"`
	DietaryRestriction *DietaryRestriction `gorm:"foreignKey:DietaryRestrictionID;constraint:OnDelete:CASCADE" json:"-"`
}
