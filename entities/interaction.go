package entities

import (
	"time"
)

// One rating per (user, recipe); the composite unique index is the
// enforcement mechanism of record, resubmissions update the row in place.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"rating_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_ratings_user_recipe" json:"recipe_id"`
	Value     int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"comment_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"favorite_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
