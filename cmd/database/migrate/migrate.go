package migration

import (
	"fmt"
	"log"

	"cooking-half/entities"

	"gorm.io/gorm"
)

// Migrate creates the schema. Parents go first so the foreign key
// constraints on the child tables resolve.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating users: %v", err)
		return err
	}
	if err := db.AutoMigrate(
		&entities.Category{},
		&entities.Ingredient{},
		&entities.DietaryRestriction{},
	); err != nil {
		log.Fatalf("Error migrating catalog tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipes: %v", err)
		return err
	}
	if err := db.AutoMigrate(
		&entities.RecipeIngredient{},
		&entities.RecipeDietaryRestriction{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.Favorite{},
	); err != nil {
		log.Fatalf("Error migrating recipe detail tables: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
