package routes

import (
	"cooking-half/internal/api/handlers"
	"cooking-half/internal/middleware"
	"cooking-half/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RecipeHandler      handlers.RecipeHandler
	CatalogHandler     handlers.CatalogHandler
	InteractionHandler handlers.InteractionHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Recipes()
	c.Catalog()
}

func (c *Config) Auth() {
	api := c.App.Group("/api")
	{
		api.Post("/register", c.UserHandler.Register)
		api.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Users() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	user := c.App.Group("/api/user")
	// the literal "me" segment has to be registered before ":id"
	{
		user.Get("/me", auth, c.UserHandler.Me)
		user.Get("/me/favorites", auth, c.InteractionHandler.GetFavorites)
		user.Post("/me/profile-image", auth, c.UserHandler.UploadProfileImage)
		user.Get("/:id", auth, c.UserHandler.GetUser)
		user.Put("/:id", auth, c.UserHandler.UpdateUser)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/ratings", auth, c.InteractionHandler.RateRecipe)
		recipes.Get("/:id/ratings", c.InteractionHandler.GetRatings)
		recipes.Post("/:id/comments", auth, c.InteractionHandler.AddComment)
		recipes.Get("/:id/comments", c.InteractionHandler.GetComments)
		recipes.Post("/:id/favorites", auth, c.InteractionHandler.AddFavorite)
		recipes.Delete("/:id/favorites", auth, c.InteractionHandler.RemoveFavorite)
	}
}

func (c *Config) Catalog() {
	api := c.App.Group("/api")
	{
		api.Get("/categories", c.CatalogHandler.GetCategories)
		api.Get("/ingredients", c.CatalogHandler.GetIngredients)
		api.Get("/dietary-restrictions", c.CatalogHandler.GetDietaryRestrictions)
	}
}
