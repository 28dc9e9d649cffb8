package config

import (
	"os"

	"cooking-half/internal/api/handlers"
	"cooking-half/internal/api/routes"
	"cooking-half/internal/middleware"
	"cooking-half/internal/utils"
	"cooking-half/internal/utils/storage"
	"cooking-half/pkg/catalog"
	"cooking-half/pkg/interaction"
	"cooking-half/pkg/jwt"
	"cooking-half/pkg/recipe"
	"cooking-half/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	cfg := utils.AppConfig()

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	// utils
	uploads, err := storage.NewGateway(storage.Config{
		UseS3:     cfg.UseS3,
		Bucket:    cfg.AWSS3Bucket,
		Region:    cfg.AWSS3Region,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
		LocalDir:  cfg.UploadDir,
	})
	if err != nil {
		return nil, err
	}
	if !cfg.UseS3 {
		dir := cfg.UploadDir
		if dir == "" {
			dir = "./uploads"
		}
		app.Static("/uploads", dir)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	interactionRepository := interaction.NewInteractionRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)
	userService := user.NewUserService(userRepository, jwtService, uploads)
	recipeService := recipe.NewRecipeService(recipeRepository, interactionRepository)
	catalogService := catalog.NewCatalogService(catalogRepository)
	interactionService := interaction.NewInteractionService(interactionRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RecipeHandler:      recipeHandler,
		CatalogHandler:     catalogHandler,
		InteractionHandler: interactionHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
