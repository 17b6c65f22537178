package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/middleware"
	"foodgram/internal/modules/auth"
	"foodgram/internal/modules/cart"
	"foodgram/internal/modules/favorite"
	"foodgram/internal/modules/follow"
	"foodgram/internal/modules/ingredient"
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/tag"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db, cfg.IngredientSearchCaseInsensitive)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	followRepo := repository.NewFollowRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	recipeService := recipe.NewService(recipeRepo, ingredientRepo, tagRepo, favoriteRepo, cartRepo)
	recipeHandler := recipe.NewHandler(recipeService)

	favoriteService := favorite.NewService(favoriteRepo, recipeRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	cartService := cart.NewService(cartRepo, recipeRepo)
	cartHandler := cart.NewHandler(cartService)

	followService := follow.NewService(followRepo, userRepo, recipeRepo)
	followHandler := follow.NewHandler(followService)

	tagHandler := tag.NewHandler(tagRepo)
	ingredientHandler := ingredient.NewHandler(ingredientRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public reads carry optional auth so membership flags reflect
		// the caller when a token is present
		public := v1.Group("/")
		public.Use(middleware.OptionalAuth(j))

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))

		authHandler.RegisterRoutes(public, protected)
		tagHandler.RegisterRoutes(public)
		ingredientHandler.RegisterRoutes(public)
		recipeHandler.RegisterRoutes(public, protected)
		favoriteHandler.RegisterRoutes(protected)
		cartHandler.RegisterRoutes(protected)
		followHandler.RegisterRoutes(protected)
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
