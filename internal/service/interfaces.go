package service

import (
	"context"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type RecipeService interface {
	CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error)
	SearchRecipes(ctx context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error)
	GetRecipe(ctx context.Context, id, userID int64) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID int64, request models.UpdateRecipeRequest) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID int64) error
}

type CategoryService interface {
	SearchCategories(ctx context.Context, search models.CategorySearch) ([]models.Category, int64, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
}
