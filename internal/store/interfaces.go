package store

import (
	"context"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// UserRepository provides access to user account records. The authentication
// service is its only consumer; accounts are created at registration and read
// during login, never mutated by the auth flow.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecipeRepository provides owner-scoped access to recipe records. Every
// method takes the owner's user ID; rows belonging to other users are
// invisible through this interface.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	FindRecipes(ctx context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error)
	FindRecipeByID(ctx context.Context, id, userID int64) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID int64, update models.UpdateRecipeRequest) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID int64) error
}

// CategoryRepository provides read access to the shared category reference
// data.
type CategoryRepository interface {
	FindCategories(ctx context.Context, search models.CategorySearch) ([]models.Category, int64, error)
	FindCategoryByID(ctx context.Context, id int64) (models.Category, error)
}
