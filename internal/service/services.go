package service

import (
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/config"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/crypto"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/store"
)

type Services struct {
	AuthService     AuthService
	RecipeService   RecipeService
	CategoryService CategoryService
}

func NewServices(repositories *store.Repositories, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, hasher, cfg.App, logger),
		RecipeService:   NewRecipeService(repositories.RecipeRepository, logger),
		CategoryService: NewCategoryService(repositories.CategoryRepository, logger),
	}
}
