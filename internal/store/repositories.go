package store

import "github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"

// Repositories bundles all persistence-layer interfaces for injection into
// the service layer.
type Repositories struct {
	UserRepository     UserRepository
	RecipeRepository   RecipeRepository
	CategoryRepository CategoryRepository
}

// NewRepositories constructs every repository on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		RecipeRepository:   NewRecipeRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
	}
}
