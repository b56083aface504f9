package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/store"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// recipeService is the concrete implementation of RecipeService. Every
// operation is scoped to the owning user taken from the access token, so one
// user can never read or modify another user's recipes.
type recipeService struct {
	recipeRepository store.RecipeRepository
	logger           *logger.Logger
}

// NewRecipeService constructs a RecipeService wired to the given repository.
func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

// CreateRecipe persists a new recipe for userID.
//
// Returns ErrInvalidDataProvided when the preparation instructions are empty.
func (s *recipeService) CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if request.Instructions == "" {
		log.Error().Int64("user_id", userID).Msg("invalid recipe data provided")
		return models.Recipe{}, ErrInvalidDataProvided
	}

	created, err := s.recipeRepository.CreateRecipe(ctx, models.Recipe{
		UserID:          userID,
		CategoryID:      request.CategoryID,
		Name:            request.Name,
		PrepTimeMinutes: request.PrepTimeMinutes,
		Servings:        request.Servings,
		Instructions:    request.Instructions,
		Ingredients:     request.Ingredients,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return created, nil
}

// SearchRecipes returns one page of the user's recipes matching the filters
// plus the total number of matches. Search defaults (limit, page, order) are
// applied here so that callers may pass a partially filled search.
func (s *recipeService) SearchRecipes(ctx context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error) {
	log := logger.FromContext(ctx)

	if err := search.Validate(); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid recipe search provided")
		return nil, 0, ErrInvalidDataProvided
	}
	search = search.Normalize()

	recipes, total, err := s.recipeRepository.FindRecipes(ctx, userID, search)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe search ended with error")
		return nil, 0, fmt.Errorf("recipe search ended with error: %w", err)
	}

	return recipes, total, nil
}

// GetRecipe returns a single recipe owned by userID.
//
// Returns ErrRecipeNotFound when the recipe does not exist or belongs to a
// different user.
func (s *recipeService) GetRecipe(ctx context.Context, id, userID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.FindRecipeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("recipe lookup ended with error")
		return models.Recipe{}, fmt.Errorf("recipe lookup ended with error: %w", err)
	}

	return recipe, nil
}

// UpdateRecipe applies a partial update to a recipe owned by userID and
// returns the updated row.
//
// Returns ErrInvalidDataProvided when no field is set in the request and
// ErrRecipeNotFound when the recipe does not exist for this owner.
func (s *recipeService) UpdateRecipe(ctx context.Context, id, userID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if request == (models.UpdateRecipeRequest{}) {
		log.Error().Int64("id", id).Int64("user_id", userID).Msg("empty recipe update provided")
		return models.Recipe{}, ErrInvalidDataProvided
	}
	if request.Instructions != nil && *request.Instructions == "" {
		log.Error().Int64("id", id).Int64("user_id", userID).Msg("empty instructions in recipe update")
		return models.Recipe{}, ErrInvalidDataProvided
	}

	updated, err := s.recipeRepository.UpdateRecipe(ctx, id, userID, request)
	if err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("recipe update ended with error")
		return models.Recipe{}, fmt.Errorf("recipe update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteRecipe removes a recipe owned by userID.
//
// Returns ErrRecipeNotFound when the recipe does not exist for this owner.
func (s *recipeService) DeleteRecipe(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.recipeRepository.DeleteRecipe(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}

		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("recipe deletion ended with error")
		return fmt.Errorf("recipe deletion ended with error: %w", err)
	}

	return nil
}
