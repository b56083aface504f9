package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/store"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// categoryService is the concrete implementation of CategoryService.
// Categories are a shared catalogue, so operations are not user-scoped.
type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService wired to the given repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// SearchCategories returns one page of categories matching the filters plus
// the total number of matches. Search defaults are applied here.
func (s *categoryService) SearchCategories(ctx context.Context, search models.CategorySearch) ([]models.Category, int64, error) {
	log := logger.FromContext(ctx)

	if err := search.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid category search provided")
		return nil, 0, ErrInvalidDataProvided
	}
	search = search.Normalize()

	categories, total, err := s.categoryRepository.FindCategories(ctx, search)
	if err != nil {
		log.Err(err).Msg("category search ended with error")
		return nil, 0, fmt.Errorf("category search ended with error: %w", err)
	}

	return categories, total, nil
}

// GetCategory returns a single category by ID.
//
// Returns ErrCategoryNotFound when no such category exists.
func (s *categoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := s.categoryRepository.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return models.Category{}, ErrCategoryNotFound
		}

		log.Err(err).Int64("id", id).Msg("category lookup ended with error")
		return models.Category{}, fmt.Errorf("category lookup ended with error: %w", err)
	}

	return category, nil
}
