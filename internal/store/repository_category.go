package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository]. Categories are a shared read-only catalogue, so the
// repository exposes no write operations.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// FindCategories returns one page of categories matching the search filters
// and the total number of matching rows before pagination.
func (r *categoryRepository) FindCategories(ctx context.Context, search models.CategorySearch) ([]models.Category, int64, error) {
	log := logger.FromContext(ctx)

	where := sq.And{}
	if search.Name != "" {
		where = append(where, sq.Like{"nome": "%" + search.Name + "%"})
	}

	countBuilder := r.sb.Select("COUNT(*)").From("categorias")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*categoryRepository.FindCategories").Msg("error counting categories")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	order := "nome DESC"
	if search.Order == models.OrderAsc {
		order = "nome ASC"
	}

	builder := r.sb.Select("id", "nome").
		From("categorias").
		OrderBy(order).
		Limit(uint64(search.Limit)).
		Offset(uint64(search.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.FindCategories").Msg("error querying categories")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, search.Limit)
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, total, nil
}

// FindCategoryByID retrieves a single category. Returns
// [ErrCategoryNotFound] when no row matches.
func (r *categoryRepository) FindCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	err := r.db.QueryRowContext(ctx, findCategoryByID, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}

		log.Err(err).Str("func", "*categoryRepository.FindCategoryByID").Msg("error finding category")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}
