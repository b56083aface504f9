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

// recipeColumns is the canonical column order used by every recipe SELECT
// and RETURNING clause; scanRecipe must match it.
var recipeColumns = []string{
	"id",
	"id_usuarios",
	"id_categorias",
	"nome",
	"tempo_preparo_minutos",
	"porcoes",
	"modo_preparo",
	"ingredientes",
	"criado_em",
	"alterado_em",
}

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. Search and partial-update queries are assembled with
// squirrel because their shape depends on which optional filters or fields
// the caller supplied.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateRecipe persists a new recipe owned by recipe.UserID and returns the
// stored row with server-assigned fields.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRecipe,
		recipe.UserID,
		recipe.CategoryID,
		recipe.Name,
		recipe.PrepTimeMinutes,
		recipe.Servings,
		recipe.Instructions,
		recipe.Ingredients,
	)

	created, err := scanRecipe(row)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error creating recipe")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindRecipes returns one page of the owner's recipes matching the search
// filters, together with the total number of matching rows (before
// pagination) so the caller can compute page counts.
func (r *recipeRepository) FindRecipes(ctx context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error) {
	log := logger.FromContext(ctx)

	where := r.searchConditions(userID, search)

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("receitas").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*recipeRepository.FindRecipes").Msg("error counting recipes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	order := "criado_em DESC"
	if search.Order == models.OrderAsc {
		order = "criado_em ASC"
	}

	query, args, err := r.sb.Select(recipeColumns...).
		From("receitas").
		Where(where).
		OrderBy(order).
		Limit(uint64(search.Limit)).
		Offset(uint64(search.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.FindRecipes").Msg("error querying recipes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, search.Limit)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, total, nil
}

// FindRecipeByID retrieves a single recipe scoped to its owner.
// Returns [ErrRecipeNotFound] when no matching row exists, including the
// case where the recipe belongs to a different user.
func (r *recipeRepository) FindRecipeByID(ctx context.Context, id, userID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findRecipeByID, id, userID)

	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.FindRecipeByID").Msg("error finding recipe")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return recipe, nil
}

// UpdateRecipe applies a partial update to an owner-scoped recipe. Only the
// non-nil fields of update are written; alterado_em is always refreshed.
// Returns [ErrRecipeNotFound] when the row does not exist for this owner.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id, userID int64, update models.UpdateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	builder := r.sb.Update("receitas").
		Set("alterado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "id_usuarios": userID}).
		Suffix("RETURNING " + returningClause())

	if update.CategoryID != nil {
		builder = builder.Set("id_categorias", *update.CategoryID)
	}
	if update.Name != nil {
		builder = builder.Set("nome", *update.Name)
	}
	if update.PrepTimeMinutes != nil {
		builder = builder.Set("tempo_preparo_minutos", *update.PrepTimeMinutes)
	}
	if update.Servings != nil {
		builder = builder.Set("porcoes", *update.Servings)
	}
	if update.Instructions != nil {
		builder = builder.Set("modo_preparo", *update.Instructions)
	}
	if update.Ingredients != nil {
		builder = builder.Set("ingredientes", *update.Ingredients)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Msg("error updating recipe")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteRecipe removes an owner-scoped recipe. Returns [ErrRecipeNotFound]
// when no row was deleted.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRecipe, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Msg("error deleting recipe")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// searchConditions translates the optional search filters into a squirrel
// conjunction. The owner filter is always present.
func (r *recipeRepository) searchConditions(userID int64, search models.RecipeSearch) sq.And {
	where := sq.And{sq.Eq{"id_usuarios": userID}}

	if search.Name != "" {
		where = append(where, sq.Like{"nome": "%" + search.Name + "%"})
	}
	if search.Ingredients != "" {
		where = append(where, sq.Like{"ingredientes": "%" + search.Ingredients + "%"})
	}
	if search.Servings != nil {
		where = append(where, sq.Eq{"porcoes": *search.Servings})
	}
	if search.CategoryID != nil {
		where = append(where, sq.Eq{"id_categorias": *search.CategoryID})
	}

	return where
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecipe reads one row in [recipeColumns] order.
func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.CategoryID,
		&recipe.Name,
		&recipe.PrepTimeMinutes,
		&recipe.Servings,
		&recipe.Instructions,
		&recipe.Ingredients,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	return recipe, err
}

// returningClause joins [recipeColumns] for RETURNING suffixes.
func returningClause() string {
	clause := recipeColumns[0]
	for _, column := range recipeColumns[1:] {
		clause += ", " + column
	}
	return clause
}
