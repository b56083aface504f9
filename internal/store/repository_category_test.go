package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &categoryRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func TestFindCategories_All(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	search := models.CategorySearch{Limit: models.DefaultSearchLimit, Page: models.DefaultSearchPage, Order: models.OrderAsc}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categorias`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("SELECT id, nome FROM categorias").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "nome"}).
			AddRow(1, "Bolos e tortas doces").
			AddRow(2, "Carnes"))

	categories, total, err := repo.FindCategories(ctx, search)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total=2, got %d", total)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name == nil || *categories[0].Name != "Bolos e tortas doces" {
		t.Errorf("unexpected first category: %v", categories[0].Name)
	}
}

func TestFindCategories_NameFilter(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	search := models.CategorySearch{Limit: 25, Page: 1, Order: models.OrderAsc, Name: "carn"}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categorias`).
		WithArgs("%carn%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT id, nome FROM categorias").
		WithArgs("%carn%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).AddRow(2, "Carnes"))

	categories, total, err := repo.FindCategories(ctx, search)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(categories) != 1 {
		t.Fatalf("expected 1 category, got total=%d len=%d", total, len(categories))
	}
}

func TestFindCategories_QueryError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	search := models.CategorySearch{Limit: 25, Page: 1, Order: models.OrderAsc}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categorias`).
		WillReturnError(errors.New("db failure"))

	_, _, err := repo.FindCategories(ctx, search)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindCategoryByID_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, nome").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).AddRow(2, "Carnes"))

	category, err := repo.FindCategoryByID(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID != 2 {
		t.Errorf("expected ID=2, got %d", category.ID)
	}
}

func TestFindCategoryByID_NotFound(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, nome").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCategoryByID(ctx, 99)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
