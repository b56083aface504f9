package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/config"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/service"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// ─────────────────────────────────────────────
// Mock RecipeService / CategoryService
// ─────────────────────────────────────────────

type mockRecipeService struct {
	createRecipeFn  func(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error)
	searchRecipesFn func(ctx context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error)
	getRecipeFn     func(ctx context.Context, id, userID int64) (models.Recipe, error)
	updateRecipeFn  func(ctx context.Context, id, userID int64, request models.UpdateRecipeRequest) (models.Recipe, error)
	deleteRecipeFn  func(ctx context.Context, id, userID int64) error
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
	return m.createRecipeFn(ctx, userID, request)
}

func (m *mockRecipeService) SearchRecipes(ctx context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error) {
	return m.searchRecipesFn(ctx, userID, search)
}

func (m *mockRecipeService) GetRecipe(ctx context.Context, id, userID int64) (models.Recipe, error) {
	return m.getRecipeFn(ctx, id, userID)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, id, userID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
	return m.updateRecipeFn(ctx, id, userID, request)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, id, userID int64) error {
	return m.deleteRecipeFn(ctx, id, userID)
}

type mockCategoryService struct {
	searchCategoriesFn func(ctx context.Context, search models.CategorySearch) ([]models.Category, int64, error)
	getCategoryFn      func(ctx context.Context, id int64) (models.Category, error)
}

func (m *mockCategoryService) SearchCategories(ctx context.Context, search models.CategorySearch) ([]models.Category, int64, error) {
	return m.searchCategoriesFn(ctx, search)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return m.getCategoryFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 7

// newTestRouter builds the full chi router with a token guard that accepts
// "Bearer token" for testUserID.
func newTestRouter(t *testing.T, recipes service.RecipeService, categories service.CategoryService) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
	}
	svcs := &service.Services{
		AuthService:     auth,
		RecipeService:   recipes,
		CategoryService: categories,
	}
	return NewHandler(svcs, config.App{Version: "test"}, logger.Nop()).Init()
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer token")
	return req
}

// ─────────────────────────────────────────────
// createRecipe
// ─────────────────────────────────────────────

func TestCreateRecipe_Success(t *testing.T) {
	recipes := &mockRecipeService{
		createRecipeFn: func(_ context.Context, userID int64, request models.CreateRecipeRequest) (models.Recipe, error) {
			assert.Equal(t, testUserID, userID)
			return models.Recipe{ID: 3, UserID: userID, Instructions: request.Instructions}, nil
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodPost, "/recipe", `{"modo_preparo":"Cozinhe devagar."}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.ID)
	assert.Equal(t, testUserID, resp.Data.UserID)

	rels := make([]string, 0, len(resp.Links))
	for _, link := range resp.Links {
		rels = append(rels, link.Rel)
	}
	assert.ElementsMatch(t, []string{"self", "update", "delete"}, rels)
}

func TestCreateRecipe_MissingInstructions(t *testing.T) {
	router := newTestRouter(t, &mockRecipeService{}, &mockCategoryService{})

	req := authedRequest(http.MethodPost, "/recipe", `{"nome":"Bolo"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipe_WithoutToken(t *testing.T) {
	router := newTestRouter(t, &mockRecipeService{}, &mockCategoryService{})

	req := httptest.NewRequest(http.MethodPost, "/recipe", strings.NewReader(`{"modo_preparo":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// searchRecipes
// ─────────────────────────────────────────────

func TestSearchRecipes_PaginationMetadataAndLinks(t *testing.T) {
	recipes := &mockRecipeService{
		searchRecipesFn: func(_ context.Context, userID int64, search models.RecipeSearch) ([]models.Recipe, int64, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, int64(10), search.Limit)
			assert.Equal(t, int64(2), search.Page)
			return []models.Recipe{{ID: 11, UserID: userID}}, 35, nil
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodGet, "/recipe?limit=10&page=2&order=asc", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecipesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(35), resp.Metadata.Pagination.TotalRecords)
	assert.Equal(t, int64(4), resp.Metadata.Pagination.TotalPages)
	assert.Equal(t, int64(2), resp.Metadata.Pagination.CurrentPage)
	assert.Equal(t, int64(10), resp.Metadata.Pagination.Limit)
	assert.Equal(t, "criado_em", resp.Metadata.SortApplied.Field)
	assert.Equal(t, "asc", resp.Metadata.SortApplied.Direction)

	rels := map[string]string{}
	for _, link := range resp.Links {
		rels[link.Rel] = link.Href
	}
	assert.Contains(t, rels, "self")
	assert.Contains(t, rels, "first")
	assert.Contains(t, rels, "prev")
	assert.Contains(t, rels, "next")
	assert.Contains(t, rels, "last")
	assert.Contains(t, rels["next"], "page=3")
	assert.Contains(t, rels["next"], "limit=10")
}

func TestSearchRecipes_FirstPageHasNoPrevLink(t *testing.T) {
	recipes := &mockRecipeService{
		searchRecipesFn: func(_ context.Context, _ int64, _ models.RecipeSearch) ([]models.Recipe, int64, error) {
			return nil, 5, nil
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodGet, "/recipe", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecipesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, link := range resp.Links {
		assert.NotEqual(t, "prev", link.Rel)
	}
}

func TestSearchRecipes_InvalidOrder(t *testing.T) {
	recipes := &mockRecipeService{
		searchRecipesFn: func(_ context.Context, _ int64, _ models.RecipeSearch) ([]models.Recipe, int64, error) {
			return nil, 0, service.ErrInvalidDataProvided
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodGet, "/recipe?order=sideways", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getRecipe / updateRecipe / deleteRecipe
// ─────────────────────────────────────────────

func TestGetRecipe_Success(t *testing.T) {
	recipes := &mockRecipeService{
		getRecipeFn: func(_ context.Context, id, userID int64) (models.Recipe, error) {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, testUserID, userID)
			return models.Recipe{ID: id, UserID: userID}, nil
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodGet, "/recipe/3", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRecipe_NotFound(t *testing.T) {
	recipes := &mockRecipeService{
		getRecipeFn: func(_ context.Context, _, _ int64) (models.Recipe, error) {
			return models.Recipe{}, service.ErrRecipeNotFound
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodGet, "/recipe/999", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Receita não encontrada")
}

func TestGetRecipe_InvalidID(t *testing.T) {
	router := newTestRouter(t, &mockRecipeService{}, &mockCategoryService{})

	req := authedRequest(http.MethodGet, "/recipe/abc", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRecipe_Success(t *testing.T) {
	recipes := &mockRecipeService{
		updateRecipeFn: func(_ context.Context, id, userID int64, request models.UpdateRecipeRequest) (models.Recipe, error) {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, testUserID, userID)
			require.NotNil(t, request.Name)
			return models.Recipe{ID: id, UserID: userID, Name: request.Name}, nil
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodPatch, "/recipe/3", `{"nome":"Bolo novo"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	recipes := &mockRecipeService{
		updateRecipeFn: func(_ context.Context, _, _ int64, _ models.UpdateRecipeRequest) (models.Recipe, error) {
			return models.Recipe{}, service.ErrRecipeNotFound
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodPatch, "/recipe/999", `{"nome":"x"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRecipe_ReturnsDeletedRecipe(t *testing.T) {
	recipes := &mockRecipeService{
		getRecipeFn: func(_ context.Context, id, userID int64) (models.Recipe, error) {
			return models.Recipe{ID: id, UserID: userID, Instructions: "mix"}, nil
		},
		deleteRecipeFn: func(_ context.Context, id, userID int64) error {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, testUserID, userID)
			return nil
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodDelete, "/recipe/3", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.ID)
	assert.Contains(t, resp.Message, "excluída")
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	recipes := &mockRecipeService{
		getRecipeFn: func(_ context.Context, _, _ int64) (models.Recipe, error) {
			return models.Recipe{}, service.ErrRecipeNotFound
		},
	}
	router := newTestRouter(t, recipes, &mockCategoryService{})

	req := authedRequest(http.MethodDelete, "/recipe/999", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
