package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/service"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/utils"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	var request models.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		h.writeError(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		log.Warn().Err(err).Msg("recipe creation request failed validation")
		h.writeError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.RecipeService.CreateRecipe(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during recipe creation")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{
		Data:     created,
		Message:  "Receita criada com sucesso",
		Metadata: h.metadata(r),
		Links:    recipeLinks(created.ID),
	}, http.StatusCreated)
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	search, err := recipeSearchFromQuery(r.URL.Query())
	if err != nil {
		log.Warn().Err(err).Msg("invalid recipe search query")
		h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
		return
	}

	recipes, total, err := h.services.RecipeService.SearchRecipes(ctx, userID, search)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during recipe search")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	normalized := search.Normalize()
	pages := countPages(total, normalized.Limit)

	utils.WriteJSON(w, models.RecipesResponse{
		Data:    recipes,
		Message: "Receitas encontradas",
		Metadata: models.ListMetadata{
			Metadata: h.metadata(r),
			Pagination: models.PaginationMetadata{
				TotalRecords: total,
				TotalPages:   pages,
				CurrentPage:  normalized.Page,
				Limit:        normalized.Limit,
			},
			SortApplied: models.SortMetadata{Field: "criado_em", Direction: normalized.Order},
		},
		Links: listLinks("/recipe", r.URL.Query(), normalized.Page, pages),
	}, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	id, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, ErrInvalidRecipeID.Error(), http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(ctx, id, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			h.writeError(w, r, msgRecipeNotFound, http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during recipe lookup")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{
		Data:     recipe,
		Message:  "Receita encontrada",
		Metadata: h.metadata(r),
		Links:    recipeLinks(recipe.ID),
	}, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	id, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, ErrInvalidRecipeID.Error(), http.StatusBadRequest)
		return
	}

	var request models.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		h.writeError(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecipeService.UpdateRecipe(ctx, id, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
		case errors.Is(err, service.ErrRecipeNotFound):
			h.writeError(w, r, msgRecipeNotFound, http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during recipe update")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{
		Data:     updated,
		Message:  "Receita atualizada com sucesso",
		Metadata: h.metadata(r),
		Links:    recipeLinks(updated.ID),
	}, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	id, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, ErrInvalidRecipeID.Error(), http.StatusBadRequest)
		return
	}

	// Fetch first so the deleted resource can be returned in the envelope.
	recipe, err := h.services.RecipeService.GetRecipe(ctx, id, userID)
	if err == nil {
		err = h.services.RecipeService.DeleteRecipe(ctx, id, userID)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			h.writeError(w, r, msgRecipeNotFound, http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during recipe deletion")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.RecipeResponse{
		Data:     recipe,
		Message:  "Receita excluída com sucesso",
		Metadata: h.metadata(r),
	}, http.StatusOK)
}

// idPathParam parses the {id} chi route parameter as a positive integer.
func idPathParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidRecipeID
	}
	return id, nil
}

// recipeSearchFromQuery maps GET /recipe query parameters onto the search
// model. Absent parameters stay at their zero value; defaults are applied by
// the service layer.
func recipeSearchFromQuery(query url.Values) (models.RecipeSearch, error) {
	var search models.RecipeSearch
	var err error

	if search.Limit, err = queryInt(query, "limit"); err != nil {
		return models.RecipeSearch{}, err
	}
	if search.Page, err = queryInt(query, "page"); err != nil {
		return models.RecipeSearch{}, err
	}
	search.Order = query.Get("order")
	search.Name = query.Get("nome")
	search.Ingredients = query.Get("ingredientes")

	if query.Get("porcoes") != "" {
		servings, err := queryInt(query, "porcoes")
		if err != nil {
			return models.RecipeSearch{}, err
		}
		search.Servings = &servings
	}
	if query.Get("id_categorias") != "" {
		categoryID, err := queryInt(query, "id_categorias")
		if err != nil {
			return models.RecipeSearch{}, err
		}
		search.CategoryID = &categoryID
	}

	return search, nil
}

// queryInt parses an optional integer query parameter, returning zero when
// the parameter is absent.
func queryInt(query url.Values, key string) (int64, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
