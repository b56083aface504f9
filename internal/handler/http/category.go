package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/service"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/utils"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

func (h *Handler) searchCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	search, err := categorySearchFromQuery(r.URL.Query())
	if err != nil {
		log.Warn().Err(err).Msg("invalid category search query")
		h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
		return
	}

	categories, total, err := h.services.CategoryService.SearchCategories(ctx, search)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during category search")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	normalized := search.Normalize()
	pages := countPages(total, normalized.Limit)

	utils.WriteJSON(w, models.CategoriesResponse{
		Data:    categories,
		Message: "Categorias encontradas",
		Metadata: models.ListMetadata{
			Metadata: h.metadata(r),
			Pagination: models.PaginationMetadata{
				TotalRecords: total,
				TotalPages:   pages,
				CurrentPage:  normalized.Page,
				Limit:        normalized.Limit,
			},
			SortApplied: models.SortMetadata{Field: "nome", Direction: normalized.Order},
		},
		Links: listLinks("/category", r.URL.Query(), normalized.Page, pages),
	}, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, ErrInvalidCategoryID.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.services.CategoryService.GetCategory(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			h.writeError(w, r, msgCategoryNotFound, http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during category lookup")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.CategoryResponse{
		Data:     category,
		Message:  "Categoria encontrada",
		Metadata: h.metadata(r),
		Links:    categoryLinks(category.ID),
	}, http.StatusOK)
}

// categorySearchFromQuery maps GET /category query parameters onto the
// search model.
func categorySearchFromQuery(query url.Values) (models.CategorySearch, error) {
	var search models.CategorySearch
	var err error

	if search.Limit, err = queryInt(query, "limit"); err != nil {
		return models.CategorySearch{}, err
	}
	if search.Page, err = queryInt(query, "page"); err != nil {
		return models.CategorySearch{}, err
	}
	search.Order = query.Get("order")
	search.Name = query.Get("nome")

	return search, nil
}
