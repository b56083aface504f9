package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// recipeLinks builds the navigation links for a single recipe resource.
func recipeLinks(id int64) []models.Link {
	href := fmt.Sprintf("/recipe/%d", id)
	return []models.Link{
		{Rel: "self", Href: href, Method: http.MethodGet, Title: "Ver receita"},
		{Rel: "update", Href: href, Method: http.MethodPatch, Title: "Atualizar receita"},
		{Rel: "delete", Href: href, Method: http.MethodDelete, Title: "Excluir receita"},
	}
}

// categoryLinks builds the navigation links for a single category resource.
func categoryLinks(id int64) []models.Link {
	href := fmt.Sprintf("/category/%d", id)
	return []models.Link{
		{Rel: "self", Href: href, Method: http.MethodGet, Title: "Ver categoria"},
	}
}

// listLinks builds the pagination links of a collection response. The query
// values carry the caller's filters so that every link reproduces the same
// search; only the page parameter varies between links.
func listLinks(basePath string, query url.Values, page, totalPages int64) []models.Link {
	pageHref := func(p int64) string {
		q := url.Values{}
		for key, values := range query {
			q[key] = values
		}
		q.Set("page", strconv.FormatInt(p, 10))
		return basePath + "?" + q.Encode()
	}

	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}

	links := []models.Link{
		{Rel: "self", Href: pageHref(page), Method: http.MethodGet, Title: "Página atual"},
		{Rel: "first", Href: pageHref(1), Method: http.MethodGet, Title: "Primeira página"},
	}
	if page > 1 {
		links = append(links, models.Link{Rel: "prev", Href: pageHref(page - 1), Method: http.MethodGet, Title: "Página anterior"})
	}
	if page < totalPages {
		links = append(links, models.Link{Rel: "next", Href: pageHref(page + 1), Method: http.MethodGet, Title: "Próxima página"})
	}
	links = append(links, models.Link{Rel: "last", Href: pageHref(lastPage), Method: http.MethodGet, Title: "Última página"})

	return links
}

// countPages is ceil(total/limit).
func countPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return pages
}
