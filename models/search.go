package models

import validation "github.com/go-ozzo/ozzo-validation"

// Pagination defaults applied when the client omits the query parameters.
const (
	DefaultSearchLimit = 25
	DefaultSearchPage  = 1

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// RecipeSearch holds the query parameters of GET /recipe.
// Zero values mean "not provided"; Normalize fills in the defaults.
type RecipeSearch struct {
	Limit int64  `json:"limit"`
	Page  int64  `json:"page"`
	Order string `json:"order"`

	// Optional filters. Name and Ingredients are substring matches.
	Name        string `json:"nome"`
	Ingredients string `json:"ingredientes"`
	Servings    *int64 `json:"porcoes"`
	CategoryID  *int64 `json:"id_categorias"`
}

// Validate checks that Order, when provided, is either "asc" or "desc".
func (s RecipeSearch) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Order, validation.In(OrderAsc, OrderDesc)),
		validation.Field(&s.Limit, validation.Min(int64(0))),
		validation.Field(&s.Page, validation.Min(int64(0))),
	)
}

// Normalize returns a copy of s with defaults applied:
// limit 25, page 1, descending order.
func (s RecipeSearch) Normalize() RecipeSearch {
	if s.Limit <= 0 {
		s.Limit = DefaultSearchLimit
	}
	if s.Page <= 0 {
		s.Page = DefaultSearchPage
	}
	if s.Order == "" {
		s.Order = OrderDesc
	}
	return s
}

// Offset converts the 1-based page number into a row offset.
func (s RecipeSearch) Offset() int64 {
	return (s.Page - 1) * s.Limit
}

// CategorySearch holds the query parameters of GET /category.
type CategorySearch struct {
	Limit int64  `json:"limit"`
	Page  int64  `json:"page"`
	Order string `json:"order"`

	// Name is an optional substring filter on the category name.
	Name string `json:"nome"`
}

// Validate checks that Order, when provided, is either "asc" or "desc".
func (s CategorySearch) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Order, validation.In(OrderAsc, OrderDesc)),
		validation.Field(&s.Limit, validation.Min(int64(0))),
		validation.Field(&s.Page, validation.Min(int64(0))),
	)
}

// Normalize returns a copy of s with defaults applied:
// limit 25, page 1, descending order.
func (s CategorySearch) Normalize() CategorySearch {
	if s.Limit <= 0 {
		s.Limit = DefaultSearchLimit
	}
	if s.Page <= 0 {
		s.Page = DefaultSearchPage
	}
	if s.Order == "" {
		s.Order = OrderDesc
	}
	return s
}

// Offset converts the 1-based page number into a row offset.
func (s CategorySearch) Offset() int64 {
	return (s.Page - 1) * s.Limit
}
