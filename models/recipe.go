package models

import "time"

// Recipe represents a single recipe owned by a user.
//
// Nullable database columns are modelled as pointers so that partial updates
// can distinguish "not provided" from "set to zero value".
type Recipe struct {
	// ID is the internal unique identifier of the recipe.
	ID int64 `json:"id"`

	// UserID is the owner of the recipe. Every query touching recipes is
	// scoped by this field to guarantee per-user data isolation.
	UserID int64 `json:"id_usuarios"`

	// CategoryID is an optional reference to the recipe's category.
	CategoryID *int64 `json:"id_categorias"`

	// Name is the optional display name of the recipe.
	Name *string `json:"nome"`

	// PrepTimeMinutes is the optional preparation time in minutes.
	PrepTimeMinutes *int64 `json:"tempo_preparo_minutos"`

	// Servings is the optional number of servings the recipe yields.
	Servings *int64 `json:"porcoes"`

	// Instructions holds the preparation steps. Required.
	Instructions string `json:"modo_preparo"`

	// Ingredients is the optional free-text ingredient list.
	Ingredients *string `json:"ingredientes"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time `json:"criado_em"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"alterado_em"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "receitas"
}
