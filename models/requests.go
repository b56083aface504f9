package models

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// Validate checks that both credential fields are present.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required),
		validation.Field(&r.Senha, validation.Required),
	)
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
	Nome  string `json:"nome"`
}

// Validate checks presence of all fields and that Login is an e-mail address.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required, is.Email),
		validation.Field(&r.Senha, validation.Required),
		validation.Field(&r.Nome, validation.Required),
	)
}

// CreateRecipeRequest is the body of POST /recipe.
// The owner is taken from the access token, never from the body.
type CreateRecipeRequest struct {
	CategoryID      *int64  `json:"id_categorias"`
	Name            *string `json:"nome"`
	PrepTimeMinutes *int64  `json:"tempo_preparo_minutos"`
	Servings        *int64  `json:"porcoes"`
	Instructions    string  `json:"modo_preparo"`
	Ingredients     *string `json:"ingredientes"`
}

// Validate checks that the preparation instructions are present.
func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Instructions, validation.Required),
	)
}

// UpdateRecipeRequest is the body of PATCH /recipe/{id}.
// Nil fields are left untouched by the update.
type UpdateRecipeRequest struct {
	CategoryID      *int64  `json:"id_categorias"`
	Name            *string `json:"nome"`
	PrepTimeMinutes *int64  `json:"tempo_preparo_minutos"`
	Servings        *int64  `json:"porcoes"`
	Instructions    *string `json:"modo_preparo"`
	Ingredients     *string `json:"ingredientes"`
}
