package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRecipeID is returned when the {id} path parameter cannot be
	// parsed as a positive integer.
	ErrInvalidRecipeID = errors.New("invalid recipe id")

	// ErrInvalidCategoryID is the category counterpart of ErrInvalidRecipeID.
	ErrInvalidCategoryID = errors.New("invalid category id")
)

// User-facing response messages. The auth failure messages intentionally
// mirror each other: an unknown login and a wrong password must be
// indistinguishable to the client.
const (
	msgUserNotFound       = "User not found"
	msgLoginAlreadyExists = "Login already exists"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgInvalidData        = "invalid data provided"
	msgUnauthorized       = "Unauthorized"

	msgRecipeNotFound   = "Receita não encontrada"
	msgCategoryNotFound = "Categoria não encontrada"
)
