package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserNotFound is returned for an unknown login AND for a wrong
	// password. Collapsing both cases into one error keeps login failures
	// indistinguishable, so the endpoint cannot be used to probe which
	// logins exist.
	ErrUserNotFound = errors.New("user not found")

	ErrLoginAlreadyExists = errors.New("login already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrCategoryNotFound = errors.New("category not found")
)
