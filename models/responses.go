package models

// Metadata is attached to every API response. It carries the per-request
// correlation identifier so that clients can reference a specific request
// when reporting problems.
type Metadata struct {
	// RequestID is the correlation identifier of the request, mirrored in
	// the X-Trace-ID response header and in every log line.
	RequestID string `json:"requestId"`

	// Timestamp is the RFC 3339 time the response was produced.
	Timestamp string `json:"timestamp"`

	// UserID is the authenticated user the response relates to.
	// Omitted on responses produced before authentication succeeded.
	UserID int64 `json:"userId,omitempty"`

	// Version is the semantic version of the running API.
	Version string `json:"version"`
}

// Link is a HATEOAS-style navigation entry included in resource responses.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
	Title  string `json:"title"`
}

// PaginationMetadata describes the position of a page inside the full
// result set of a search.
type PaginationMetadata struct {
	TotalRecords int64 `json:"total_records"`
	TotalPages   int64 `json:"total_pages"`
	CurrentPage  int64 `json:"current_page"`
	Limit        int64 `json:"limit"`
}

// SortMetadata describes the ordering applied to a search result.
type SortMetadata struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// ListMetadata extends Metadata with pagination and sorting details for
// collection responses.
type ListMetadata struct {
	Metadata

	Pagination  PaginationMetadata `json:"pagination"`
	SortApplied SortMetadata       `json:"sortApplied"`
}

// LoginResponse is the body of a successful POST /auth/login.
type LoginResponse struct {
	Data     LoginData `json:"data"`
	Message  string    `json:"message"`
	Metadata Metadata  `json:"metadata"`
}

// LoginData carries the issued access token.
type LoginData struct {
	AccessToken string `json:"accessToken"`
}

// RegisterResponse is the body of a successful POST /auth/register.
// Only public-safe account fields are included; the password hash never
// leaves the server.
type RegisterResponse struct {
	Data     RegisterData `json:"data"`
	Message  string       `json:"message"`
	Metadata Metadata     `json:"metadata"`
}

// RegisterData is the public view of a freshly created account.
type RegisterData struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Login    string `json:"login"`
	CriadoEm string `json:"criado_em"`
}

// RecipeResponse is the envelope for single-recipe operations.
type RecipeResponse struct {
	Data     Recipe   `json:"data"`
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
	Links    []Link   `json:"links"`
}

// RecipesResponse is the envelope for recipe search results.
type RecipesResponse struct {
	Data     []Recipe     `json:"data"`
	Message  string       `json:"message"`
	Metadata ListMetadata `json:"metadata"`
	Links    []Link       `json:"links"`
}

// CategoryResponse is the envelope for single-category operations.
type CategoryResponse struct {
	Data     Category `json:"data"`
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
	Links    []Link   `json:"links"`
}

// CategoriesResponse is the envelope for category search results.
type CategoriesResponse struct {
	Data     []Category   `json:"data"`
	Message  string       `json:"message"`
	Metadata ListMetadata `json:"metadata"`
	Links    []Link       `json:"links"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
}
