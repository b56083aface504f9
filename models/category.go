package models

// Category is a reference entity used to classify recipes.
// Categories are shared between users and read-only through the API.
type Category struct {
	// ID is the internal unique identifier of the category.
	ID int64 `json:"id"`

	// Name is the unique display name of the category.
	Name *string `json:"nome"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categorias"
}
