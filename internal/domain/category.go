package domain

import "time"

// Category is a grouping taxonomy for tools.
type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CategoryWithTools is the public category page: the category and its tools,
// featured first, then by average rating.
type CategoryWithTools struct {
	Category
	Tools []Tool `json:"tools"`
}
