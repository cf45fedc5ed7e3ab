package client

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Category is an upstream category record. ParentID is a nullable link to
// another category; the upstream service owns the no-cycle invariant, this
// client does not re-check it.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ParentID    *int64 `json:"parentId"`
}

// Post is an upstream post record
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	ImageName  string    `json:"imageName"`
	Active     bool      `json:"active"`
	Featured   bool      `json:"featured"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Comment is an upstream comment record, always scoped to one post
type Comment struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"postId"`
	FullName    string    `json:"fullName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      int       `json:"status"`
}

// CategoryPayload is the mutation body for categories
type CategoryPayload struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ParentID    *int64 `json:"parent_id"`
}

// Validate will run validation rules
func (p CategoryPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Slug, validation.Required, validation.Length(1, 200)),
	)
}

// PostPayload is the mutation body for posts. CategoryID is the one
// reference checked before dispatch: zero never reaches the network.
type PostPayload struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	ImageName  string `json:"image_name"`
	Active     bool   `json:"active"`
	Featured   bool   `json:"featured"`
	CategoryID int64  `json:"category_id"`
}

// Validate will run validation rules
func (p PostPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 250)),
		validation.Field(&p.Slug, validation.Required, validation.Length(1, 250)),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.CategoryID, validation.Required),
	)
}

// CommentPayload is the public comment submission body
type CommentPayload struct {
	PostID      int64  `json:"postId"`
	FullName    string `json:"fullName"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate will run validation rules
func (p CommentPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PostID, validation.Required),
		validation.Field(&p.FullName, validation.Required, validation.Length(1, 120)),
		validation.Field(&p.Title, validation.Required, validation.Length(1, 250)),
		validation.Field(&p.Description, validation.Required),
	)
}
