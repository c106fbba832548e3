package models

import "time"

// Blog represents a single blog-post record in the catalog.
type Blog struct {
	// ID is the internal unique identifier of the post,
	// assigned by the database at creation time.
	ID int64 `json:"id"`

	// Title is the post title. Required.
	Title string `json:"title"`

	// Author is the free-text author attribution. Optional and
	// independent of the owning user.
	Author string `json:"author,omitempty"`

	// URL is the link to the post content. Required.
	URL string `json:"url"`

	// Likes is the non-negative like counter. Defaults to zero when the
	// creating request omits it.
	Likes int64 `json:"likes"`

	// UserID references the owning user. Set to the authenticated caller
	// at creation time and immutable thereafter.
	UserID int64 `json:"user_id"`

	// Owner carries the owning user's display fields for listings.
	// Populated on reads via a join; nil on write paths.
	Owner *BlogOwner `json:"user,omitempty"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`
}

// BlogOwner is the subset of the owning user exposed alongside a blog
// post in API responses.
type BlogOwner struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// BlogPatch describes a partial update of a blog post. Nil fields are
// left untouched. Ownership (UserID) is not patchable.
type BlogPatch struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	URL    *string `json:"url,omitempty"`
	Likes  *int64  `json:"likes,omitempty"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}
