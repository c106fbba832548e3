package models

import "time"

// User represents a registered account that can own blog posts.
// The password is stored only as a bcrypt hash and must never leave
// the server process.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database at registration time.
	ID int64 `json:"id"`

	// Username is the unique login identifier. Uniqueness is
	// case-sensitive and the value is immutable after creation.
	Username string `json:"username"`

	// Name is the optional display name shown next to blog posts.
	Name string `json:"name,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to JSON.
	PasswordHash string `json:"-"`

	// Blogs holds the posts created by this user. It is derived with a
	// live query at read time, never stored on the user record.
	Blogs []Blog `json:"blogs,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
