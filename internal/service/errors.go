package service

import "errors"

var (
	// ErrCredentialsMissing is returned by registration when the username
	// or the password is absent.
	ErrCredentialsMissing = errors.New("password and username must be given")

	// ErrCredentialsTooShort is returned by registration when the username
	// or the password is shorter than three characters.
	ErrCredentialsTooShort = errors.New("password and username must be at least 3 characters long")

	// ErrInvalidCredentials is returned by login for every authentication
	// failure. It deliberately does not distinguish an unknown username
	// from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenInvalid is returned when a bearer token is missing,
	// malformed, expired, or carries an invalid signature.
	ErrTokenInvalid = errors.New("token missing or invalid")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidBlog is returned by blog creation when the title or the
	// url is absent.
	ErrInvalidBlog = errors.New("title and url must be given")

	// ErrNegativeLikes is returned when a create or update request would
	// set the like counter below zero.
	ErrNegativeLikes = errors.New("likes must not be negative")

	// ErrNotBlogOwner is returned by deletion when the caller is not the
	// user that created the blog post.
	ErrNotBlogOwner = errors.New("only the creator may delete a blog")
)
