package store

import (
	"context"

	"github.com/bloglist/bloglist/models"
)

// UserRepository is the credential store: it persists user accounts and
// resolves them by username or id.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// BlogRepository persists blog posts. All read methods populate the
// owner's display fields via a join; the list of posts owned by a user
// is always derived with a live query, never cached on the user record.
type BlogRepository interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	ListBlogsByUser(ctx context.Context, userID int64) ([]models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	UpdateBlog(ctx context.Context, blogID int64, patch models.BlogPatch) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error
}
