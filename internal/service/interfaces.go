package service

import (
	"context"

	"github.com/bloglist/bloglist/models"
)

// AuthService implements the credential and token side of the API:
// registration, login, and the JWT lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BlogService implements the blog-post catalog: listing, creation,
// updates, and ownership-checked deletion.
type BlogService interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	CreateBlog(ctx context.Context, ownerID int64, req models.NewBlogRequest) (models.Blog, error)
	UpdateBlog(ctx context.Context, blogID int64, patch models.BlogPatch) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID, callerID int64) error
	GetUserWithBlogs(ctx context.Context, userID int64) (models.User, error)
	ListUsersWithBlogs(ctx context.Context) ([]models.User, error)
}
