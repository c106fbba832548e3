package service

import (
	"context"
	"fmt"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/store"
	"github.com/bloglist/bloglist/models"
)

// blogService is the concrete implementation of BlogService. It applies
// the catalog's business rules (required fields, the zero default for
// likes, creator-only deletion) on top of the repositories.
type blogService struct {
	blogRepository store.BlogRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewBlogService constructs a BlogService wired to the given
// repositories.
func NewBlogService(blogRepository store.BlogRepository, userRepository store.UserRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListBlogs returns every blog post with the owner's display fields
// populated, in insertion order.
func (b *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := b.blogRepository.ListBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing blogs failed: %w", err)
	}

	return blogs, nil
}

// CreateBlog validates and persists a new blog post owned by ownerID.
//
// Title and URL are required; an absent likes value defaults to zero.
// The owner id is resolved to a live user before the insert, so every
// persisted post references an existing account.
//
// Returns:
//   - ErrInvalidBlog if the title or url is missing.
//   - ErrNegativeLikes if the request carries a negative like count.
//   - store.ErrUserNotFound if ownerID does not resolve to a user.
func (b *blogService) CreateBlog(ctx context.Context, ownerID int64, req models.NewBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.URL == "" {
		log.Error().Int64("user_id", ownerID).Msg("blog create request without title or url")
		return models.Blog{}, ErrInvalidBlog
	}

	var likes int64
	if req.Likes != nil {
		if *req.Likes < 0 {
			log.Error().Int64("user_id", ownerID).Int64("likes", *req.Likes).Msg("negative likes on create")
			return models.Blog{}, ErrNegativeLikes
		}
		likes = *req.Likes
	}

	owner, err := b.userRepository.FindUserByID(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("blog owner lookup failed")
		return models.Blog{}, fmt.Errorf("blog owner lookup failed: %w", err)
	}

	created, err := b.blogRepository.CreateBlog(ctx, models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: owner.ID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("blog creation ended with error")
		return models.Blog{}, fmt.Errorf("blog creation ended with error: %w", err)
	}

	created.Owner = &models.BlogOwner{Username: owner.Username, Name: owner.Name}

	return created, nil
}

// UpdateBlog applies a partial patch to an existing blog post and
// returns the updated record.
//
// No identity check is performed: anyone may patch any post's mutable
// fields by id. This mirrors the public like counter: updates are
// deliberately open while deletion stays creator-only.
//
// Returns:
//   - ErrNegativeLikes if the patch would set a negative like count.
//   - store.ErrBlogNotFound if blogID does not exist.
func (b *blogService) UpdateBlog(ctx context.Context, blogID int64, patch models.BlogPatch) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if patch.Likes != nil && *patch.Likes < 0 {
		log.Error().Int64("blog_id", blogID).Int64("likes", *patch.Likes).Msg("negative likes on update")
		return models.Blog{}, ErrNegativeLikes
	}

	updated, err := b.blogRepository.UpdateBlog(ctx, blogID, patch)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog update ended with error")
		return models.Blog{}, fmt.Errorf("blog update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteBlog removes a blog post after verifying that callerID matches
// the post's owner.
//
// Returns:
//   - store.ErrBlogNotFound if blogID does not exist.
//   - ErrNotBlogOwner if the caller did not create the post.
func (b *blogService) DeleteBlog(ctx context.Context, blogID, callerID int64) error {
	log := logger.FromContext(ctx)

	blog, err := b.blogRepository.GetBlog(ctx, blogID)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog lookup before delete failed")
		return fmt.Errorf("blog lookup before delete failed: %w", err)
	}

	if blog.UserID != callerID {
		log.Error().
			Int64("blog_id", blogID).
			Int64("owner_id", blog.UserID).
			Int64("caller_id", callerID).
			Msg("delete attempted by non-owner")
		return ErrNotBlogOwner
	}

	if err := b.blogRepository.DeleteBlog(ctx, blogID); err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog deletion ended with error")
		return fmt.Errorf("blog deletion ended with error: %w", err)
	}

	return nil
}

// ListUsersWithBlogs returns every user account together with the posts
// each of them created, in user id order. The catalog is read once and
// grouped by owner, so the result is a consistent snapshot.
//
// Password hashes are cleared; every user carries a non-nil (possibly
// empty) blog list.
func (b *blogService) ListUsersWithBlogs(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := b.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	blogs, err := b.blogRepository.ListBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("listing blogs failed")
		return nil, fmt.Errorf("listing blogs failed: %w", err)
	}

	blogsByOwner := make(map[int64][]models.Blog, len(users))
	for _, blog := range blogs {
		blogsByOwner[blog.UserID] = append(blogsByOwner[blog.UserID], blog)
	}

	for i := range users {
		owned := blogsByOwner[users[i].ID]
		if owned == nil {
			owned = []models.Blog{}
		}
		users[i].Blogs = owned
		users[i].PasswordHash = ""
	}

	return users, nil
}

// GetUserWithBlogs returns the user with the given id together with the
// posts they created, derived with a live query at call time.
//
// Returns store.ErrUserNotFound if the user does not exist.
func (b *blogService) GetUserWithBlogs(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := b.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	blogs, err := b.blogRepository.ListBlogsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing user blogs failed")
		return models.User{}, fmt.Errorf("listing user blogs failed: %w", err)
	}

	user.Blogs = blogs
	user.PasswordHash = ""

	return user, nil
}
