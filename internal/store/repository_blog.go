package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/models"
)

// blogRepository is the PostgreSQL-backed implementation of
// [BlogRepository]. It executes all blog-post CRUD operations against
// the "blogs" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (blog_id, user_id, etc.).
type blogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlogRepository constructs a [BlogRepository] backed by the provided
// database connection and logger.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	return &blogRepository{
		DB:     db,
		logger: logger,
	}
}

// ListBlogs retrieves every blog post, each populated with the owner's
// username and display name. Rows come back in insertion (id) order; any
// presentation ordering such as sorting by likes is a caller concern.
func (b *blogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	query, args, err := buildListBlogsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return b.scanBlogs(ctx, query, args...)
}

// ListBlogsByUser retrieves the blog posts owned by the given user, in
// insertion order. This live query replaces any denormalized per-user
// post list, so a deleted post disappears from the result immediately.
func (b *blogRepository) ListBlogsByUser(ctx context.Context, userID int64) ([]models.Blog, error) {
	query, args, err := buildListBlogsByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return b.scanBlogs(ctx, query, args...)
}

// GetBlog retrieves a single blog post by id, owner populated.
//
// Returns [ErrBlogNotFound] when no row matches.
func (b *blogRepository) GetBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlogQuery(blogID)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.GetBlog").Int64("blog_id", blogID).Msg("failed to build query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blog models.Blog
	var owner models.BlogOwner

	scanErr := b.DB.QueryRowContext(ctx, query, args...).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.UserID,
		&blog.CreatedAt,
		&owner.Username,
		&owner.Name,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Blog{}, ErrBlogNotFound
		}

		log.Err(scanErr).Str("func", "blogRepository.GetBlog").Int64("blog_id", blogID).Msg("failed to scan blog row")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	blog.Owner = &owner
	return blog, nil
}

// CreateBlog inserts a new blog post and returns it with the
// server-assigned ID and CreatedAt populated. The owner reference is
// taken from blog.UserID and is immutable afterwards.
//
// The insert is a single statement, so there is no partial-failure
// window between creating the post and recording its ownership.
func (b *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBlogQuery(blog)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.CreateBlog").Int64("user_id", blog.UserID).Msg("failed to build query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scanErr := b.DB.QueryRowContext(ctx, query, args...).Scan(&blog.ID, &blog.CreatedAt)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "blogRepository.CreateBlog").
			Int64("user_id", blog.UserID).
			Msg("failed to insert blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().
		Str("func", "blogRepository.CreateBlog").
		Int64("blog_id", blog.ID).
		Int64("user_id", blog.UserID).
		Msg("successfully created blog")

	return blog, nil
}

// UpdateBlog applies the non-nil fields of patch to the blog with the
// given id and returns the updated record, owner populated.
//
// A patch with no fields set is a no-op read: the current record is
// fetched and returned unchanged.
//
// Returns [ErrBlogNotFound] if the target does not exist.
func (b *blogRepository) UpdateBlog(ctx context.Context, blogID int64, patch models.BlogPatch) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if patch.Title == nil && patch.Author == nil && patch.URL == nil && patch.Likes == nil {
		log.Warn().
			Str("func", "blogRepository.UpdateBlog").
			Int64("blog_id", blogID).
			Msg("no fields to update, returning current record")
		return b.GetBlog(ctx, blogID)
	}

	query, args, err := buildUpdateBlogQuery(blogID, patch)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.UpdateBlog").Int64("blog_id", blogID).Msg("failed to build update query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedID int64
	scanErr := b.DB.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "blogRepository.UpdateBlog").
				Int64("blog_id", blogID).
				Msg("blog not found")
			return models.Blog{}, ErrBlogNotFound
		}

		log.Err(scanErr).Str("func", "blogRepository.UpdateBlog").Int64("blog_id", blogID).Msg("failed to execute update query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return b.GetBlog(ctx, updatedID)
}

// DeleteBlog removes the blog post with the given id.
//
// Returns [ErrBlogNotFound] if no row was deleted. Ownership checks are
// the service layer's responsibility; the repository deletes by id only.
func (b *blogRepository) DeleteBlog(ctx context.Context, blogID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlogQuery(blogID)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.DeleteBlog").Int64("blog_id", blogID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := b.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "blogRepository.DeleteBlog").Int64("blog_id", blogID).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).Str("func", "blogRepository.DeleteBlog").Int64("blog_id", blogID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affectedErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "blogRepository.DeleteBlog").
			Int64("blog_id", blogID).
			Msg("blog not found")
		return ErrBlogNotFound
	}

	log.Info().
		Str("func", "blogRepository.DeleteBlog").
		Int64("blog_id", blogID).
		Msg("successfully deleted blog")

	return nil
}

func (b *blogRepository) scanBlogs(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := b.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).Str("func", "blogRepository.scanBlogs").Msg("failed to execute blog list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0, 50)

	for rows.Next() {
		var blog models.Blog
		var owner models.BlogOwner

		scanErr := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Author,
			&blog.URL,
			&blog.Likes,
			&blog.UserID,
			&blog.CreatedAt,
			&owner.Username,
			&owner.Name,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "blogRepository.scanBlogs").Msg("failed to scan blog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		blog.Owner = &owner
		blogs = append(blogs, blog)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "blogRepository.scanBlogs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return blogs, nil
}
