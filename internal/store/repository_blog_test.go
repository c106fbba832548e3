package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/models"
)

func newTestBlogRepo(t *testing.T) (*blogRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &blogRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func blogRowColumns() []string {
	return []string{
		"blog_id", "title", "author", "url", "likes", "user_id", "created_at",
		"username", "name",
	}
}

func TestListBlogs_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(blogRowColumns()).
		AddRow(1, "React patterns", "Michael Chan", "https://reactpatterns.com/", 7, 1, now, "mluukkai", "Matti Luukkainen").
		AddRow(2, "Go To Statement Considered Harmful", "Edsger W. Dijkstra", "https://example.com/goto", 5, 2, now, "hellas", "Arto Hellas")

	mock.ExpectQuery("SELECT b.blog_id").
		WillReturnRows(rows)

	blogs, err := repo.ListBlogs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blogs) != 2 {
		t.Fatalf("expected 2 blogs, got %d", len(blogs))
	}
	if blogs[0].Owner == nil || blogs[0].Owner.Username != "mluukkai" {
		t.Errorf("expected first blog owner mluukkai, got %+v", blogs[0].Owner)
	}
	if blogs[1].Likes != 5 {
		t.Errorf("expected second blog likes 5, got %d", blogs[1].Likes)
	}
}

func TestListBlogs_Empty(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT b.blog_id").
		WillReturnRows(sqlmock.NewRows(blogRowColumns()))

	blogs, err := repo.ListBlogs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blogs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(blogs) != 0 {
		t.Fatalf("expected 0 blogs, got %d", len(blogs))
	}
}

func TestListBlogsByUser_FiltersByOwner(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(blogRowColumns()).
		AddRow(3, "TDD harms architecture", "Robert C. Martin", "https://example.com/tdd", 0, 2, now, "hellas", "Arto Hellas")

	mock.ExpectQuery("SELECT b.blog_id").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	blogs, err := repo.ListBlogsByUser(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blogs) != 1 {
		t.Fatalf("expected 1 blog, got %d", len(blogs))
	}
	if blogs[0].UserID != 2 {
		t.Errorf("expected UserID=2, got %d", blogs[0].UserID)
	}
}

func TestGetBlog_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(blogRowColumns()).
		AddRow(1, "React patterns", "Michael Chan", "https://reactpatterns.com/", 7, 1, now, "mluukkai", "Matti Luukkainen")

	mock.ExpectQuery("SELECT b.blog_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	blog, err := repo.GetBlog(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blog.ID != 1 {
		t.Errorf("expected ID=1, got %d", blog.ID)
	}
	if blog.Owner == nil || blog.Owner.Name != "Matti Luukkainen" {
		t.Errorf("expected owner name populated, got %+v", blog.Owner)
	}
}

func TestGetBlog_NotFound(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT b.blog_id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBlog(ctx, 404)
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestCreateBlog_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	blog := models.Blog{
		Title:  "Canonical string reduction",
		Author: "Edsger W. Dijkstra",
		URL:    "https://example.com/canonical",
		Likes:  12,
		UserID: 1,
	}

	rows := sqlmock.NewRows([]string{"blog_id", "created_at"}).AddRow(10, now)

	mock.ExpectQuery("INSERT INTO blogs").
		WithArgs(blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID).
		WillReturnRows(rows)

	created, err := repo.CreateBlog(ctx, blog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected ID=10, got %d", created.ID)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
}

func TestCreateBlog_ExecError(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO blogs").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateBlog(ctx, models.Blog{Title: "t", URL: "u", UserID: 1})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateBlog_LikesOnly(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	likes := int64(42)

	mock.ExpectQuery("UPDATE blogs").
		WithArgs(likes, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"blog_id"}).AddRow(1))

	refetched := sqlmock.NewRows(blogRowColumns()).
		AddRow(1, "React patterns", "Michael Chan", "https://reactpatterns.com/", likes, 1, now, "mluukkai", "Matti Luukkainen")
	mock.ExpectQuery("SELECT b.blog_id").
		WithArgs(int64(1)).
		WillReturnRows(refetched)

	updated, err := repo.UpdateBlog(ctx, 1, models.BlogPatch{Likes: &likes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Likes != likes {
		t.Errorf("expected likes %d, got %d", likes, updated.Likes)
	}
	if updated.Title != "React patterns" {
		t.Errorf("expected untouched title, got %s", updated.Title)
	}
}

func TestUpdateBlog_EmptyPatchReturnsCurrentRecord(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// no UPDATE expected; the repository goes straight to the read
	rows := sqlmock.NewRows(blogRowColumns()).
		AddRow(1, "React patterns", "Michael Chan", "https://reactpatterns.com/", 7, 1, now, "mluukkai", "Matti Luukkainen")
	mock.ExpectQuery("SELECT b.blog_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	blog, err := repo.UpdateBlog(ctx, 1, models.BlogPatch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blog.Likes != 7 {
		t.Errorf("expected unchanged likes 7, got %d", blog.Likes)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateBlog_NotFound(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()
	likes := int64(1)

	mock.ExpectQuery("UPDATE blogs").
		WithArgs(likes, int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateBlog(ctx, 404, models.BlogPatch{Likes: &likes})
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestDeleteBlog_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM blogs").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteBlog(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteBlog_NotFound(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM blogs").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBlog(ctx, 404)
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestDeleteBlog_Idempotency(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM blogs").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM blogs").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteBlog(ctx, 1); err != nil {
		t.Fatalf("unexpected error on first delete: %v", err)
	}

	// second delete of the same id reports not found
	if err := repo.DeleteBlog(ctx, 1); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound on repeat delete, got %v", err)
	}
}
