package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/bloglist/bloglist/models"
)

// psql is the shared squirrel statement builder configured for
// PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list of the users table, in the
// order every user scan expects.
var userColumns = []string{"user_id", "username", "name", "password_hash", "created_at"}

// blogColumns is the column list of the blogs table joined with the
// owner's display fields, in the order every blog scan expects.
var blogColumns = []string{
	"b.blog_id", "b.title", "b.author", "b.url", "b.likes", "b.user_id", "b.created_at",
	"u.username", "u.name",
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("username", "name", "password_hash").
		Values(user.Username, user.Name, user.PasswordHash).
		Suffix("RETURNING user_id, username, name, password_hash, created_at").
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		OrderBy("user_id").
		ToSql()
}

func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func blogSelect() sq.SelectBuilder {
	return psql.Select(blogColumns...).
		From("blogs b").
		Join("users u ON u.user_id = b.user_id").
		OrderBy("b.blog_id")
}

func buildListBlogsQuery() (string, []any, error) {
	return blogSelect().ToSql()
}

func buildListBlogsByUserQuery(userID int64) (string, []any, error) {
	return blogSelect().Where(sq.Eq{"b.user_id": userID}).ToSql()
}

func buildGetBlogQuery(blogID int64) (string, []any, error) {
	return blogSelect().Where(sq.Eq{"b.blog_id": blogID}).ToSql()
}

func buildCreateBlogQuery(blog models.Blog) (string, []any, error) {
	return psql.Insert("blogs").
		Columns("title", "author", "url", "likes", "user_id").
		Values(blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID).
		Suffix("RETURNING blog_id, created_at").
		ToSql()
}

// buildUpdateBlogQuery assembles a partial UPDATE from the non-nil patch
// fields. The caller is responsible for ensuring at least one field is
// set; squirrel rejects an UPDATE with no SET clauses.
func buildUpdateBlogQuery(blogID int64, patch models.BlogPatch) (string, []any, error) {
	update := psql.Update("blogs")

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Author != nil {
		update = update.Set("author", *patch.Author)
	}
	if patch.URL != nil {
		update = update.Set("url", *patch.URL)
	}
	if patch.Likes != nil {
		update = update.Set("likes", *patch.Likes)
	}

	return update.
		Where(sq.Eq{"blog_id": blogID}).
		Suffix("RETURNING blog_id").
		ToSql()
}

func buildDeleteBlogQuery(blogID int64) (string, []any, error) {
	return psql.Delete("blogs").
		Where(sq.Eq{"blog_id": blogID}).
		ToSql()
}
