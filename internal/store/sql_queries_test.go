package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist/models"
)

func Test_buildCreateUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{
		Username:     "mluukkai",
		Name:         "Matti Luukkainen",
		PasswordHash: "$2a$10$hash",
	}

	query, args, err := buildCreateUserQuery(user)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, user.Username, args[0])
	require.Equal(t, user.Name, args[1])
	require.Equal(t, user.PasswordHash, args[2])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id")
	require.Contains(t, q, "created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildListUsersQuery_OrdersByID(t *testing.T) {
	query, args, err := buildListUsersQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "from users")
	require.Contains(t, q, "order by user_id")
	require.NotContains(t, q, "where")
}

func Test_buildFindUserByUsernameQuery_FiltersByUsername(t *testing.T) {
	query, args, err := buildFindUserByUsernameQuery("root")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "root", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "username")
	require.Contains(t, query, "$1")
}

func Test_buildListBlogsQuery_JoinsOwner(t *testing.T) {
	query, args, err := buildListBlogsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "from blogs b")
	require.Contains(t, q, "join users u on u.user_id = b.user_id")
	require.Contains(t, q, "order by b.blog_id")

	// owner display fields ride along with every blog row
	require.Contains(t, q, "u.username")
	require.Contains(t, q, "u.name")
}

func Test_buildListBlogsByUserQuery_FiltersByOwner(t *testing.T) {
	query, args, err := buildListBlogsByUserQuery(7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "b.user_id")
	require.Contains(t, query, "$1")
}

func Test_buildCreateBlogQuery_SQLContainsParts(t *testing.T) {
	blog := models.Blog{
		Title:  "Go Concurrency Patterns",
		Author: "Rob Pike",
		URL:    "https://go.dev/talks/2012/concurrency.slide",
		Likes:  3,
		UserID: 1,
	}

	query, args, err := buildCreateBlogQuery(blog)
	require.NoError(t, err)

	require.Len(t, args, 5)
	require.Equal(t, blog.Title, args[0])
	require.Equal(t, blog.Author, args[1])
	require.Equal(t, blog.URL, args[2])
	require.Equal(t, blog.Likes, args[3])
	require.Equal(t, blog.UserID, args[4])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into blogs")
	require.Contains(t, q, "returning blog_id, created_at")
}

func Test_buildUpdateBlogQuery_SetsOnlyPatchedFields(t *testing.T) {
	likes := int64(42)

	query, args, err := buildUpdateBlogQuery(5, models.BlogPatch{Likes: &likes})
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, likes, args[0])
	require.Equal(t, int64(5), args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "update blogs")
	require.Contains(t, q, "set likes")
	require.NotContains(t, q, "title")
	require.NotContains(t, q, "author")
	require.NotContains(t, q, "url")
	require.Contains(t, q, "returning blog_id")
}

func Test_buildUpdateBlogQuery_FullPatch(t *testing.T) {
	title := "new title"
	author := "new author"
	url := "https://example.com/new"
	likes := int64(0)

	query, args, err := buildUpdateBlogQuery(9, models.BlogPatch{
		Title:  &title,
		Author: &author,
		URL:    &url,
		Likes:  &likes,
	})
	require.NoError(t, err)

	require.Len(t, args, 5)
	require.Equal(t, title, args[0])
	require.Equal(t, author, args[1])
	require.Equal(t, url, args[2])
	require.Equal(t, likes, args[3])
	require.Equal(t, int64(9), args[4])

	q := strings.ToLower(query)
	require.Contains(t, q, "set title")
	require.Contains(t, q, "likes")
}

func Test_buildUpdateBlogQuery_EmptyPatchIsInvalid(t *testing.T) {
	// squirrel rejects UPDATE without SET clauses; the repository guards
	// against empty patches before calling the builder
	_, _, err := buildUpdateBlogQuery(1, models.BlogPatch{})
	require.Error(t, err)
}

func Test_buildDeleteBlogQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildDeleteBlogQuery(11)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(11), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from blogs")
	require.Contains(t, q, "blog_id")
	require.Contains(t, query, "$1")
}
