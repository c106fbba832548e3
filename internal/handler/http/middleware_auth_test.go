package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist/models"
)

// The auth middleware guards POST /api/blogs; every header variant below
// must be rejected with the same opaque 401 body.
func TestAuthMiddleware_RejectedHeaders(t *testing.T) {
	router := newTestRouter(t, parseTokenAs("the-only-valid-token", 1), &mockBlogService{})

	cases := []struct {
		name   string
		header map[string]string
	}{
		{"no header", nil},
		{"empty header", map[string]string{"Authorization": ""}},
		{"scheme only", map[string]string{"Authorization": "Bearer"}},
		{"empty token", map[string]string{"Authorization": "Bearer "}},
		{"wrong scheme", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"garbage token", map[string]string{"Authorization": "Bearer not-a-jwt"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodPost, "/api/blogs",
				`{"title":"a title","url":"https://example.com"}`, tc.header)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Token missing or invalid", errorMessage(t, rr))
		})
	}
}

func TestAuthMiddleware_BearerSchemeIsCaseInsensitive(t *testing.T) {
	blog := &mockBlogService{
		createBlogFn: func(_ context.Context, ownerID int64, req models.NewBlogRequest) (models.Blog, error) {
			return models.Blog{ID: 1, Title: req.Title, URL: req.URL, UserID: ownerID}, nil
		},
	}
	router := newTestRouter(t, parseTokenAs("valid-token", 1), blog)

	rr := doRequest(t, router, http.MethodPost, "/api/blogs",
		`{"title":"a title","url":"https://example.com"}`,
		map[string]string{"Authorization": "bearer valid-token"})

	require.Equal(t, http.StatusCreated, rr.Code)
}

func Test_getTokenFromAuthHeader(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", nil},
		{"no space", "Bearerabc", "", ErrInvalidAuthorizationHeader},
		{"wrong scheme", "Basic abc", "", ErrInvalidAuthorizationHeader},
		{"empty token", "Bearer ", "", ErrEmptyToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tc.header)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
