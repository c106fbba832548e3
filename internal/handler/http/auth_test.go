package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist/internal/service"
	"github.com/bloglist/bloglist/models"
)

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, "mluukkai", creds.Username)
			assert.Equal(t, "salainen", creds.Password)
			return models.User{ID: 1, Username: "mluukkai", Name: "Matti Luukkainen"}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", UserID: user.ID}, nil
		},
	}
	router := newTestRouter(t, auth, &mockBlogService{})

	rr := doRequest(t, router, http.MethodPost, "/api/login",
		`{"username":"mluukkai","password":"salainen"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "mluukkai", resp.Username)
	assert.Equal(t, "Matti Luukkainen", resp.Name)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, auth, &mockBlogService{})

	rr := doRequest(t, router, http.MethodPost, "/api/login",
		`{"username":"mluukkai","password":"wrong"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid username or password", errorMessage(t, rr))
}

func TestLogin_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockBlogService{})

	rr := doRequest(t, router, http.MethodPost, "/api/login", `{not json`, nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{ID: 1, Username: "mluukkai"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	router := newTestRouter(t, auth, &mockBlogService{})

	rr := doRequest(t, router, http.MethodPost, "/api/login",
		`{"username":"mluukkai","password":"salainen"}`, nil)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
