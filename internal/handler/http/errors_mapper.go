package http

import (
	"errors"
	"net/http"

	"github.com/bloglist/bloglist/internal/service"
	"github.com/bloglist/bloglist/internal/store"
	"github.com/bloglist/bloglist/internal/utils"
	"github.com/bloglist/bloglist/models"
)

// errTokenMissingOrInvalid is the exact wire message returned on every
// authentication failure of the bearer middleware.
const errTokenMissingOrInvalid = "Token missing or invalid"

var errorStatusMap = map[error]int{
	service.ErrCredentialsMissing:  http.StatusBadRequest,
	service.ErrCredentialsTooShort: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrInvalidBlog:         http.StatusBadRequest,
	service.ErrNegativeLikes:       http.StatusBadRequest,
	service.ErrNotBlogOwner:        http.StatusForbidden,

	// duplicate username maps to 400, not 409, for compatibility with
	// clients of the original API
	store.ErrUsernameTaken: http.StatusBadRequest,
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrBlogNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap overrides the wire message for errors whose sentinel
// text is not the exact string the API promises.
var errorMessageMap = map[error]string{
	store.ErrUsernameTaken:  "Username is already taken",
	service.ErrTokenInvalid: errTokenMissingOrInvalid,
	store.ErrUserNotFound:   "user not found",
	store.ErrBlogNotFound:   "blog not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	// storage and other unexpected errors stay opaque to the client
	return http.StatusText(http.StatusInternalServerError)
}

// writeError writes a JSON error body with the given message and status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode) //nolint:errcheck
}

// respondError maps err to its HTTP status and wire message and writes
// the JSON error response.
func respondError(w http.ResponseWriter, err error) {
	writeError(w, messageFromError(err), statusFromError(err))
}
