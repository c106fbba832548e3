// Package client provides a typed HTTP client for the blog catalog API.
//
// It wraps go-resty with the API's request and response models, remembers
// the bearer token obtained at login, and maps non-2xx responses to
// sentinel errors callers can match with errors.Is.
package client
