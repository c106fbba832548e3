package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued at login. On top of the
// registered claims it carries the username so that clients can display
// the authenticated identity without an extra lookup; the "sub" claim
// holds the user id.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is the login name of the user the token was issued for.
	Username string `json:"username"`
}

// Token wraps a parsed or freshly issued JWT with convenience accessors
// for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" claim converted to int64,
// populated during issue/verify so that callers avoid repeated
// string-to-int parsing.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Username is the login name extracted from the "username" claim.
	Username string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString := t.Claims.Subject
	if userIDString == "" {
		return 0, fmt.Errorf("token has an empty subject claim")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
