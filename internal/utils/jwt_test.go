package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist/models"
)

const (
	testIssuer  = "bloglist"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	user := models.User{ID: 42, Username: "mluukkai"}

	token, err := GenerateJWTToken(testIssuer, user, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "mluukkai", token.Username)
	assert.Equal(t, testIssuer, token.Claims.Issuer)
	assert.Equal(t, "42", token.Claims.Subject)
	require.NotNil(t, token.Claims.ExpiresAt)
	assert.True(t, token.Claims.ExpiresAt.After(time.Now()))
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	user := models.User{ID: 1, Username: "mluukkai"}

	cases := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{"no issuer", "", time.Hour, testSignKey},
		{"zero duration", testIssuer, 0, testSignKey},
		{"no sign key", testIssuer, time.Hour, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tc.issuer, user, tc.duration, tc.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	user := models.User{ID: 7, Username: "hellas"}

	issued, err := GenerateJWTToken(testIssuer, user, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "hellas", parsed.Username)
	assert.Equal(t, issued.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, models.User{ID: 1}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("someone-else", models.User{ID: 1}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, models.User{ID: 1}, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("definitely.not.ajwt", testSignKey, testIssuer)
	require.Error(t, err)
}
