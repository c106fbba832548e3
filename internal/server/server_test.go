package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist/internal/config"
	"github.com/bloglist/bloglist/internal/logger"
)

func TestNewServer_HTTPAddressConfigured(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:8080"}

	srv, err := NewServer(http.NewServeMux(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}
