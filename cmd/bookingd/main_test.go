package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/app"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/config"
)

func TestNewServerServesAPIFromMemoryStore(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8081},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Places:   config.PlacesConfig{BaseURL: "http://127.0.0.1:0"},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	application, err := app.New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer application.Close()

	server := newServer(cfg, application, zerolog.Nop())
	assert.Equal(t, "127.0.0.1:8081", server.Addr)
	assert.Equal(t, writeTimeout, server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, server.ReadHeaderTimeout)

	rr := httptest.NewRecorder()
	server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"venues":[]}`, rr.Body.String())
}
