package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BREACH_API_URL", "")
	t.Setenv("ENRICHMENT_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.BreachAPIURL)
	assert.Equal(t, 5*time.Second, cfg.EnrichmentTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/riskscan")
	t.Setenv("DOH_ENDPOINT", "https://cloudflare-dns.com/dns-query")
	t.Setenv("BREACH_API_URL", "https://breach.example/api")
	t.Setenv("BREACH_API_KEY", "key")
	t.Setenv("ENRICHMENT_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost/riskscan", cfg.DatabaseURL)
	assert.Equal(t, "https://cloudflare-dns.com/dns-query", cfg.DoHEndpoint)
	assert.Equal(t, "https://breach.example/api", cfg.BreachAPIURL)
	assert.Equal(t, "key", cfg.BreachAPIKey)
	assert.Equal(t, 2*time.Second, cfg.EnrichmentTimeout)
}

func TestLoad_RejectsBadTimeout(t *testing.T) {
	t.Setenv("ENRICHMENT_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
