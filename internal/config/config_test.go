package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, []string{"silver"}, cfg.RefMetals)
	require.Equal(t, 30*time.Second, cfg.RefreshInterval)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("QUOTE_API_URL", "http://quotes.local")
	t.Setenv("REF_METALS", "silver, gold")
	t.Setenv("REF_REFRESH_INTERVAL", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, "http://quotes.local", cfg.QuoteAPIURL)
	require.Equal(t, []string{"silver", "gold"}, cfg.RefMetals)
	require.Equal(t, 5*time.Second, cfg.RefreshInterval)
}

func TestLoadBadInterval(t *testing.T) {
	t.Setenv("REF_REFRESH_INTERVAL", "soon")
	_, err := Load()
	require.Error(t, err)
}
