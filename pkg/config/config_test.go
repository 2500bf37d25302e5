package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STEEZE_SERVICE", "STEEZE_LOG_LEVEL", "STEEZE_LOG_DIR", "STEEZE_MANIFEST"} {
		t.Setenv(k, "") // restores the original value after the test
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Service: "steeze-lite", LogLevel: "info", Manifest: "routes.toml"}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STEEZE_SERVICE", "edge")
	t.Setenv("STEEZE_LOG_LEVEL", "debug")
	t.Setenv("STEEZE_LOG_DIR", "/tmp/steeze")
	t.Setenv("STEEZE_MANIFEST", "api.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Service: "edge", LogLevel: "debug", LogDir: "/tmp/steeze", Manifest: "api.yaml"}, cfg)
}
