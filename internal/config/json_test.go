package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"password_hash_key": "phk",
			"token_sign_key":    "tsk",
			"token_issuer":      "iss",
			"token_duration":    "45m",
		},
		"storage": map[string]any{
			"db":    map[string]any{"dsn": "postgres://db"},
			"local": map[string]any{"dsn": "client.db"},
		},
		"server":  map[string]any{"http_address": ":8080", "request_timeout": "3s"},
		"adapter": map[string]any{"http_address": "http://localhost:8080", "request_timeout": 2000000000},
		"secure_store": map[string]any{
			"service_name": "svc",
			"backend":      "memory",
		},
		"interceptor": map[string]any{
			"allow_plaintext_without_key": true,
			"unreadable_placeholder":      "??",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "phk", cfg.App.PasswordHashKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "client.db", cfg.Storage.Local.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "svc", cfg.SecureStore.ServiceName)
	assert.True(t, cfg.Interceptor.AllowPlaintextWithoutKey)
	assert.False(t, cfg.Interceptor.LegacyPlaintextFallback)
	assert.Equal(t, "??", cfg.Interceptor.UnreadablePlaceholder)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(time.Hour))
	require.NoError(t, err)
	assert.JSONEq(t, `"1h0m0s"`, string(out))
}
