package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	cfg.MaxRetries = 0
	return cfg
}

func TestClient_Send_Success(t *testing.T) {
	var got sendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-123"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	err := client.Send(context.Background(), "user@example.com", "Due Today", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, []string{"user@example.com"}, got.To)
	assert.Equal(t, "Due Today", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HTML)
	assert.Contains(t, got.From, "Maintenance Tracker")
}

func TestClient_Send_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid recipient"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	err := client.Send(context.Background(), "bad", "subject", "body")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestClient_Send_RejectionIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3
	client := NewClient(cfg, NoopObserver{})
	err := client.Send(context.Background(), "user@example.com", "s", "b")
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, 1, calls)
}

func TestClient_Send_MissingAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	client := NewClient(cfg, NoopObserver{})

	err := client.Send(context.Background(), "user@example.com", "s", "b")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("UPKEEP_MAIL_ENABLED", "true")
	t.Setenv("UPKEEP_MAIL_API_KEY", "re_abc")
	t.Setenv("UPKEEP_MAIL_FROM", "Upkeep <upkeep@example.com>")
	t.Setenv("UPKEEP_MAIL_TIMEOUT_MS", "2500")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "re_abc", cfg.APIKey)
	assert.Equal(t, "Upkeep <upkeep@example.com>", cfg.From)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, "https://api.resend.com", cfg.Endpoint)
}
