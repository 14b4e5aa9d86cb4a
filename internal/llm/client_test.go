package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("https://api.example.com/v1/", "key", "model")
	assert.Equal(t, "https://api.example.com/v1", c.baseURL)
}

func TestConfigured(t *testing.T) {
	assert.True(t, New("http://x", "key", "m").Configured())
	assert.False(t, New("http://x", "", "m").Configured())
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "The float is drifting east."}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "test-key", "test-model")
	reply, err := c.Complete(context.Background(), []Message{
		{Role: "system", Content: "You are an oceanography assistant."},
		{Role: "user", Content: "Where is float 7 headed?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The float is drifting east.", reply)
}

func TestComplete_MissingAPIKey(t *testing.T) {
	c := New("http://unused", "", "m")
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestComplete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := New(server.URL, "key", "m")
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	c := New(server.URL, "key", "m")
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
