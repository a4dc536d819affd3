package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/ashe/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDryRunNeedsNoConfig(t *testing.T) {
	client, err := New("dryrun", &config.Config{})
	require.NoError(t, err)
	assert.True(t, client.IsDryRun())

	text, err := client.Fetch("anything")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestNewRejectsUnknownModel(t *testing.T) {
	_, err := New("not-a-real-model", &config.Config{})
	require.Error(t, err)
}

func TestFixtureClientReturnsFileContents(t *testing.T) {
	dir := t.TempDir()
	fixturePath := filepath.Join(dir, "reply.txt")
	require.NoError(t, os.WriteFile(fixturePath, []byte("```java\nreturn 0;\n```"), 0o644))

	client, err := New("mock", &config.Config{LlmFixturePath: fixturePath})
	require.NoError(t, err)

	text, err := client.Fetch("prompt text is ignored")
	require.NoError(t, err)
	assert.Contains(t, text, "return 0;")
}

func TestFixtureClientRequiresPath(t *testing.T) {
	_, err := New("mock", &config.Config{})
	require.Error(t, err)
}

func TestHTTPClientParsesLastChoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4", body.Model)

		resp := completionResponse{Choices: []choice{
			{Index: 0, Message: message{Role: "assistant", Content: "first"}},
			{Index: 1, Message: message{Role: "assistant", Content: "last"}},
		}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := New("gpt-4", &config.Config{
		LlmEndpoint:  server.URL,
		LlmAPIKey:    "secret",
		LlmTimeoutTotal: 5,
		LlmTimeoutLog:   1,
	})
	require.NoError(t, err)

	text, err := client.Fetch("fix this method")
	require.NoError(t, err)
	assert.Equal(t, "last", text)
}

func TestHTTPClientSurfacesNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client, err := New("gpt-4", &config.Config{LlmEndpoint: server.URL, LlmAPIKey: "k"})
	require.NoError(t, err)

	_, err = client.Fetch("prompt")
	require.Error(t, err)
}

func TestHTTPClientTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := New("gpt-4", &config.Config{
		LlmEndpoint:     server.URL,
		LlmAPIKey:       "k",
		LlmTimeoutTotal: 0, // applied as a sub-second override below
		LlmTimeoutLog:   0,
	})
	require.NoError(t, err)
	client.timeoutTotal = 50 * time.Millisecond
	client.timeoutLog = 10 * time.Millisecond

	_, err = client.Fetch("prompt")
	require.Error(t, err)
}
