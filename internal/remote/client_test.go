package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func TestHTTPClient_Chat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Here is your plan."})
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	reply, err := client.Chat(context.Background(), []Message{
		{Role: "assistant", Content: "Hi!"},
		{Role: "user", Content: "plan my week"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Here is your plan.", reply)
}

func TestHTTPClient_Chat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	client := NewHTTPClient(cfg, NoopObserver{})

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestHTTPClient_Chat_RetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2
	client := NewHTTPClient(cfg, NoopObserver{})

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetryExhausted))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_Chat_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	client := NewHTTPClient(cfg, NoopObserver{})

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestNormalizeReply_ShapeUnion(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"message", `{"message":"a"}`, "a"},
		{"reply", `{"reply":"b"}`, "b"},
		{"text", `{"text":"c"}`, "c"},
		{"content", `{"content":"d"}`, "d"},
		{"openai style", `{"choices":[{"message":{"content":"e"}}]}`, "e"},
		{"nested data", `{"data":{"message":"f"}}`, "f"},
		{"bare string", `"g"`, "g"},
		{"message wins over reply", `{"message":"a","reply":"b"}`, "a"},
		{"whitespace trimmed", `{"message":"  spaced  "}`, "spaced"},
		{"empty object", `{}`, ""},
		{"garbage", `not json`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeReply([]byte(tc.raw)))
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
