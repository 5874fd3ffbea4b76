package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Message is one turn of the conversation sent to the backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client provides access to a remote chat backend for assistant replies.
type Client interface {
	// Chat sends the conversation and returns the backend's reply text.
	Chat(ctx context.Context, messages []Message) (string, error)

	// Available checks whether the backend is reachable.
	Available(ctx context.Context) bool
}

// httpChatClient implements Client over a JSON-over-HTTP endpoint.
type httpChatClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that posts conversations to cfg.Endpoint.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpChatClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type chatRequest struct {
	Messages []Message `json:"messages"`
}

func (c *httpChatClient) Chat(ctx context.Context, messages []Message) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		reply, err := c.doRequest(ctx, chatRequest{Messages: messages})
		if err == nil {
			c.observer.OnCallComplete(ChatCallEvent{
				Endpoint:  c.cfg.Endpoint,
				Messages:  len(messages),
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return reply, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(ChatCallEvent{
		Endpoint:  c.cfg.Endpoint,
		Messages:  len(messages),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return "", ErrTimeout
	}
	if isConnectionError(lastErr) {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpChatClient) doRequest(ctx context.Context, body chatRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat backend returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	return NormalizeReply(respBody), nil
}

func (c *httpChatClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

// NormalizeReply extracts the reply text from the backend response.
// Backends disagree on the envelope, so several shapes are accepted:
// message, reply, text, content, choices[0].message.content, and
// data.message. An empty string is the last resort.
func NormalizeReply(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Reply   string `json:"reply"`
		Text    string `json:"text"`
		Content string `json:"content"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// A bare JSON string is also accepted.
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}

	for _, candidate := range []string{
		envelope.Message,
		envelope.Reply,
		envelope.Text,
		envelope.Content,
	} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	if len(envelope.Choices) > 0 {
		if s := strings.TrimSpace(envelope.Choices[0].Message.Content); s != "" {
			return s
		}
	}
	return strings.TrimSpace(envelope.Data.Message)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "request_failed"
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
