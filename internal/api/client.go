package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/models"
)

// StatusError is returned for any non-2xx backend response
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s %s failed with status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, body)
}

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	ImageBase64 string          `json:"image_base64"`
	FoodName    string          `json:"food_name"`
	MealType    models.MealType `json:"meal_type"`
}

type wireMessage struct {
	Role      models.Role `json:"role"`
	Content   string      `json:"content"`
	CreatedAt *string     `json:"created_at"`
}

// timestamp layouts seen from the hosted store, with and without offset
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (w wireMessage) message() models.ChatMessage {
	msg := models.ChatMessage{Role: w.Role, Content: w.Content}
	if w.CreatedAt != nil {
		if t, ok := parseTimestamp(*w.CreatedAt); ok {
			msg.CreatedAt = &t
		}
	}
	return msg
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

// Health is the body of GET /
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client talks to the inference backend. No request timeout is applied;
// callers bound requests through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// WithHTTPClient swaps the underlying transport, used by tests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Analyze sends a photo for nutrition analysis
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/analyze", req, &result); err != nil {
		return models.AnalysisResult{}, err
	}
	return result, nil
}

// Chat sends one user message and returns the assistant reply
func (c *Client) Chat(ctx context.Context, sessionID, content string) (models.ChatMessage, error) {
	var wire wireMessage
	body := chatRequest{SessionID: sessionID, Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/v1/chat", body, &wire); err != nil {
		return models.ChatMessage{}, err
	}
	reply := wire.message()
	if reply.Role == "" {
		reply.Role = models.RoleAssistant
	}
	return reply, nil
}

// History returns the stored transcript for a session, oldest first
func (c *Client) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var wire []wireMessage
	path := "/api/v1/chat/history/" + url.PathEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	msgs := make([]models.ChatMessage, 0, len(wire))
	for _, w := range wire {
		msgs = append(msgs, w.message())
	}
	return msgs, nil
}

// Health calls the backend liveness endpoint
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/", nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("Backend request", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Backend request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Backend returned error status", "method", method, "path", path, "status", resp.StatusCode)
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
