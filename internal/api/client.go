package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"taskclient/internal/config"
	"taskclient/internal/keychain"
	"taskclient/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Envelope is the {message, data} wrapper every endpoint responds with.
type Envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode unmarshals the envelope's data into out.
func (e *Envelope) Decode(out any) error {
	if err := json.Unmarshal(e.Data, out); err != nil {
		return &Error{Kind: KindDecode, Message: "unexpected response shape", Err: err}
	}
	return nil
}

// Client talks to the remote task API. The bearer token is read from the
// keychain on every call, so a token written after construction is
// picked up by the very next request.
type Client struct {
	baseURL string
	http    *http.Client
	creds   keychain.Store
}

func New(cfg *config.Config, creds keychain.Store) *Client {
	return &Client{
		baseURL: cfg.BaseURL(),
		http:    &http.Client{Timeout: cfg.API.Timeout},
		creds:   creds,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	start := time.Now()
	requestID := uuid.New().String()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Message: "serializing request body", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "building request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	// Token is read at call time, not cached at construction. Login and
	// register simply find the slot empty and go out without the header.
	if auth, err := c.creds.Get(ctx); err == nil && auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+auth.Token)
	}

	logger.RequestInfo(method, path, "API_OUT:", zap.String("request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		kind := KindTransport
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			kind = KindTimeout
		}

		logger.Warn("API: Request failed",
			zap.String("request_id", requestID),
			zap.String("kind", string(kind)),
			zap.Error(err))

		return nil, &Error{Kind: kind, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "reading response", Err: err}
	}

	logger.Info("API_IN: Response received",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("ms", time.Since(start)))

	if resp.StatusCode >= 400 {
		var envelope Envelope
		// Best effort: the error envelope's message is user-visible
		// when present, the status alone carries the failure otherwise.
		json.Unmarshal(raw, &envelope)
		return nil, &Error{
			Kind:    KindAPI,
			Status:  resp.StatusCode,
			Message: envelope.Message,
			Err:     fmt.Errorf("api status %d", resp.StatusCode),
		}
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &Error{Kind: KindDecode, Message: "response is not an envelope", Err: err}
	}
	if envelope.Message == "" && envelope.Data == nil {
		return nil, &Error{Kind: KindDecode, Message: "response missing envelope fields"}
	}

	return &envelope, nil
}
