package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/types"
)

const defaultTimeout = 10 * time.Second

// Client talks to the notes REST service. All methods take a context and
// normalize failures into ConfigError, RequestError, or APIError.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds a client from the resolved configuration. A missing base URL is
// a ConfigError before any dial is attempted.
func New(settings config.Settings) (*Client, error) {
	baseURL := settings.APIBaseURL()
	if baseURL == "" {
		return nil, &ConfigError{Message: "notes API base URL is not set; export " + config.EnvAPIURL + " or set api.base_url in " + config.SettingsFileName}
	}
	return NewWithBaseURL(baseURL), nil
}

func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		log: logging.Nop(),
	}
}

// SetLogger replaces the client's logger. A nil logger silences it.
func (c *Client) SetLogger(log logging.Logger) {
	if log == nil {
		log = logging.Nop()
	}
	c.log = log
}

// BaseURL returns the configured base URL with trailing slashes stripped.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every note. The response may be a bare array or a
// {"notes": [...]} envelope; either way the raw records come back untouched,
// normalization is the caller's business.
func (c *Client) List(ctx context.Context) ([]types.Record, error) {
	body, err := c.do(ctx, http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	switch firstByte(body) {
	case '[':
		var records []types.Record
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, &RequestError{URL: c.baseURL, Err: err}
		}
		return records, nil
	case '{':
		var envelope notesEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, &RequestError{URL: c.baseURL, Err: err}
		}
		return envelope.Notes, nil
	default:
		return nil, &RequestError{URL: c.baseURL, Err: errors.New("list response is neither an array nor an object")}
	}
}

// Create persists a new note and returns the server's record for it.
func (c *Client) Create(ctx context.Context, title, content string) (types.Record, error) {
	body, err := c.do(ctx, http.MethodPost, "/notes", notePayload{Title: title, Content: content})
	if err != nil {
		return nil, err
	}
	return decodeRecord(c.baseURL, body)
}

// Update replaces the note's title and content and returns the server's
// record for the updated note.
func (c *Client) Update(ctx context.Context, id, title, content string) (types.Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("note id is required")
	}
	body, err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), notePayload{Title: title, Content: content})
	if err != nil {
		return nil, err
	}
	return decodeRecord(c.baseURL, body)
}

// Delete removes the note. Any response body is ignored; 204 is success.
func (c *Client) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("note id is required")
	}
	_, err := c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{URL: c.baseURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", logging.F("method", method), logging.F("path", path), logging.F("err", err))
		return nil, &RequestError{URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request", logging.F("method", method), logging.F("path", path), logging.F("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: c.baseURL, Err: err}
	}
	return body, nil
}

func decodeRecord(baseURL string, body []byte) (types.Record, error) {
	if len(body) == 0 {
		return nil, nil
	}
	var rec types.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, &RequestError{URL: baseURL, Err: err}
	}
	return rec, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	if isJSONContentType(resp.Header.Get("Content-Type")) {
		var decoded any
		if json.Unmarshal(body, &decoded) == nil {
			apiErr.Body = decoded
			return apiErr
		}
	}
	apiErr.Body = strings.TrimSpace(string(body))
	return apiErr
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func firstByte(body []byte) byte {
	for _, b := range body {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}
