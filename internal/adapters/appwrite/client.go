// Package appwrite provides a narrow REST client for the Appwrite-compatible
// backend that owns documents, files, and user identities
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"askforge/internal/platform/config"
	perr "askforge/internal/platform/errors"
	"askforge/internal/platform/logger"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "askforge-api"
	apiPrefix      = "/v1"
)

// Options configures the Client
type Options struct {
	// Endpoint is the backend base URL including scheme, e.g. https://cloud.appwrite.io
	Endpoint string

	// Project and Key are the server-side credentials sent on every request
	Project string
	Key     string

	UserAgent string
	Timeout   time.Duration
}

// FromConfig reads client options from an APPWRITE_-scoped config view
func FromConfig(cfg config.Conf) Options {
	return Options{
		Endpoint:  cfg.MustURL("ENDPOINT").String(),
		Project:   cfg.MustString("PROJECT_ID"),
		Key:       cfg.MustString("API_KEY"),
		UserAgent: cfg.MayString("USER_AGENT", defaultUA),
		Timeout:   cfg.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Client is a minimal Appwrite REST client covering documents, storage, and users
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("appwrite"),
		now:  time.Now,
	}
}

// Ping checks backend health, used by readiness probes
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// Databases returns the document service view
func (c *Client) Databases() *Databases { return &Databases{c: c} }

// Storage returns the file service view
func (c *Client) Storage() *Storage { return &Storage{c: c} }

// Users returns the identity service view
func (c *Client) Users() *Users { return &Users{c: c} }

// wireError is the error payload the backend returns on failures
type wireError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

// do issues a JSON request and decodes the response into out when non-nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite encode body")
		}
		reader = bytes.NewReader(buf)
	}

	u := c.opts.Endpoint + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite new request")
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.roundTrip(req, method, path, out)
}

// doMultipart issues a multipart upload request (storage file create)
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, data []byte, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite write form field")
		}
	}
	fw, err := mw.CreateFormFile(fileField, filename)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite create form file")
	}
	if _, err := fw.Write(data); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite write form file")
	}
	if err := mw.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite close form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint+apiPrefix+path, &buf)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "appwrite new request")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.roundTrip(req, http.MethodPost, path, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Appwrite-Project", c.opts.Project)
	req.Header.Set("X-Appwrite-Key", c.opts.Key)
}

func (c *Client) roundTrip(req *http.Request, method, path string, out any) error {
	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "appwrite %s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("appwrite http response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUpstream, "appwrite decode response")
		}
		return nil
	}

	return c.asError(resp, method, path)
}

// asError maps a non-2xx response into a project error
func (c *Client) asError(resp *http.Response, method, path string) error {
	var we wireError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &we); err != nil || we.Message == "" {
		we.Message = fmt.Sprintf("status %d", resp.StatusCode)
	}

	msg := fmt.Sprintf("appwrite %s %s: %s", method, path, we.Message)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return perr.New(perr.ErrorCodeNotFound, msg)
	case http.StatusUnauthorized:
		return perr.New(perr.ErrorCodeUnauthorized, msg)
	case http.StatusForbidden:
		return perr.New(perr.ErrorCodeForbidden, msg)
	case http.StatusBadRequest:
		return perr.New(perr.ErrorCodeInvalidArgument, msg)
	case http.StatusServiceUnavailable, http.StatusTooManyRequests:
		return perr.New(perr.ErrorCodeUnavailable, msg)
	default:
		return perr.New(perr.ErrorCodeUpstream, msg)
	}
}
