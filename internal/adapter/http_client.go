// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty-backed [Transport].
type HTTPClient struct {
	client   *resty.Client
	registry *interceptor.Registry

	logger *logger.Logger
}

var _ Transport = (*HTTPClient)(nil)

// NewHTTPClient builds an HTTPClient from the client configuration section.
// A non-empty BaseURL is normalised and used for relative request URLs;
// a nil registry means the process-wide [interceptor.Instance].
//
// Returns an error wrapping [ErrInvalidBaseURL] if BaseURL cannot be parsed
// into a scheme and host.
func NewHTTPClient(cfg config.Client, registry *interceptor.Registry, log *logger.Logger) (*HTTPClient, error) {
	if registry == nil {
		registry = interceptor.Instance()
	}
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetLogger(restyLogger{log})

	if cfg.BaseURL != "" {
		baseURL, err := normalizeBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		client.SetBaseURL(baseURL)
	}

	return &HTTPClient{client: client, registry: registry, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do reduces req through the request interceptors, sends it, and reduces the
// outcome through the response interceptors. A request interceptor error is
// returned unchanged and nothing is sent. Status and network failures are
// attached to Response.Err before the response interceptors run, so those
// interceptors may inspect, replace or clear them; the returned error is the
// final Response.Err. A chain that reduces the request or the response to
// nil yields [ErrNilRequest] or [ErrNilResponse].
func (h *HTTPClient) Do(req *models.Request) (*models.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	reduced, err := h.registry.ReduceRequest(req)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", req.Method).Str("url", req.URL).
			Msg("request rejected by interceptors")
		return nil, err
	}
	if reduced == nil {
		return nil, fmt.Errorf("%w: dropped by request interceptors", ErrNilRequest)
	}

	resp := h.send(reduced)

	out, err := h.registry.ReduceResponse(resp)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNilResponse
	}
	return out, out.Err
}

func (h *HTTPClient) send(req *models.Request) *models.Response {
	ctx := req.Context()
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	r := h.client.R().SetContext(ctx)
	for key, values := range req.Headers {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	start := time.Now()
	raw, err := r.Execute(req.Method, req.URL)
	resp := &models.Response{
		Request:  req,
		Duration: time.Since(start),
	}
	if err != nil {
		resp.Err = mapTransportError(err)
		return resp
	}

	resp.Status = raw.StatusCode()
	resp.Headers = raw.Header()
	resp.Body = raw.Body()
	if resp.Err = mapHTTPError(resp.Status, resp.Body); resp.Err != nil {
		return resp
	}

	resp.Value, resp.Err = decodeBody(req.ResponseType, resp.Body)
	return resp
}

func decodeBody(kind models.ResponseType, body []byte) (any, error) {
	switch kind {
	case models.ResponseTypeJSON:
		if len(body) == 0 {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
		}
		return v, nil
	case models.ResponseTypeText:
		return string(body), nil
	default:
		return body, nil
	}
}

// Get sends a GET to url through the interceptor pipeline.
func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (*models.Response, error) {
	return h.Do(newRequest(ctx, http.MethodGet, url, nil, headers))
}

// Post sends body to url as a POST. []byte and string bodies go out
// verbatim, anything else as JSON.
func (h *HTTPClient) Post(ctx context.Context, url string, body any, headers http.Header) (*models.Response, error) {
	return h.Do(newRequest(ctx, http.MethodPost, url, body, headers))
}

// Put sends body to url as a PUT.
func (h *HTTPClient) Put(ctx context.Context, url string, body any, headers http.Header) (*models.Response, error) {
	return h.Do(newRequest(ctx, http.MethodPut, url, body, headers))
}

// Patch sends body to url as a PATCH. PATCH has no method scope, so only
// global interceptors apply.
func (h *HTTPClient) Patch(ctx context.Context, url string, body any, headers http.Header) (*models.Response, error) {
	return h.Do(newRequest(ctx, http.MethodPatch, url, body, headers))
}

// Delete sends a DELETE to url.
func (h *HTTPClient) Delete(ctx context.Context, url string, headers http.Header) (*models.Response, error) {
	return h.Do(newRequest(ctx, http.MethodDelete, url, nil, headers))
}

// GetJSON issues a GET with a JSON response type and unmarshals the body of
// a successful response into out.
func (h *HTTPClient) GetJSON(ctx context.Context, url string, out any, headers http.Header) error {
	req := newRequest(ctx, http.MethodGet, url, nil, headers)
	req.ResponseType = models.ResponseTypeJSON
	if req.Header("Accept") == "" {
		req.SetHeader("Accept", "application/json")
	}

	resp, err := h.Do(req)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

func newRequest(ctx context.Context, method, url string, body any, headers http.Header) *models.Request {
	req := models.NewRequest(ctx, method, url)
	req.Body = body
	if headers != nil {
		req.Headers = headers.Clone()
	}
	return req
}

// restyLogger routes resty's internal warnings into zerolog.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }
