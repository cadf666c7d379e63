package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// RedactedValue replaces redacted query parameter values in logged URLs.
const RedactedValue = "REDACTED"

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL        string
	client         *http.Client
	defaultHeaders map[string]string
	redactParams   map[string]bool
	logger         HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// RedactParams lists query parameters whose values never reach the logger.
	RedactParams []string
	Logger       HTTPLogger
}

// Response is the raw outcome of a request that reached the server.
type Response struct {
	StatusCode  int
	ContentType string
	// Body is always UTF-8; bodies declared in another charset are transcoded.
	Body []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 2
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	redact := make(map[string]bool, len(opts.RedactParams))
	for _, p := range opts.RedactParams {
		redact[p] = true
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		client:         client,
		defaultHeaders: opts.DefaultHeaders,
		redactParams:   redact,
		logger:         opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters and headers.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string) (*Response, error) {
	return hc.doRequest(ctx, http.MethodGet, path, queryParams, headers)
}

// doRequest builds the URL, sets headers, executes the request and reads the whole body.
// Any status code is a valid Response; only failures to talk to the server are errors.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string) (*Response, error) {
	requestURL := ComposeURL(hc.baseURL, path, queryParams)
	loggedURL := ComposeURL(hc.baseURL, path, hc.redact(queryParams))

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	allHeaders := make(map[string]string, len(hc.defaultHeaders)+len(headers))
	for k, v := range hc.defaultHeaders {
		allHeaders[k] = v
	}
	for k, v := range headers {
		allHeaders[k] = v
	}
	for k, v := range allHeaders {
		req.Header.Set(k, v)
	}

	hc.logger.LogRequest(method, loggedURL, allHeaders, "")
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = loggedURL
		}
		hc.logger.LogResponseError(method, loggedURL, allHeaders, "", 0, "", time.Since(start).Milliseconds(), err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		hc.logger.LogResponseError(method, loggedURL, allHeaders, "", resp.StatusCode, "", time.Since(start).Milliseconds(), err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	bodyBytes, err = decodeBody(bodyBytes, contentType)
	if err != nil {
		hc.logger.LogResponseError(method, loggedURL, allHeaders, "", resp.StatusCode, "", time.Since(start).Milliseconds(), err)
		return nil, err
	}

	response := &Response{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        bodyBytes,
	}

	latency := time.Since(start).Milliseconds()
	if response.IsSuccess() {
		hc.logger.LogResponseSuccess(method, loggedURL, allHeaders, "", resp.StatusCode, string(bodyBytes), latency)
	} else {
		hc.logger.LogResponseError(method, loggedURL, allHeaders, "", resp.StatusCode, string(bodyBytes), latency,
			fmt.Errorf("http error: status %d", resp.StatusCode))
	}

	return response, nil
}

func (hc *Client) redact(params map[string]string) map[string]string {
	if len(hc.redactParams) == 0 {
		return params
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		if hc.redactParams[k] {
			v = RedactedValue
		}
		out[k] = v
	}
	return out
}

// decodeBody transcodes the body to UTF-8 when the Content-Type declares another charset.
func decodeBody(body []byte, contentType string) ([]byte, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}

	reader, err := charsetpkg.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unsupported response charset %q: %w", label, err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response body: %w", label, err)
	}
	return decoded, nil
}

// ComposeURL joins baseURL and path and appends the percent-encoded query parameters
// in sorted key order, so the same inputs always give the same URL.
func ComposeURL(baseURL, path string, params map[string]string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	composed := strings.TrimRight(baseURL, "/") + path
	if len(params) == 0 {
		return composed
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
	}

	return composed + "?" + strings.Join(parts, "&")
}
