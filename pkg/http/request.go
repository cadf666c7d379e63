package http

import (
	"context"
	"fmt"
)

// Request represents an HTTP GET request with various configuration options.
type Request struct {
	requestClient      *Client
	requestContext     context.Context
	requestPath        string
	requestQueryParams map[string]string
	requestHeaders     map[string]string
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient:  client,
		requestContext: context.Background(),
		requestPath:    "/",
	}
}

// WithContext sets the context bounding the request.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.requestContext = ctx
	return r
}

// WithPath sets the path for the request.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

// WithQueryParams sets the query parameters for the request.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.requestQueryParams = params
	return r
}

// WithHeaders sets the headers for the request.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.requestHeaders = headers
	return r
}

// Execute sends the request and returns the raw response.
func (r *Request) Execute() (*Response, error) {
	if r.requestClient == nil {
		return nil, fmt.Errorf("client is required")
	}
	if r.requestPath == "" {
		return nil, fmt.Errorf("path is required")
	}
	if r.requestContext == nil {
		return nil, fmt.Errorf("context is required")
	}

	return r.requestClient.Get(r.requestContext, r.requestPath, r.requestQueryParams, r.requestHeaders)
}
