package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIURL = "https://dummyjson.com"

// Backend is an interface for making calls against the product catalog
// service. This interface exists to enable mocking during testing if needed.
type Backend interface {
	Call(ctx context.Context, method, path string, body, v interface{}) error
}

// BackendConfiguration is the internal implementation for making HTTP calls
// to the catalog service.
type BackendConfiguration struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewBackend returns a Backend talking to baseURL, falling back to the
// public demo catalog when baseURL is empty.
func NewBackend(baseURL string) Backend {
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	return &BackendConfiguration{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *BackendConfiguration) Call(ctx context.Context, method, path string, body, v interface{}) error {
	req, err := s.NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	return s.Do(req, v)
}

// NewRequest is used by Call to generate an http.Request. A non-nil body is
// marshaled to JSON and shipped as-is.
func (s *BackendConfiguration) NewRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = s.BaseURL + path

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do is used by Call to execute an API request and parse the response. It
// uses the backend's HTTP client to execute the request and unmarshals the
// response into v. It also handles unmarshaling errors returned by the API.
func (s *BackendConfiguration) Do(req *http.Request, v interface{}) error {
	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		vErr := &Error{Status: res.StatusCode}
		if err := json.Unmarshal(resBody, vErr); err != nil {
			vErr.Message = strings.TrimSpace(string(resBody))
		}
		if vErr.Message == "" {
			vErr.Message = http.StatusText(res.StatusCode)
		}
		vErr.Status = res.StatusCode
		return vErr
	}

	if v != nil {
		return json.Unmarshal(resBody, v)
	}

	return nil
}
