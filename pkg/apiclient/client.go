package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client is a thin HTTP client for the mock server's JSON API. It holds
// the base URL and a shared http.Client; every request and response is
// logged for diagnosis. There is no retry, caching or state beyond this.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for the given base URL, e.g.
// "http://localhost:5000/api".
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get performs a GET request against the given endpoint.
func (c *Client) Get(endpoint string) (*http.Response, error) {
	return c.do(http.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(endpoint string, body interface{}) (*http.Response, error) {
	return c.do(http.MethodPost, endpoint, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(endpoint string, body interface{}) (*http.Response, error) {
	return c.do(http.MethodPut, endpoint, body)
}

// Delete performs a DELETE request against the given endpoint.
func (c *Client) Delete(endpoint string) (*http.Response, error) {
	return c.do(http.MethodDelete, endpoint, nil)
}

func (c *Client) do(method, endpoint string, body interface{}) (*http.Response, error) {
	url := c.BaseURL + endpoint

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, url, err)
	}

	c.logResponse(method, url, resp)
	return resp, nil
}

// logResponse echoes the exchange, restoring the response body so the
// caller can still read it.
func (c *Client) logResponse(method, url string, resp *http.Response) {
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		log.Printf("%s %s -> %d (failed to read body: %v)", method, url, resp.StatusCode, err)
		resp.Body = io.NopCloser(bytes.NewReader(nil))
		return
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	log.Printf("%s %s -> %d %s", method, url, resp.StatusCode, bytes.TrimSpace(data))
}

// DecodeJSON decodes a response body into v and closes it.
func DecodeJSON(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
