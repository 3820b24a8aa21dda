package net

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Client issues plain GET requests. It satisfies the fetch capability
// the metric resolver expects; passing no client at all is how callers
// opt out of remote resolution.
type Client struct {
	hc *http.Client
}

func NewClient() *Client {
	return &Client{hc: GetHTTPClient()}
}

// GetText retrieves the URL and returns the status code with the body
// as text. Transport errors are returned as-is; non-200 statuses are
// not errors, the caller decides what a miss means.
func (c *Client) GetText(url string) (int, string, error) {
	resp, err := c.get(url)
	if err != nil {
		return 0, "", errors.Wrapf(err, "error getting: %s", url)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", errors.Wrapf(err, "error reading body: %s", url)
	}

	return resp.StatusCode, string(b), nil
}

// GetJSON retrieves the HTTP content and decodes it into the passed target.
func (c *Client) GetJSON(url string, target any) error {
	resp, err := c.get(url)
	if err != nil {
		return errors.Wrapf(err, "error getting: %s", url)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "error decoding content: %s", url)
	}
	return nil
}

func (c *Client) get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating HTTP Get request")
	}

	req.Header.Set("User-Agent", clientAgent)

	return c.hc.Do(req)
}
