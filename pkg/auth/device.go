package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rampctl/rampctl/pkg/net"
)

const (
	deviceCodeURL = "https://github.com/login/device/code"
	accessCodeURL = "https://github.com/login/oauth/access_token"
	deviceScopes  = "" // read-only public access, no scopes needed
	grantType     = "urn:ietf:params:oauth:grant-type:device_code"
)

// DeviceCode is GitHub's response to a device authorization request.
type DeviceCode struct {
	DeviceCode string `json:"device_code,omitempty"`
	// UserCode is shown to the user to enter in the browser,
	// 8 characters with a hyphen in the middle.
	UserCode        string `json:"user_code,omitempty"`
	VerificationURL string `json:"verification_uri,omitempty"`
	ExpiresInSec    int    `json:"expires_in,omitempty"`
	Interval        int    `json:"interval,omitempty"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

// GetDeviceCode starts the GitHub device authorization flow.
func GetDeviceCode(clientID string) (*DeviceCode, error) {
	if clientID == "" {
		return nil, errors.New("clientID is required")
	}

	res, err := postForm(deviceCodeURL, map[string]string{
		"client_id": clientID,
		"scope":     deviceScopes,
	})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body := ""
		if b, readErr := io.ReadAll(res.Body); readErr == nil {
			body = string(b)
		}
		return nil, fmt.Errorf("failed to get device code: %s - %s", res.Status, body)
	}

	var dc DeviceCode
	if err := json.NewDecoder(res.Body).Decode(&dc); err != nil {
		return nil, fmt.Errorf("failed to decode device code response: %w", err)
	}

	return &dc, nil
}

// GetToken exchanges an authorized device code for an access token.
func GetToken(clientID string, code *DeviceCode) (*AccessTokenResponse, error) {
	if clientID == "" {
		return nil, errors.New("clientID is required")
	}
	if code == nil {
		return nil, errors.New("device code is nil")
	}

	expiresAt := time.Now().UTC().Add(time.Duration(code.ExpiresInSec) * time.Second)

	res, err := postForm(accessCodeURL, map[string]string{
		"client_id":   clientID,
		"device_code": code.DeviceCode,
		"grant_type":  grantType,
	})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var t AccessTokenResponse
	if err := json.NewDecoder(res.Body).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	if time.Now().UTC().After(expiresAt) {
		return nil, errors.New("device code expired before authorization completed")
	}

	if t.AccessToken == "" {
		return nil, errors.New("access token is empty")
	}

	return &t, nil
}

func postForm(rawURL string, params map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	for k, v := range params {
		q.Add(k, v)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Add("content-type", "application/x-www-form-urlencoded")
	req.Header.Add("Accept", "application/json")

	res, err := net.GetHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return res, nil
}
