package net

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("hello"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient()

	status, body, err := c.GetText(srv.URL + "/ok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	status, _, err = c.GetText(srv.URL + "/missing")
	require.NoError(t, err, "non-200 is not an error")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetTextConnectionError(t *testing.T) {
	c := NewClient()
	_, _, err := c.GetText("http://127.0.0.1:1/nope")
	assert.Error(t, err)
}

func TestGetTextSendsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, _, err := NewClient().GetText(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, clientAgent, ua)
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"thing","count":3}`))
	}))
	defer srv.Close()

	var target struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, NewClient().GetJSON(srv.URL, &target))
	assert.Equal(t, "thing", target.Name)
	assert.Equal(t, 3, target.Count)
}

func TestGetOAuthClient(t *testing.T) {
	client := GetOAuthClient(context.Background(), "test-token")
	assert.NotNil(t, client)
}

func TestGetHTTPClient(t *testing.T) {
	c := GetHTTPClient()
	require.NotNil(t, c)
	assert.NotZero(t, c.Timeout)
}
