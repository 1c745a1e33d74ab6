package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"recifi/internal/controllers"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_ClientController(t *testing.T) {
	t.Run("attaches bearer token when asked", func(t *testing.T) {
		var gotAuth string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"data":{"items":[]}}`))
		}))
		defer srv.Close()

		c := controllers.NewClientController(srv.Client(), "test-key", logrus.New())

		bURL, err := url.Parse(srv.URL)
		assert.NoError(t, err)

		body, err := c.Send(http.MethodGet, bURL, nil, true)
		assert.NoError(t, err)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Contains(t, string(body), "items")
	})

	t.Run("skips credentials for public endpoints", func(t *testing.T) {
		var gotAuth string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"status":"1"}`))
		}))
		defer srv.Close()

		c := controllers.NewClientController(srv.Client(), "test-key", logrus.New())

		bURL, err := url.Parse(srv.URL)
		assert.NoError(t, err)

		_, err = c.Send(http.MethodGet, bURL, nil, false)
		assert.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("non-200 surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("rate limited"))
		}))
		defer srv.Close()

		c := controllers.NewClientController(srv.Client(), "test-key", logrus.New())

		bURL, err := url.Parse(srv.URL)
		assert.NoError(t, err)

		_, err = c.Send(http.MethodGet, bURL, nil, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("closes the body on error responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("rate limited"))
		}))
		defer srv.Close()

		body := &closeTrackingBody{}
		client := &http.Client{
			Transport: &bodyTrackingTransport{inner: srv.Client().Transport, body: body},
		}

		c := controllers.NewClientController(client, "test-key", logrus.New())

		bURL, err := url.Parse(srv.URL)
		assert.NoError(t, err)

		_, err = c.Send(http.MethodGet, bURL, nil, false)
		assert.Error(t, err)
		assert.True(t, body.closed)
	})
}

type closeTrackingBody struct {
	inner  io.ReadCloser
	closed bool
}

func (b *closeTrackingBody) Read(p []byte) (int, error) { return b.inner.Read(p) }

func (b *closeTrackingBody) Close() error {
	b.closed = true
	return b.inner.Close()
}

type bodyTrackingTransport struct {
	inner http.RoundTripper
	body  *closeTrackingBody
}

func (t *bodyTrackingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	t.body.inner = resp.Body
	resp.Body = t.body

	return resp, nil
}
