package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_PassThroughStreaming(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"data: one\n\n", "data: two\n\n"} {
			_, _ = io.WriteString(w, chunk)
			flusher.Flush()
		}
	}))
	defer upstream.Close()

	h := NewHandler(upstream.URL)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt":{"role":"user"}}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data: one\n\ndata: two\n\n", rec.Body.String())
	assert.Equal(t, "text/event-stream; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rec.Header().Get("Connection"))

	// The inbound body reaches the backend untouched, as JSON.
	assert.Equal(t, `{"prompt":{"role":"user"}}`, string(gotBody))
	assert.Equal(t, "application/json", gotContentType)
}

func TestHandler_DefaultsContentTypeToEventStream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h["Content-Type"] = nil // suppress sniffing so no content type is sent
		_, _ = io.WriteString(w, "data: hello\n\n")
	}))
	defer upstream.Close()

	h := NewHandler(upstream.URL)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestHandler_UpstreamErrorStatusIsRelayed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service down", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	h := NewHandler(upstream.URL)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Backend request failed", body.Error)
	assert.Contains(t, body.Details, "service down")
}

func TestHandler_TransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	h := NewHandler(upstream.URL)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

// roundTripFunc lets a test fabricate upstream responses a real server
// cannot produce, like a nil body.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestHandler_NilUpstreamBody(t *testing.T) {
	// http.Client rewrites a transport's nil body to http.NoBody before the
	// response reaches the handler; both must map to 502, not an empty 200.
	cases := []struct {
		name string
		body io.ReadCloser
	}{
		{name: "nil body", body: nil},
		{name: "NoBody sentinel", body: http.NoBody},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: tc.body}, nil
			})}

			h := NewHandler("http://backend.invalid/api/chat", WithHTTPClient(client))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

			require.Equal(t, http.StatusBadGateway, rec.Code)

			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Backend returned an empty response body", body.Error)
		})
	}
}

// trackedBody reports whether the relay closed the upstream body.
type trackedBody struct {
	io.Reader
	closed atomic.Bool
}

func (b *trackedBody) Close() error {
	b.closed.Store(true)
	return nil
}

func TestHandler_ClosesUpstreamBody(t *testing.T) {
	cases := []struct {
		name   string
		status int
	}{
		{"success path", http.StatusOK},
		{"error path", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := &trackedBody{Reader: bytes.NewReader([]byte("payload"))}
			client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: tc.status, Header: http.Header{}, Body: body}, nil
			})}

			h := NewHandler("http://backend.invalid/api/chat", WithHTTPClient(client))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

			assert.True(t, body.closed.Load())
		})
	}
}

func TestHandler_StreamErrorAfterBytes(t *testing.T) {
	body := &trackedBody{Reader: io.MultiReader(
		strings.NewReader("partial"),
		iotest(errors.New("connection reset")),
	)}
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: body}, nil
	})}

	h := NewHandler("http://backend.invalid/api/chat", WithHTTPClient(client))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	// Bytes received before the drop still reach the client; the connection
	// then ends without a trailing error payload corrupting the stream.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.True(t, body.closed.Load())
}

// iotest returns a reader that fails immediately with err.
func iotest(err error) io.Reader {
	return readerFunc(func([]byte) (int, error) { return 0, err })
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestHandler_RejectsNonPost(t *testing.T) {
	h := NewHandler("http://backend.invalid/api/chat")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
