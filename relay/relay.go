package relay

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// Handler proxies chat requests to the backend agent endpoint and streams
// responses back. It implements http.Handler for POST /api/chat.
type Handler struct {
	backendURL string
	client     *http.Client
	logger     *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithHTTPClient sets the client used for upstream calls.
func WithHTTPClient(client *http.Client) Option {
	return func(h *Handler) {
		h.client = client
	}
}

// WithLogger sets the logger for upstream failures.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a relay handler that forwards to backendURL.
func NewHandler(backendURL string, opts ...Option) *Handler {
	h := &Handler{
		backendURL: backendURL,
		client:     http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSONError(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
		return
	}

	// The inbound body streams straight through without parsing; the relay
	// must work for arbitrary conversation length.
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.backendURL, r.Body)
	if err != nil {
		h.logger.Error("building upstream request failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error("upstream request failed", "url", h.backendURL, "error", err)
		writeJSONError(w, http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}

	// http.Client normalizes a transport's nil body to http.NoBody, so both
	// spellings mean the upstream sent nothing to stream.
	if resp.Body == nil || resp.Body == http.NoBody {
		h.logger.Error("upstream response missing body", "status", resp.StatusCode)
		writeJSONError(w, http.StatusBadGateway, errorBody{Error: "Backend returned an empty response body"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errorText, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			h.logger.Error("reading upstream error body failed", "status", resp.StatusCode, "error", readErr)
		}
		h.logger.Error("upstream returned error status", "status", resp.StatusCode, "body", string(errorText))
		writeJSONError(w, resp.StatusCode, errorBody{
			Error:   "Backend request failed",
			Details: string(errorText),
		})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/event-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(resp.StatusCode)

	h.stream(w, resp.Body)
}

// stream copies upstream bytes to the client, flushing after every read so
// the client sees them as the backend produces them.
func (h *Handler) stream(w http.ResponseWriter, body io.Reader) {
	flusher, canFlush := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				h.logger.Warn("client disconnected mid-stream", "error", writeErr)
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
		if err != nil {
			if err != io.EOF {
				h.logger.Error("upstream stream ended with error", "error", err)
			}
			return
		}
	}
}

func writeJSONError(w http.ResponseWriter, status int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
