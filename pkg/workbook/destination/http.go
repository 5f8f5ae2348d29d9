package destination

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// HTTP streams the file to a client as an attachment download.
type HTTP struct {
	w       http.ResponseWriter
	written bool
}

func NewHTTP(w http.ResponseWriter) *HTTP {
	return &HTTP{w: w}
}

func (h *HTTP) Deliver(_ context.Context, fileName, contentType string, body io.Reader) error {
	h.w.Header().Set("Content-Type", contentType)
	h.w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	h.w.WriteHeader(http.StatusOK)
	h.written = true

	if _, err := io.Copy(h.w, body); err != nil {
		return fmt.Errorf("failed to stream response: %w", err)
	}
	return nil
}

// Written reports whether the response status has already been sent.
func (h *HTTP) Written() bool {
	return h.written
}

func (h *HTTP) String() string {
	return "http response"
}
