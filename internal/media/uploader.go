package media

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned when an upload is requested but no uploader
// was wired at startup. Startup must not fail just because the media host is
// unreachable; only uploads do.
var ErrNotConfigured = errors.New("media uploader not configured")

// Uploader stores a binary blob and returns a publicly dereferenceable URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error)
}
