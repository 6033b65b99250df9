package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Status is the upstream HTTP status code, carried verbatim through the
// gateway. It classifies a resolved response as success, not-found,
// unauthorized, or any other upstream-reported condition; the gateway never
// reinterprets it.
type Status int

// Success reports whether the status is in the 2xx range.
func (s Status) Success() bool {
	return s >= http.StatusOK && s < http.StatusMultipleChoices
}

// String returns the standard status text (e.g. "Not Found").
func (s Status) String() string {
	return http.StatusText(int(s))
}

// Resolve turns a raw upstream response into a typed payload plus the
// upstream status.
//
// On a success status the body is deserialized into T with case-insensitive
// field matching (encoding/json). On a non-success status the payload is
// left at its zero value: the pairing invariant is that a payload is
// present iff the status signals success, never a partially populated
// value.
//
// A body that cannot be deserialized is an integration error, not a
// recoverable condition: Resolve returns a fatal error wrapping the
// original decode failure. Retry and timeout concerns belong to the
// transport client, not here.
func Resolve[T any](ctx context.Context, resp *resty.Response) (T, Status, error) {
	var payload T

	if err := ctx.Err(); err != nil {
		return payload, Status(resp.StatusCode()), fmt.Errorf("resolve aborted: %w", err)
	}

	status := Status(resp.StatusCode())
	if !status.Success() {
		return payload, status, nil
	}

	if body := bytes.TrimSpace(resp.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			var zero T
			return zero, status, fmt.Errorf("decode upstream response: %w", err)
		}
	}

	return payload, status, nil
}
