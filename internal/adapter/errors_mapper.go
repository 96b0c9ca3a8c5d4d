package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a non-2xx response into a sentinel error. The
// message is taken from a {"message": ...} error body when present, else the
// per-status default baked into the sentinel itself.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := serverMessage(resp.Body())

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	default:
		sentinel = ErrServer
	}

	if msg == "" {
		return fmt.Errorf("%w (http %d)", sentinel, resp.StatusCode())
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// serverMessage extracts the "message" field from an error body. Bodies that
// are not JSON objects (or carry no message) yield "".
func serverMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var er models.ErrorResponse
	if err := json.Unmarshal([]byte(trimmed), &er); err != nil {
		return ""
	}
	return strings.TrimSpace(er.Message)
}
