package nationbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a non-success response.
type ErrorKind int

// Error kinds. Every non-2xx status maps to exactly one of them.
const (
	KindResponse ErrorKind = iota
	KindNotFound
	KindBadRequest
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	default:
		return "ResponseError"
	}
}

// KindForStatus returns the error kind for a non-success status code.
func KindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest:
		return KindBadRequest
	default:
		return KindResponse
	}
}

// Sentinels matched by *ResponseError through errors.Is.
var (
	// ErrResponse matches every *ResponseError.
	ErrResponse = errors.New("nationbuilder: non-success response")
	// ErrNotFound matches responses with status 404.
	ErrNotFound = errors.New("nationbuilder: not found")
	// ErrBadRequest matches responses with status 400.
	ErrBadRequest = errors.New("nationbuilder: bad request")
)

// Static errors for err113 compliance.
var (
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrConfigRequired      = errors.New("config is required")
	ErrNationRequired      = errors.New("nation slug or base URL is required")
	ErrInvalidNation       = errors.New("invalid nation slug")
)

// ResponseError is returned for any response whose status is outside 200-299.
// It keeps the response headers and body and the requested URL for diagnostics.
type ResponseError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
}

// NewResponseError classifies status and builds the matching error.
func NewResponseError(message string, status int, header http.Header, body []byte, url string) *ResponseError {
	return &ResponseError{
		Kind:       KindForStatus(status),
		Message:    message,
		StatusCode: status,
		Header:     header,
		Body:       body,
		URL:        url,
	}
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status: %d)", e.Kind, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ResponseError) Is(target error) bool {
	switch target {
	case ErrResponse:
		return true
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrBadRequest:
		return e.Kind == KindBadRequest
	default:
		return false
	}
}

// Code returns the NationBuilder error code from the body, or "" when the body
// is not a NationBuilder error document.
func (e *ResponseError) Code() string {
	body, err := ParseErrorBody(e.Body)
	if err != nil {
		return ""
	}

	return body.Code
}

// ErrorBody is the JSON document NationBuilder returns with most errors.
type ErrorBody struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ParseErrorBody parses an error response body.
func ParseErrorBody(data []byte) (*ErrorBody, error) {
	var body ErrorBody

	err := json.Unmarshal(data, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &body, nil
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadRequest checks if the error is a bad request error.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// AsResponseError extracts a *ResponseError from err.
func AsResponseError(err error) (*ResponseError, bool) {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr, true
	}

	return nil, false
}
