package nationbuilder

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected ErrorKind
	}{
		{status: 404, expected: KindNotFound},
		{status: 400, expected: KindBadRequest},
		{status: 301, expected: KindResponse},
		{status: 401, expected: KindResponse},
		{status: 403, expected: KindResponse},
		{status: 422, expected: KindResponse},
		{status: 500, expected: KindResponse},
		{status: 503, expected: KindResponse},
		{status: 100, expected: KindResponse},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, KindForStatus(tt.status))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "BadRequest", KindBadRequest.String())
	assert.Equal(t, "ResponseError", KindResponse.String())
}

func TestNewResponseError(t *testing.T) {
	header := http.Header{"X-Request-Id": []string{"abc"}}
	body := []byte(`{"error":"not found"}`)

	err := NewResponseError("Get Person", 404, header, body, "https://acme.nationbuilder.com/api/v1/people/7")

	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "Get Person", err.Message)
	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, header, err.Header)
	assert.Equal(t, body, err.Body)
	assert.Equal(t, "https://acme.nationbuilder.com/api/v1/people/7", err.URL)
	assert.Equal(t, "NotFound: Get Person (status: 404)", err.Error())
}

func TestResponseError_ErrorWithoutMessage(t *testing.T) {
	err := NewResponseError("", 500, nil, nil, "")
	assert.Equal(t, "ResponseError (status: 500)", err.Error())
}

func TestResponseError_Is(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		notFound   bool
		badRequest bool
	}{
		{name: "not found", status: 404, notFound: true},
		{name: "bad request", status: 400, badRequest: true},
		{name: "server error", status: 500},
		{name: "redirect", status: 301},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error = NewResponseError("action", tt.status, nil, nil, "")
			wrapped := fmt.Errorf("getting person: %w", err)

			assert.True(t, errors.Is(wrapped, ErrResponse))
			assert.Equal(t, tt.notFound, errors.Is(wrapped, ErrNotFound))
			assert.Equal(t, tt.badRequest, errors.Is(wrapped, ErrBadRequest))
			assert.Equal(t, tt.notFound, IsNotFound(wrapped))
			assert.Equal(t, tt.badRequest, IsBadRequest(wrapped))
		})
	}
}

func TestResponseError_IsUnrelated(t *testing.T) {
	err := NewResponseError("action", 404, nil, nil, "")
	assert.False(t, errors.Is(err, ErrAccessTokenRequired))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestResponseError_Code(t *testing.T) {
	t.Run("nationbuilder error body", func(t *testing.T) {
		err := NewResponseError("match", 400, nil, []byte(`{"code":"no_matches","message":"No people matched the given criteria."}`), "")
		assert.Equal(t, "no_matches", err.Code())
	})

	t.Run("non json body", func(t *testing.T) {
		err := NewResponseError("match", 400, nil, []byte("<html>"), "")
		assert.Empty(t, err.Code())
	})
}

func TestParseErrorBody(t *testing.T) {
	body, err := ParseErrorBody([]byte(`{"code":"validation_failed","message":"Validation Failed."}`))
	require.NoError(t, err)
	assert.Equal(t, "validation_failed", body.Code)
	assert.Equal(t, "Validation Failed.", body.Message)

	_, err = ParseErrorBody([]byte("nope"))
	require.Error(t, err)
}

func TestAsResponseError(t *testing.T) {
	original := NewResponseError("delete", 503, nil, []byte("down"), "https://x")

	respErr, ok := AsResponseError(fmt.Errorf("deleting: %w", original))
	require.True(t, ok)
	assert.Same(t, original, respErr)

	_, ok = AsResponseError(errors.New("other"))
	assert.False(t, ok)
}
