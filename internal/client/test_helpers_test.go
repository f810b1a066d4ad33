package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nbapi/internal/client"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// Test static errors.
var (
	ErrTestUnexpectedPage = errors.New("unexpected page")
)

// recordingLogger keeps error-level entries so tests can assert on diagnostics.
type recordingLogger struct {
	mu     sync.Mutex
	errors []map[string]interface{}
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, map[string]interface{})  {}
func (l *recordingLogger) Warn(string, map[string]interface{})  {}

func (l *recordingLogger) Error(_ string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errors = append(l.errors, fields)
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.errors)
}

// NewTestClient creates a client against serverURL with a fixed test token.
func NewTestClient(t *testing.T, serverURL string) (*client.Client, *recordingLogger) {
	t.Helper()

	logger := &recordingLogger{}

	c, err := client.New(&nationbuilder.Config{
		BaseURL:     serverURL,
		AccessToken: "test-token",
		Logger:      logger,
	})
	require.NoError(t, err)

	return c, logger
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(writer).Encode(body)
	}
}

// pagedHandler serves pages as NationBuilder does, keyed by the page query parameter.
func pagedHandler[T any](t *testing.T, expectedPath string, pages [][]T, inspect func(*http.Request)) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		if inspect != nil {
			inspect(request)
		}

		page, err := strconv.Atoi(request.URL.Query().Get("page"))
		if err != nil || page < 1 || page > len(pages) {
			assert.Fail(t, ErrTestUnexpectedPage.Error(), request.URL.RawQuery)
			writeJSON(writer, http.StatusBadRequest, map[string]string{"code": "bad_page"})

			return
		}

		perPage, _ := strconv.Atoi(request.URL.Query().Get("per_page"))

		writeJSON(writer, http.StatusOK, nationbuilder.Page[T]{
			Page:       page,
			TotalPages: len(pages),
			PerPage:    perPage,
			Results:    pages[page-1],
		})
	}
}

// TestGetOperation represents a generic get-by-ID operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           int
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      error
	Check        func(t *testing.T, result *TResponse)
}

// RunGetTests runs a series of get-by-ID operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*client.Client) func(context.Context, int) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)
				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			c, _ := NewTestClient(t, server.URL)

			result, err := getFunc(c)(context.Background(), testCase.ID)

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete-by-ID operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           int
	ExpectedPath string
	StatusCode   int
	WantErr      error
}

// RunDeleteTests runs a series of delete-by-ID operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*client.Client) func(context.Context, int) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "DELETE", request.Method)
				writer.WriteHeader(testCase.StatusCode)
			}))
			defer server.Close()

			c, _ := NewTestClient(t, server.URL)

			err := deleteFunc(c)(context.Background(), testCase.ID)

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}
