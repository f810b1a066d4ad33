// Package nbclient provides the main entry point for creating NationBuilder API clients
package nbclient

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fivetwenty-io/nbapi/internal/client"
	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

var nationSlugPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// New creates a new NationBuilder API client. The config is not modified.
func New(config *nationbuilder.Config) (nationbuilder.Client, error) {
	if config == nil {
		return nil, nationbuilder.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, nationbuilder.ErrAccessTokenRequired
	}

	resolved := *config

	if resolved.BaseURL == "" {
		baseURL, err := BaseURLForNation(resolved.Nation)
		if err != nil {
			return nil, err
		}

		resolved.BaseURL = baseURL
	} else {
		resolved.BaseURL = normalizeBaseURL(resolved.BaseURL)
	}

	c, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// BaseURLForNation derives the API root from a nation slug.
func BaseURLForNation(nation string) (string, error) {
	if nation == "" {
		return "", nationbuilder.ErrNationRequired
	}

	if !nationSlugPattern.MatchString(nation) {
		return "", fmt.Errorf("%w: %q", nationbuilder.ErrInvalidNation, nation)
	}

	return fmt.Sprintf(constants.BaseURLTemplate, nation), nil
}

// normalizeBaseURL trims the trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithToken creates a new client for a nation slug and access token.
func NewWithToken(nation, token string) (nationbuilder.Client, error) {
	return New(&nationbuilder.Config{
		Nation:      nation,
		AccessToken: token,
	})
}

// NewWithBaseURL creates a new client for an explicit API root, such as a proxy.
func NewWithBaseURL(baseURL, token string) (nationbuilder.Client, error) {
	return New(&nationbuilder.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}
