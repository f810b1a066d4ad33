package client

import (
	"errors"

	"github.com/fivetwenty-io/nbapi/internal/http"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("API base URL is required")
)

// Client implements the nationbuilder.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     nationbuilder.Logger

	// Resource clients
	people   nationbuilder.PeopleClient
	tags     nationbuilder.TagsClient
	lists    nationbuilder.ListsClient
	contacts nationbuilder.ContactsClient
}

// createHTTPClientOptions builds gateway options from config.
func createHTTPClientOptions(config *nationbuilder.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.VerifyTLS {
		httpOpts = append(httpOpts, http.WithTLSVerification(true))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client for the API root in config.BaseURL. Deriving the root from a
// nation slug is the caller's job.
func New(config *nationbuilder.Config, extra ...http.Option) (*Client, error) {
	if config == nil {
		return nil, nationbuilder.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	httpOpts := append(createHTTPClientOptions(config), extra...)

	httpClient, err := http.NewClient(config.BaseURL, config.AccessToken, httpOpts...)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// HTTPClient returns the gateway shared by every resource client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// BaseURL implements nationbuilder.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// People implements nationbuilder.Client.People.
func (c *Client) People() nationbuilder.PeopleClient {
	return c.people
}

// Tags implements nationbuilder.Client.Tags.
func (c *Client) Tags() nationbuilder.TagsClient {
	return c.tags
}

// Lists implements nationbuilder.Client.Lists.
func (c *Client) Lists() nationbuilder.ListsClient {
	return c.lists
}

// Contacts implements nationbuilder.Client.Contacts.
func (c *Client) Contacts() nationbuilder.ContactsClient {
	return c.contacts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.people = NewPeopleClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.lists = NewListsClient(c.httpClient)
	c.contacts = NewContactsClient(c.httpClient)
}
