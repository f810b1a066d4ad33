package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/internal/http"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// ListsClient implements nationbuilder.ListsClient.
type ListsClient struct {
	httpClient *http.Client
}

// NewListsClient creates a new lists client.
func NewListsClient(httpClient *http.Client) *ListsClient {
	return &ListsClient{
		httpClient: httpClient,
	}
}

// List implements nationbuilder.ListsClient.List.
func (c *ListsClient) List(ctx context.Context, perPage int) ([]nationbuilder.List, error) {
	lists, err := fetchAllPages[nationbuilder.List](ctx, c.httpClient, constants.APIPathLists, nil, perPage, "Get lists page")
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	return lists, nil
}

// People implements nationbuilder.ListsClient.People.
func (c *ListsClient) People(ctx context.Context, listID int, perPage int) ([]nationbuilder.Person, error) {
	if listID <= 0 {
		return nil, constants.ErrInvalidListID
	}

	path := constants.APIPathLists + "/" + strconv.Itoa(listID) + "/people"

	people, err := fetchAllPages[nationbuilder.Person](ctx, c.httpClient, path, nil, perPage,
		fmt.Sprintf("Get people of list %d", listID))
	if err != nil {
		return nil, fmt.Errorf("listing people of list %d: %w", listID, err)
	}

	return people, nil
}
