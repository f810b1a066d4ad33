package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/internal/http"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// TagsClient implements nationbuilder.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

func taggingsPath(personID int) string {
	return personPath(personID) + "/taggings"
}

// List implements nationbuilder.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, perPage int) ([]string, error) {
	tags, err := fetchAllPages[nationbuilder.Tag](ctx, c.httpClient, constants.APIPathTags, nil, perPage, "Get tags page")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}

	return names, nil
}

// PeopleByTag implements nationbuilder.TagsClient.PeopleByTag. Tags are case
// sensitive and are escaped as a single path segment on every page.
func (c *TagsClient) PeopleByTag(ctx context.Context, tag string, perPage int) ([]nationbuilder.Person, error) {
	path := constants.APIPathTags + "/" + url.PathEscape(tag) + "/people"

	people, err := fetchAllPages[nationbuilder.Person](ctx, c.httpClient, path, nil, perPage, "Get people by tag")
	if err != nil {
		return nil, fmt.Errorf("listing people tagged %q: %w", tag, err)
	}

	return people, nil
}

// PersonTags implements nationbuilder.TagsClient.PersonTags.
func (c *TagsClient) PersonTags(ctx context.Context, personID int) ([]nationbuilder.Tagging, error) {
	if personID <= 0 {
		return nil, constants.ErrInvalidPersonID
	}

	var envelope struct {
		Taggings []nationbuilder.Tagging `json:"taggings"`
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "GET",
		Path:   taggingsPath(personID),
		Action: fmt.Sprintf("Get Person %d Tags", personID),
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("getting tags of person %d: %w", personID, err)
	}

	if envelope.Taggings == nil {
		return []nationbuilder.Tagging{}, nil
	}

	return envelope.Taggings, nil
}

// Add implements nationbuilder.TagsClient.Add. Unknown tags are created by NationBuilder.
func (c *TagsClient) Add(ctx context.Context, personID int, tag string) (*nationbuilder.Tagging, error) {
	if personID <= 0 {
		return nil, constants.ErrInvalidPersonID
	}

	var envelope struct {
		Tagging *nationbuilder.Tagging `json:"tagging"`
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "PUT",
		Path:   taggingsPath(personID),
		Body:   map[string]map[string]string{"tagging": {"tag": tag}},
		Action: fmt.Sprintf("Tag %d with '%s'", personID, tag),
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("tagging person %d: %w", personID, err)
	}

	return envelope.Tagging, nil
}

// Remove implements nationbuilder.TagsClient.Remove.
func (c *TagsClient) Remove(ctx context.Context, personID int, tag string) error {
	if personID <= 0 {
		return constants.ErrInvalidPersonID
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "DELETE",
		Path:   taggingsPath(personID) + "/" + url.PathEscape(tag),
		Action: fmt.Sprintf("Remove Tag '%s' from id %d", tag, personID),
	}, nil)
	if err != nil {
		return fmt.Errorf("removing tag from person %d: %w", personID, err)
	}

	return nil
}
