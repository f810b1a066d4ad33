package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/internal/http"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// getJSON issues a checked request and decodes the body into out. out may be nil.
func getJSON(ctx context.Context, httpClient *http.Client, req *http.Request, out interface{}) error {
	resp, err := httpClient.Do(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing response of %s: %w", req.Action, err)
	}

	return nil
}

// getPage fetches one page of path. query is copied before the page params are added.
func getPage[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, params *nationbuilder.PageParams, action string) (*nationbuilder.Page[T], error) {
	if params == nil {
		params = nationbuilder.NewPageParams()
	}

	values := url.Values{}

	for key, list := range query {
		values[key] = append([]string(nil), list...)
	}

	for key, list := range params.ToValues() {
		values[key] = list
	}

	var page nationbuilder.Page[T]

	err := getJSON(ctx, httpClient, &http.Request{
		Method: "GET",
		Path:   path,
		Query:  values,
		Action: action,
	}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// fetchAllPages fetches page 1 and then every page up to total_pages, in order.
func fetchAllPages[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, perPage int, action string) ([]T, error) {
	params := nationbuilder.NewPageParams().WithPerPage(perPage)

	first, err := getPage[T](ctx, httpClient, path, query, params, action)
	if err != nil {
		return nil, err
	}

	results := append([]T{}, first.Results...)

	for page := constants.FirstPage + 1; page <= first.TotalPages; page++ {
		next, err := getPage[T](ctx, httpClient, path, query, params.WithPage(page), action)
		if err != nil {
			return nil, err
		}

		results = append(results, next.Results...)
	}

	return results, nil
}
