package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

func TestListsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(pagedHandler(t, "/lists", [][]nationbuilder.List{
		{{ID: 1, Name: "Donors", Slug: "donors", Count: 10}},
		{{ID: 2, Name: "Volunteers", Slug: "volunteers", Count: 4}},
	}, nil))
	defer server.Close()

	c, _ := NewTestClient(t, server.URL)

	lists, err := c.Lists().List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "volunteers", lists[1].Slug)
}

func TestListsClient_People(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(pagedHandler(t, "/lists/3/people", [][]nationbuilder.Person{
		{{ID: 1}, {ID: 2}},
	}, nil))
	defer server.Close()

	c, _ := NewTestClient(t, server.URL)

	people, err := c.Lists().People(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Len(t, people, 2)

	_, err = c.Lists().People(context.Background(), 0, 0)
	require.ErrorIs(t, err, constants.ErrInvalidListID)
}

func TestListsClient_EmptyIndex(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(pagedHandler(t, "/lists", [][]nationbuilder.List{{}}, nil))
	defer server.Close()

	c, _ := NewTestClient(t, server.URL)

	lists, err := c.Lists().List(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, lists)
}
