package nationbuilder_test

import (
	"net/url"
	"testing"

	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
	"github.com/stretchr/testify/assert"
)

func TestPageParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *nationbuilder.PageParams
		expected url.Values
	}{
		{
			name:   "defaults",
			params: nationbuilder.NewPageParams(),
			expected: url.Values{
				"page":     []string{"1"},
				"per_page": []string{"100"},
			},
		},
		{
			name:   "explicit page",
			params: nationbuilder.NewPageParams().WithPage(3).WithPerPage(25),
			expected: url.Values{
				"page":     []string{"3"},
				"per_page": []string{"25"},
			},
		},
		{
			name:   "zero values normalised",
			params: &nationbuilder.PageParams{},
			expected: url.Values{
				"page":     []string{"1"},
				"per_page": []string{"100"},
			},
		},
		{
			name:   "per page above limit",
			params: &nationbuilder.PageParams{Page: 2, PerPage: 500},
			expected: url.Values{
				"page":     []string{"2"},
				"per_page": []string{"100"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.params.ToValues())
		})
	}
}

func TestNormalizePerPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, nationbuilder.NormalizePerPage(0))
	assert.Equal(t, 100, nationbuilder.NormalizePerPage(-5))
	assert.Equal(t, 1, nationbuilder.NormalizePerPage(1))
	assert.Equal(t, 100, nationbuilder.NormalizePerPage(100))
	assert.Equal(t, 100, nationbuilder.NormalizePerPage(101))
}

func TestPage_HasNext(t *testing.T) {
	t.Parallel()

	assert.True(t, (&nationbuilder.Page[nationbuilder.Person]{Page: 1, TotalPages: 2}).HasNext())
	assert.False(t, (&nationbuilder.Page[nationbuilder.Person]{Page: 2, TotalPages: 2}).HasNext())
	assert.False(t, (&nationbuilder.Page[nationbuilder.Person]{}).HasNext())
}

func TestPerson_FullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bob Smith", (&nationbuilder.Person{FirstName: "Bob", LastName: "Smith"}).FullName())
	assert.Equal(t, "Bob", (&nationbuilder.Person{FirstName: "Bob"}).FullName())
	assert.Equal(t, "Smith", (&nationbuilder.Person{LastName: "Smith"}).FullName())
}
