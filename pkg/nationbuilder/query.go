package nationbuilder

import (
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/nbapi/internal/constants"
)

// PageParams selects one page of a paginated endpoint.
type PageParams struct {
	Page    int
	PerPage int
}

// NewPageParams returns params for the first page at the default page size.
func NewPageParams() *PageParams {
	return &PageParams{
		Page:    constants.FirstPage,
		PerPage: constants.DefaultPageSize,
	}
}

// WithPage sets the page number.
func (p *PageParams) WithPage(page int) *PageParams {
	p.Page = page

	return p
}

// WithPerPage sets the page size.
func (p *PageParams) WithPerPage(perPage int) *PageParams {
	p.PerPage = perPage

	return p
}

// ToValues encodes the params. Out-of-range values are normalised: pages start at 1
// and per_page is kept within (0, 100].
func (p *PageParams) ToValues() url.Values {
	values := url.Values{}

	page := p.Page
	if page < constants.FirstPage {
		page = constants.FirstPage
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(NormalizePerPage(p.PerPage)))

	return values
}

// NormalizePerPage maps values outside (0, 100] to the default page size.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 || perPage > constants.MaxPageSize {
		return constants.DefaultPageSize
	}

	return perPage
}
