package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/internal/http"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// personEnvelope is the {"person": {...}} wrapper used by the People API.
type personEnvelope struct {
	Person *nationbuilder.Person `json:"person"`
}

type personRequestEnvelope struct {
	Person *nationbuilder.PersonRequest `json:"person"`
}

// PeopleClient implements nationbuilder.PeopleClient.
type PeopleClient struct {
	httpClient *http.Client
}

// NewPeopleClient creates a new people client.
func NewPeopleClient(httpClient *http.Client) *PeopleClient {
	return &PeopleClient{
		httpClient: httpClient,
	}
}

func personPath(id int) string {
	return constants.APIPathPeople + "/" + strconv.Itoa(id)
}

func (c *PeopleClient) fetchPerson(ctx context.Context, req *http.Request) (*nationbuilder.Person, error) {
	var envelope personEnvelope

	err := getJSON(ctx, c.httpClient, req, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Person == nil {
		return nil, fmt.Errorf("%s: %w", req.Action, constants.ErrEmptyResponse)
	}

	return envelope.Person, nil
}

// Get implements nationbuilder.PeopleClient.Get.
func (c *PeopleClient) Get(ctx context.Context, id int) (*nationbuilder.Person, error) {
	if id <= 0 {
		return nil, constants.ErrInvalidPersonID
	}

	person, err := c.fetchPerson(ctx, &http.Request{
		Method: "GET",
		Path:   personPath(id),
		Action: "Get Person",
	})
	if err != nil {
		return nil, fmt.Errorf("getting person %d: %w", id, err)
	}

	return person, nil
}

// Me implements nationbuilder.PeopleClient.Me.
func (c *PeopleClient) Me(ctx context.Context) (*nationbuilder.Person, error) {
	person, err := c.fetchPerson(ctx, &http.Request{
		Method: "GET",
		Path:   constants.APIPathPeople + "/me",
		Action: "Get Me",
	})
	if err != nil {
		return nil, fmt.Errorf("getting token owner: %w", err)
	}

	return person, nil
}

// Create implements nationbuilder.PeopleClient.Create.
func (c *PeopleClient) Create(ctx context.Context, request *nationbuilder.PersonRequest) (*nationbuilder.Person, error) {
	person, err := c.fetchPerson(ctx, &http.Request{
		Method: "POST",
		Path:   constants.APIPathPeople,
		Body:   personRequestEnvelope{Person: request},
		Action: "Create person",
	})
	if err != nil {
		return nil, fmt.Errorf("creating person: %w", err)
	}

	return person, nil
}

// Update implements nationbuilder.PeopleClient.Update.
func (c *PeopleClient) Update(ctx context.Context, id int, request *nationbuilder.PersonRequest) (*nationbuilder.Person, error) {
	if id <= 0 {
		return nil, constants.ErrInvalidPersonID
	}

	person, err := c.fetchPerson(ctx, &http.Request{
		Method: "PUT",
		Path:   personPath(id),
		Body:   personRequestEnvelope{Person: request},
		Action: fmt.Sprintf("Update person with id %d", id),
	})
	if err != nil {
		return nil, fmt.Errorf("updating person %d: %w", id, err)
	}

	return person, nil
}

// Delete implements nationbuilder.PeopleClient.Delete.
func (c *PeopleClient) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return constants.ErrInvalidPersonID
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "DELETE",
		Path:   personPath(id),
		Action: fmt.Sprintf("Delete user %d", id),
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting person %d: %w", id, err)
	}

	return nil
}

// Match implements nationbuilder.PeopleClient.Match. NationBuilder answers with an
// error unless exactly one person matches every criterion.
func (c *PeopleClient) Match(ctx context.Context, criteria map[string]string) (*nationbuilder.Person, error) {
	if len(criteria) == 0 {
		return nil, constants.ErrMatchCriteriaEmpty
	}

	person, err := c.fetchPerson(ctx, &http.Request{
		Method: "GET",
		Path:   constants.APIPathPeople + "/match",
		Query:  criteriaValues(criteria),
		Action: fmt.Sprintf("Match %v", criteria),
	})
	if err != nil {
		return nil, fmt.Errorf("matching person: %w", err)
	}

	return person, nil
}

// GetByEmail implements nationbuilder.PeopleClient.GetByEmail. It returns nil without
// an error when nobody has the address.
func (c *PeopleClient) GetByEmail(ctx context.Context, email string) (*nationbuilder.Person, error) {
	const action = "Get person by email"

	resp, err := c.httpClient.Send(ctx, &http.Request{
		Method: "GET",
		Path:   constants.APIPathPeople + "/match",
		Query:  url.Values{"email": []string{email}},
		Action: action,
	})
	if err != nil {
		return nil, fmt.Errorf("getting person by email: %w", err)
	}

	if resp.StatusCode == nethttp.StatusBadRequest {
		body, parseErr := nationbuilder.ParseErrorBody(resp.Body)
		if parseErr == nil && body.Code == constants.ErrorCodeNoMatches {
			return nil, nil
		}
	}

	err = c.httpClient.CheckResponse(resp, action, resp.URL)
	if err != nil {
		return nil, fmt.Errorf("getting person by email: %w", err)
	}

	var envelope personEnvelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing person: %w", err)
	}

	if envelope.Person == nil {
		return nil, fmt.Errorf("getting person by email: %w", constants.ErrEmptyResponse)
	}

	return envelope.Person, nil
}

// IDByEmail implements nationbuilder.PeopleClient.IDByEmail.
func (c *PeopleClient) IDByEmail(ctx context.Context, email string) (int, bool, error) {
	person, err := c.GetByEmail(ctx, email)
	if err != nil {
		return 0, false, err
	}

	if person == nil {
		return 0, false, nil
	}

	return person.ID, true, nil
}

// Register implements nationbuilder.PeopleClient.Register. NationBuilder sends the
// registration email to the person.
func (c *PeopleClient) Register(ctx context.Context, id int) error {
	if id <= 0 {
		return constants.ErrInvalidPersonID
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "GET",
		Path:   personPath(id) + "/register",
		Action: fmt.Sprintf("Do registration for ID %d", id),
	}, nil)
	if err != nil {
		return fmt.Errorf("registering person %d: %w", id, err)
	}

	return nil
}

// SetRecruiterID implements nationbuilder.PeopleClient.SetRecruiterID.
func (c *PeopleClient) SetRecruiterID(ctx context.Context, id, recruiterID int) (*nationbuilder.Person, error) {
	return c.Update(ctx, id, &nationbuilder.PersonRequest{RecruiterID: &recruiterID})
}

// SetVolunteer implements nationbuilder.PeopleClient.SetVolunteer.
func (c *PeopleClient) SetVolunteer(ctx context.Context, id int, volunteer bool) (*nationbuilder.Person, error) {
	return c.Update(ctx, id, &nationbuilder.PersonRequest{IsVolunteer: &volunteer})
}

// List implements nationbuilder.PeopleClient.List.
func (c *PeopleClient) List(ctx context.Context, params *nationbuilder.PageParams) (*nationbuilder.Page[nationbuilder.Person], error) {
	page, err := getPage[nationbuilder.Person](ctx, c.httpClient, constants.APIPathPeople, nil, params, "Get people page")
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}

	return page, nil
}

// ListAll implements nationbuilder.PeopleClient.ListAll. Records are abbreviated;
// use Get for the full record.
func (c *PeopleClient) ListAll(ctx context.Context, perPage int) ([]nationbuilder.Person, error) {
	people, err := fetchAllPages[nationbuilder.Person](ctx, c.httpClient, constants.APIPathPeople, nil, perPage, "Get people page")
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}

	return people, nil
}

// Search implements nationbuilder.PeopleClient.Search.
func (c *PeopleClient) Search(ctx context.Context, criteria map[string]string, perPage int) ([]nationbuilder.Person, error) {
	people, err := fetchAllPages[nationbuilder.Person](ctx, c.httpClient, constants.APIPathPeople+"/search",
		criteriaValues(criteria), perPage, fmt.Sprintf("Search %v", criteria))
	if err != nil {
		return nil, fmt.Errorf("searching people: %w", err)
	}

	return people, nil
}

// Nearby implements nationbuilder.PeopleClient.Nearby.
func (c *PeopleClient) Nearby(ctx context.Context, query *nationbuilder.NearbyQuery) ([]nationbuilder.Person, error) {
	if query == nil {
		return nil, constants.ErrInvalidLocation
	}

	distance := query.Distance
	if query.Kilometers {
		distance *= constants.MilesPerKilometer
	}

	values := url.Values{}
	values.Set("location", formatFloat(query.Latitude)+","+formatFloat(query.Longitude))
	values.Set("distance", formatFloat(distance))

	people, err := fetchAllPages[nationbuilder.Person](ctx, c.httpClient, constants.APIPathPeople+"/nearby",
		values, query.PerPage, "Get nearby")
	if err != nil {
		return nil, fmt.Errorf("finding nearby people: %w", err)
	}

	return people, nil
}

func criteriaValues(criteria map[string]string) url.Values {
	values := url.Values{}

	for key, value := range criteria {
		values.Set(key, value)
	}

	return values
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
