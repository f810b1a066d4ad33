package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/internal/http"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

type contactTypeEnvelope struct {
	ContactType *nationbuilder.ContactType `json:"contact_type"`
}

// ContactsClient implements nationbuilder.ContactsClient.
type ContactsClient struct {
	httpClient *http.Client
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(httpClient *http.Client) *ContactsClient {
	return &ContactsClient{
		httpClient: httpClient,
	}
}

func contactTypePath(id int) string {
	return constants.APIPathContactTypes + "/" + strconv.Itoa(id)
}

// Log implements nationbuilder.ContactsClient.Log.
func (c *ContactsClient) Log(ctx context.Context, personID int, request *nationbuilder.ContactRequest) (*nationbuilder.Contact, error) {
	if personID <= 0 {
		return nil, constants.ErrInvalidPersonID
	}

	var envelope struct {
		Contact *nationbuilder.Contact `json:"contact"`
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "POST",
		Path:   personPath(personID) + "/contacts",
		Body:   map[string]*nationbuilder.ContactRequest{"contact": request},
		Action: "Log Contact",
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("logging contact for person %d: %w", personID, err)
	}

	if envelope.Contact == nil {
		return nil, fmt.Errorf("logging contact for person %d: %w", personID, constants.ErrEmptyResponse)
	}

	return envelope.Contact, nil
}

// ListForPerson implements nationbuilder.ContactsClient.ListForPerson.
func (c *ContactsClient) ListForPerson(ctx context.Context, personID int, perPage int) ([]nationbuilder.Contact, error) {
	if personID <= 0 {
		return nil, constants.ErrInvalidPersonID
	}

	contacts, err := fetchAllPages[nationbuilder.Contact](ctx, c.httpClient, personPath(personID)+"/contacts", nil, perPage,
		"Get Person Contact page")
	if err != nil {
		return nil, fmt.Errorf("listing contacts of person %d: %w", personID, err)
	}

	return contacts, nil
}

// ListTypes implements nationbuilder.ContactsClient.ListTypes.
func (c *ContactsClient) ListTypes(ctx context.Context) ([]nationbuilder.ContactType, error) {
	types, err := fetchAllPages[nationbuilder.ContactType](ctx, c.httpClient, constants.APIPathContactTypes, nil,
		constants.DefaultPageSize, "List Contact Types")
	if err != nil {
		return nil, fmt.Errorf("listing contact types: %w", err)
	}

	return types, nil
}

// CreateType implements nationbuilder.ContactsClient.CreateType.
func (c *ContactsClient) CreateType(ctx context.Context, name string) (*nationbuilder.ContactType, error) {
	var envelope contactTypeEnvelope

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "POST",
		Path:   constants.APIPathContactTypes,
		Body:   map[string]map[string]string{"contact_type": {"name": name}},
		Action: "Create Contact Type",
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("creating contact type: %w", err)
	}

	if envelope.ContactType == nil {
		return nil, fmt.Errorf("creating contact type: %w", constants.ErrEmptyResponse)
	}

	return envelope.ContactType, nil
}

// UpdateType implements nationbuilder.ContactsClient.UpdateType.
func (c *ContactsClient) UpdateType(ctx context.Context, id int, name string) (*nationbuilder.ContactType, error) {
	if id <= 0 {
		return nil, constants.ErrInvalidTypeID
	}

	var envelope contactTypeEnvelope

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "PUT",
		Path:   contactTypePath(id),
		Body:   map[string]map[string]string{"contact_type": {"name": name}},
		Action: fmt.Sprintf("Update Contact Type %d", id),
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("updating contact type %d: %w", id, err)
	}

	if envelope.ContactType == nil {
		return nil, fmt.Errorf("updating contact type %d: %w", id, constants.ErrEmptyResponse)
	}

	return envelope.ContactType, nil
}

// DeleteType implements nationbuilder.ContactsClient.DeleteType.
func (c *ContactsClient) DeleteType(ctx context.Context, id int) error {
	if id <= 0 {
		return constants.ErrInvalidTypeID
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "DELETE",
		Path:   contactTypePath(id),
		Action: fmt.Sprintf("Delete Contact Type %d", id),
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting contact type %d: %w", id, err)
	}

	return nil
}

// ListMethods implements nationbuilder.ContactsClient.ListMethods.
func (c *ContactsClient) ListMethods(ctx context.Context) ([]nationbuilder.ContactCode, error) {
	codes, err := c.listCodes(ctx, constants.APIPathContactMethods, "List Contact Methods")
	if err != nil {
		return nil, fmt.Errorf("listing contact methods: %w", err)
	}

	return codes, nil
}

// ListStatuses implements nationbuilder.ContactsClient.ListStatuses.
func (c *ContactsClient) ListStatuses(ctx context.Context) ([]nationbuilder.ContactCode, error) {
	codes, err := c.listCodes(ctx, constants.APIPathContactStatuses, "List Contact Statuses")
	if err != nil {
		return nil, fmt.Errorf("listing contact statuses: %w", err)
	}

	return codes, nil
}

func (c *ContactsClient) listCodes(ctx context.Context, path, action string) ([]nationbuilder.ContactCode, error) {
	var envelope struct {
		Results []nationbuilder.ContactCode `json:"results"`
	}

	err := getJSON(ctx, c.httpClient, &http.Request{
		Method: "GET",
		Path:   path,
		Action: action,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	return envelope.Results, nil
}
