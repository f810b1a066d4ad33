package nationbuilder

import (
	"context"
	"time"
)

// PeopleClient defines operations on the People API.
type PeopleClient interface {
	Get(ctx context.Context, id int) (*Person, error)
	Me(ctx context.Context) (*Person, error)
	Create(ctx context.Context, request *PersonRequest) (*Person, error)
	Update(ctx context.Context, id int, request *PersonRequest) (*Person, error)
	Delete(ctx context.Context, id int) error
	Match(ctx context.Context, criteria map[string]string) (*Person, error)
	GetByEmail(ctx context.Context, email string) (*Person, error)
	IDByEmail(ctx context.Context, email string) (int, bool, error)
	Register(ctx context.Context, id int) error
	SetRecruiterID(ctx context.Context, id, recruiterID int) (*Person, error)
	SetVolunteer(ctx context.Context, id int, volunteer bool) (*Person, error)
	List(ctx context.Context, params *PageParams) (*Page[Person], error)
	ListAll(ctx context.Context, perPage int) ([]Person, error)
	Search(ctx context.Context, criteria map[string]string, perPage int) ([]Person, error)
	Nearby(ctx context.Context, query *NearbyQuery) ([]Person, error)
}

// TagsClient defines operations on the People Tags API.
type TagsClient interface {
	List(ctx context.Context, perPage int) ([]string, error)
	PeopleByTag(ctx context.Context, tag string, perPage int) ([]Person, error)
	PersonTags(ctx context.Context, personID int) ([]Tagging, error)
	Add(ctx context.Context, personID int, tag string) (*Tagging, error)
	Remove(ctx context.Context, personID int, tag string) error
}

// ListsClient defines operations on the Lists API.
type ListsClient interface {
	List(ctx context.Context, perPage int) ([]List, error)
	People(ctx context.Context, listID int, perPage int) ([]Person, error)
}

// ContactsClient defines operations on the Contacts API.
type ContactsClient interface {
	Log(ctx context.Context, personID int, request *ContactRequest) (*Contact, error)
	ListForPerson(ctx context.Context, personID int, perPage int) ([]Contact, error)
	ListTypes(ctx context.Context) ([]ContactType, error)
	CreateType(ctx context.Context, name string) (*ContactType, error)
	UpdateType(ctx context.Context, id int, name string) (*ContactType, error)
	DeleteType(ctx context.Context, id int) error
	ListMethods(ctx context.Context) ([]ContactCode, error)
	ListStatuses(ctx context.Context) ([]ContactCode, error)
}

// Client provides access to every resource client of a nation.
type Client interface {
	People() PeopleClient
	Tags() TagsClient
	Lists() ListsClient
	Contacts() ContactsClient
	// BaseURL returns the API root every request is resolved against.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a nationbuilder.Client.
//
// # Endpoint
//
// Nation is the slug in "<slug>.nationbuilder.com". The API root is derived as
// "https://<slug>.nationbuilder.com/api/v1". BaseURL overrides the derived root and is
// meant for proxies and tests.
//
// # Authentication
//
// AccessToken is a long-lived OAuth access token or test token issued by the nation.
// It is attached as a Bearer credential by the session transport, not per request.
// It is required; construction fails without it.
//
// # TLS
//
// VerifyTLS enables certificate validation. It is off by default because
// NationBuilder has a history of certificate misconfiguration.
type Config struct {
	// Nation: the nation slug (e.g. "acme" in acme.nationbuilder.com).
	Nation string
	// BaseURL: optional API root overriding the one derived from Nation.
	BaseURL string
	// AccessToken: the access token or test token from NationBuilder.
	AccessToken string

	// Optional configurations
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// VerifyTLS: validate the server certificate chain.
	VerifyTLS bool
	// HTTPTimeout: optional per-request timeout. Zero leaves the transport defaults.
	HTTPTimeout time.Duration
	// Debug: enables verbose HTTP request/response logging.
	Debug bool
	// Logger: optional structured logger. DefaultLogger is used when nil.
	Logger Logger
}
