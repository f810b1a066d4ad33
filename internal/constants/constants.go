package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Client identification.
const (
	// UserAgent is the fixed client identifier sent with every request.
	UserAgent = "nbapi-go/0.2"

	// ContentTypeJSON is used for both Content-Type and Accept.
	ContentTypeJSON = "application/json"
)

// NationBuilder endpoints.
const (
	// BaseURLTemplate builds the API root from a nation slug.
	BaseURLTemplate = "https://%s.nationbuilder.com/api/v1"

	// APIPathPeople is the people collection.
	APIPathPeople = "/people"

	// APIPathTags is the tag index.
	APIPathTags = "/tags"

	// APIPathLists is the list index.
	APIPathLists = "/lists"

	// APIPathContactTypes is the contact types settings collection.
	APIPathContactTypes = "/settings/contact_types"

	// APIPathContactMethods is the contact methods settings collection.
	APIPathContactMethods = "/settings/contact_methods"

	// APIPathContactStatuses is the contact statuses settings collection.
	APIPathContactStatuses = "/settings/contact_statuses"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the timeout the CLI applies to a single request.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTP status boundaries for success classification.
const (
	// StatusSuccessMin is the lowest status treated as success.
	StatusSuccessMin = 200

	// StatusSuccessMax is the highest status treated as success.
	StatusSuccessMax = 299
)

// Pagination limits.
const (
	// MaxPageSize is the largest per_page NationBuilder accepts.
	MaxPageSize = 100

	// DefaultPageSize is used when per_page is unset or out of range.
	DefaultPageSize = 100

	// FirstPage is the index of the first page.
	FirstPage = 1
)

// Unit conversion.
const (
	// MilesPerKilometer converts kilometre distances for the nearby endpoint.
	MilesPerKilometer = 0.621371
)

// Argument counts.
const (
	// MinimumArgumentCount is used by commands taking a key and a value.
	MinimumArgumentCount = 2
)

// UI and display constants.
const (
	// NotAvailable is displayed for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"

	// UnknownTarget is logged when neither URL nor action is known.
	UnknownTarget = "Unknown"
)

// Boolean string constants.
const (
	// BooleanTrue represents a true boolean value as string.
	BooleanTrue = "true"
)

// Format constants.
const (
	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatTable represents table output format.
	FormatTable = "table"

	// JSONIndentSize is the indent used for JSON and YAML output.
	JSONIndentSize = 2
)

// NationBuilder error codes carried in response bodies.
const (
	// ErrorCodeNoMatches is returned by the match endpoint when nobody matches.
	ErrorCodeNoMatches = "no_matches"
)
