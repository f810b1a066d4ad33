package nationbuilder

import (
	"time"
)

// Page represents a paginated NationBuilder response.
type Page[T any] struct {
	Page       int `json:"page"        yaml:"page"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
	PerPage    int `json:"per_page"    yaml:"per_page"`
	Total      int `json:"total"       yaml:"total"`
	Results    []T `json:"results"     yaml:"results"`
}

// HasNext reports whether more pages follow this one.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Address represents a postal address on a person record.
type Address struct {
	Address1    string `json:"address1,omitempty"     yaml:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"     yaml:"address2,omitempty"`
	City        string `json:"city,omitempty"         yaml:"city,omitempty"`
	State       string `json:"state,omitempty"        yaml:"state,omitempty"`
	Zip         string `json:"zip,omitempty"          yaml:"zip,omitempty"`
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	Lat         string `json:"lat,omitempty"          yaml:"lat,omitempty"`
	Lng         string `json:"lng,omitempty"          yaml:"lng,omitempty"`
}

// Person represents a person record. List and search endpoints return abbreviated
// records; Get returns the full one.
type Person struct {
	ID                int        `json:"id"                           yaml:"id"`
	FirstName         string     `json:"first_name,omitempty"         yaml:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"          yaml:"last_name,omitempty"`
	Email             string     `json:"email,omitempty"              yaml:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"              yaml:"phone,omitempty"`
	Mobile            string     `json:"mobile,omitempty"             yaml:"mobile,omitempty"`
	Sex               string     `json:"sex,omitempty"                yaml:"sex,omitempty"`
	Employer          string     `json:"employer,omitempty"           yaml:"employer,omitempty"`
	Party             string     `json:"party,omitempty"              yaml:"party,omitempty"`
	IsVolunteer       bool       `json:"is_volunteer"                 yaml:"is_volunteer"`
	RecruiterID       *int       `json:"recruiter_id,omitempty"       yaml:"recruiter_id,omitempty"`
	Tags              []string   `json:"tags,omitempty"               yaml:"tags,omitempty"`
	RegisteredAddress *Address   `json:"registered_address,omitempty" yaml:"registered_address,omitempty"`
	PrimaryAddress    *Address   `json:"primary_address,omitempty"    yaml:"primary_address,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"         yaml:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"         yaml:"updated_at,omitempty"`
}

// FullName joins first and last name.
func (p *Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// PersonRequest carries the writable fields of a person. Nil fields are left unchanged.
type PersonRequest struct {
	FirstName         *string  `json:"first_name,omitempty"         yaml:"first_name,omitempty"`
	LastName          *string  `json:"last_name,omitempty"          yaml:"last_name,omitempty"`
	Email             *string  `json:"email,omitempty"              yaml:"email,omitempty"`
	Phone             *string  `json:"phone,omitempty"              yaml:"phone,omitempty"`
	Mobile            *string  `json:"mobile,omitempty"             yaml:"mobile,omitempty"`
	Sex               *string  `json:"sex,omitempty"                yaml:"sex,omitempty"`
	Employer          *string  `json:"employer,omitempty"           yaml:"employer,omitempty"`
	Party             *string  `json:"party,omitempty"              yaml:"party,omitempty"`
	IsVolunteer       *bool    `json:"is_volunteer,omitempty"       yaml:"is_volunteer,omitempty"`
	RecruiterID       *int     `json:"recruiter_id,omitempty"       yaml:"recruiter_id,omitempty"`
	RegisteredAddress *Address `json:"registered_address,omitempty" yaml:"registered_address,omitempty"`
}

// NearbyQuery describes a radius search around a coordinate.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	// Distance is in miles unless Kilometers is set.
	Distance   float64
	Kilometers bool
	PerPage    int
}

// Tagging links a tag to a person.
type Tagging struct {
	PersonID  int        `json:"person_id"            yaml:"person_id"`
	Tag       string     `json:"tag"                  yaml:"tag"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Tag represents an entry of the tag index.
type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// List represents a saved list of people.
type List struct {
	ID       int    `json:"id"        yaml:"id"`
	Name     string `json:"name"      yaml:"name"`
	Slug     string `json:"slug"      yaml:"slug"`
	AuthorID int    `json:"author_id" yaml:"author_id"`
	Count    int    `json:"count"     yaml:"count"`
}

// Contact represents a logged contact with a person.
type Contact struct {
	RecipientID   int        `json:"recipient_id"             yaml:"recipient_id"`
	SenderID      int        `json:"sender_id"                yaml:"sender_id"`
	BroadcasterID *int       `json:"broadcaster_id,omitempty" yaml:"broadcaster_id,omitempty"`
	Status        string     `json:"status,omitempty"         yaml:"status,omitempty"`
	Method        string     `json:"method"                   yaml:"method"`
	TypeID        int        `json:"type_id"                  yaml:"type_id"`
	Note          string     `json:"note,omitempty"           yaml:"note,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"     yaml:"created_at,omitempty"`
}

// ContactRequest logs a contact. SenderID, Method and TypeID are required.
type ContactRequest struct {
	SenderID      int    `json:"sender_id"                yaml:"sender_id"`
	Method        string `json:"method"                   yaml:"method"`
	TypeID        int    `json:"type_id"                  yaml:"type_id"`
	Status        string `json:"status,omitempty"         yaml:"status,omitempty"`
	BroadcasterID *int   `json:"broadcaster_id,omitempty" yaml:"broadcaster_id,omitempty"`
	Note          string `json:"note,omitempty"           yaml:"note,omitempty"`
}

// ContactType is a nation-defined contact type.
type ContactType struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ContactCode is a contact method or status as listed by the settings endpoints.
type ContactCode struct {
	Name    string `json:"name"     yaml:"name"`
	APIName string `json:"api_name" yaml:"api_name"`
}
