package constants

import "errors"

// Configuration errors.
var (
	ErrNoNationConfigured = errors.New("no nation configured, use 'nbapi login' or --nation")
	ErrNoTokenConfigured  = errors.New("no access token configured, use 'nbapi login' or --token")
	ErrEmptyToken         = errors.New("access token cannot be empty")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidPersonID    = errors.New("invalid person ID")
	ErrInvalidListID      = errors.New("invalid list ID")
	ErrInvalidTypeID      = errors.New("invalid contact type ID")
	ErrMatchCriteriaEmpty = errors.New("at least one match criterion is required")
	ErrInvalidCriterion   = errors.New("invalid criterion, expected KEY=VALUE")
	ErrInvalidLocation    = errors.New("invalid location, expected LAT,LNG")
	ErrNoPersonMatched    = errors.New("no person matched")
)

// Response errors.
var (
	ErrEmptyResponse = errors.New("response has no record")
)
