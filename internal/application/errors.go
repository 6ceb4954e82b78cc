package application

import (
	"errors"

	"github.com/oksasatya/geoauth/internal/domain/entity"
)

// Sentinel errors returned by the services. Handlers map these onto HTTP
// status codes; anything else is treated as a dependency failure and
// surfaced as an opaque 500.
var (
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrWeakPassword         = errors.New("weak password")
	ErrPasswordRequired     = errors.New("password required for new user")
	ErrCodeExpired          = errors.New("code expired or never sent")
	ErrCodeMismatch         = errors.New("code mismatch, new code sent")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrInvalidCredentials   = errors.New("old password incorrect")
	ErrNoPasswordSet        = errors.New("account has no password")
	ErrUserNotFound         = errors.New("user not found")

	ErrCountryExists   = errors.New("country already exists")
	ErrCountryNotFound = errors.New("country not found")
	ErrCityNotFound    = errors.New("city not found")
)

// UnknownCountryError is returned when a city write references a country id
// that does not exist. Available carries the valid countries as a
// remediation hint for the caller.
type UnknownCountryError struct {
	Available []entity.CountryOption
}

func (e *UnknownCountryError) Error() string { return "unknown country id" }
