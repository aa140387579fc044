package core

import "errors"

var (
	// ErrInvalidQuery is returned when a search is requested without a query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidLanguage is returned for languages missing in the configuration.
	ErrInvalidLanguage = errors.New("unsupported language")
	// ErrInvalidSlug is returned when a slug contains forbidden characters.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrNotFound is returned when no published article exists.
	ErrNotFound = errors.New("article not found")
	// ErrStore wraps errors reported by the content store.
	ErrStore = errors.New("store failure")
)

// IsClientError reports errors caused by invalid input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrInvalidLanguage) ||
		errors.Is(err, ErrInvalidSlug)
}
