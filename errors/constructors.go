package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *KakapoError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error with no underlying cause
func ConfigInvalid(reason string) *KakapoError {
	return New(ErrCodeConfigInvalid, reason)
}

// CatalogLoad wraps a failure of a single catalog source
func CatalogLoad(source string, err error) *KakapoError {
	return Wrap(err, ErrCodeCatalogLoad, fmt.Sprintf("failed to load catalog source '%s'", source)).
		WithDetail("source", source)
}

// UnknownKind creates an error for an unrecognized entity kind name
func UnknownKind(name string) *KakapoError {
	return New(ErrCodeUnknownKind, fmt.Sprintf("unknown entity kind '%s'", name)).
		WithDetail("kind", name)
}

// FileExists creates an error for a file that would be overwritten
func FileExists(path string) *KakapoError {
	return New(ErrCodeFileExists, fmt.Sprintf("file already exists: %s", path)).
		WithDetail("path", path)
}

// CatalogSource creates an error for an unreadable catalog source or entry
func CatalogSource(location string, err error) *KakapoError {
	return Wrap(err, ErrCodeCatalogSource, fmt.Sprintf("cannot read catalog entry: %s", location)).
		WithDetail("location", location)
}
