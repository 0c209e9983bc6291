package ioc

import "errors"

var (
	// ErrEmptyType is returned when an empty indicator type is provided
	ErrEmptyType = errors.New("indicator type cannot be empty")
	// ErrUnsupportedType is returned when an unrecognized indicator type is provided
	ErrUnsupportedType = errors.New("unsupported indicator type")
	// ErrInvalidEmailFormat is returned when the email format is not valid
	ErrInvalidEmailFormat = errors.New("invalid email format")
	// ErrInvalidURLFormat is returned when the URL format is not valid
	ErrInvalidURLFormat = errors.New("invalid URL format")
	// ErrInvalidDomainFormat is returned when the domain format is not valid
	ErrInvalidDomainFormat = errors.New("invalid domain format")
)
