package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrInputRequired is returned when the indicator input is blank
	ErrInputRequired = errors.New("input required")
	// ErrInvalidCategories is returned when the category filter is malformed
	ErrInvalidCategories = errors.New("invalid category filter")
	// ErrNoteTooLong is returned when a share note exceeds the allowed length
	ErrNoteTooLong = errors.New("note exceeds 2000 characters")
	// ErrUnsupportedType is returned when an unrecognized indicator type is requested
	ErrUnsupportedType = errors.New("unsupported indicator type")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
	// ErrNotifierNotConfigured is returned when indicator sharing is not configured
	ErrNotifierNotConfigured = errors.New("indicator sharing not configured")
	// ErrShareFailed is returned when the indicator could not be delivered
	ErrShareFailed = errors.New("indicator sharing failed")
)
