package binder

import "errors"

var (
	// ErrUnsupportedMediaType indicates a Content-Type the binder cannot decode.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseForm indicates malformed form data or a value that does not fit the target field.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrMissingContentType indicates the request has a body but no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
)
