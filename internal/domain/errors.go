package domain

import "errors"

var (
	// ErrMatcherParse is returned when the matching service's response could
	// not be interpreted as the expected structured list. Not retried: the
	// whole quote attempt fails with a user-actionable error.
	ErrMatcherParse = errors.New("could not interpret matching results")

	// ErrMatcherUnavailable is returned after the retry budget for transient
	// matcher failures (rate limiting, upstream overload) is exhausted.
	ErrMatcherUnavailable = errors.New("matching service unavailable")

	// ErrUnsupportedFormat is returned for uploads in a format the pipeline
	// cannot read.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyList is returned when extraction produced no usable items.
	ErrEmptyList = errors.New("no usable items found in list")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogEmpty is returned when the catalog source yields no valid products.
	ErrCatalogEmpty = errors.New("catalog contains no valid products")
)
