package model

import "errors"

var (
	// ErrMissingConfig marks a required setting that was not supplied.
	ErrMissingConfig = errors.New("missing required configuration")
	// ErrEmptyResult is returned by providers that answered without usable items.
	ErrEmptyResult = errors.New("provider returned no articles")
	// ErrUpstreamStatus wraps non-success answers from remote APIs.
	ErrUpstreamStatus = errors.New("upstream returned an error status")
)
