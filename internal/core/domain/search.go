package domain

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxResults = 10
	// MaxSearchResults is the largest page the search endpoint accepts.
	MaxSearchResults = 50
)

var (
	ErrInvalidMaxResults = errors.New("max results out of range")
	ErrUploadFailed      = errors.New("upload failed")
)

type SearchOptions struct {
	MaxResults int
	// PublishedWithin is an ISO-8601 duration ("P7D") limiting results to recent uploads.
	PublishedWithin string
}

func (o SearchOptions) WithDefaults() SearchOptions {
	if o.MaxResults == 0 {
		o.MaxResults = DefaultMaxResults
	}

	return o
}

func (o SearchOptions) Validate() error {
	if o.MaxResults < 1 || o.MaxResults > MaxSearchResults {
		return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidMaxResults, o.MaxResults, MaxSearchResults)
	}

	return nil
}
