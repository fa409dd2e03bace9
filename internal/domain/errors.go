package domain

import "errors"

var (
	// ErrTransport reports that a request to the statistics API could not be completed.
	ErrTransport = errors.New("transport failure")

	// ErrParse reports a response body that is not a well-formed document of the expected shape.
	ErrParse = errors.New("malformed response")

	// ErrData reports a measure value that cannot be parsed as a number.
	ErrData = errors.New("invalid measure value")

	// ErrNoDataForYear reports a year in which every observation is missing.
	ErrNoDataForYear = errors.New("no data for year")

	// ErrNotAvailable reports that the dataset endpoint answered with a non-200 status.
	ErrNotAvailable = errors.New("dataset not available")
)
