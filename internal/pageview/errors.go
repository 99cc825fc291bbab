package pageview

import "errors"

// ErrMissingContent is raised (as a panic) when a data source returns no
// content for an index it reports as in range.
var ErrMissingContent = errors.New("data source returned no content for in-range page")
