package classifier

import "errors"

// ErrServiceFailure indicates the external classification call errored or
// timed out. The document is surfaced as status=error and retry is left to
// the caller; this package never retries internally.
var ErrServiceFailure = errors.New("classification service failure")
