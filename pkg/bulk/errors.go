package bulk

import "errors"

var (
	ErrMarshalFailed  = errors.New("failed to marshal document")
	ErrInvalidMaxSize = errors.New("max batch size must be positive")
	ErrSubmitFailed   = errors.New("failed to submit bulk batch")
)
