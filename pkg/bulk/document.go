package bulk

import (
	"encoding/json"
	"fmt"
)

// Document is a single record to be indexed: field name to field value.
// Values must be JSON-serializable.
type Document map[string]any

// encodedSize returns the JSON-encoded byte length of the document.
// encoding/json writes map keys in sorted order, so the measurement is
// deterministic and matches what the encoder later produces.
func (d Document) encodedSize() (int, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}
	return len(data), nil
}
