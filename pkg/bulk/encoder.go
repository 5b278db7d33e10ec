package bulk

import (
	"encoding/json"
	"fmt"
)

// actionLine is the fixed action metadata for an index operation. The body
// is empty: the target index is carried by the request URL and document IDs
// are assigned by the server.
const actionLine = `{"index":{}}` + "\n"

// Encode serializes a batch into the newline-delimited bulk wire format:
// one action line and one document line per document, in input order.
// An empty batch encodes to an empty body.
func Encode(batch []Document) ([]byte, error) {
	return AppendEncode(nil, batch)
}

// AppendEncode appends the encoded batch to dst and returns the extended
// slice, allowing callers to reuse buffers across batches.
func AppendEncode(dst []byte, batch []Document) ([]byte, error) {
	for _, doc := range batch {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
		}

		dst = append(dst, actionLine...)
		dst = append(dst, data...)
		dst = append(dst, '\n')
	}
	return dst, nil
}
