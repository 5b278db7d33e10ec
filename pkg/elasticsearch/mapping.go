package elasticsearch

import (
	"encoding/json"
	"fmt"
)

// Mapping declares index fields and their types, e.g.
// {"title": "text", "count": "integer", "created_at": "date"}.
type Mapping map[string]string

// createBody builds the index-creation request body:
// {"mappings":{"properties":{field:{"type":declaredType}, ...}}}
func (m Mapping) createBody() ([]byte, error) {
	properties := make(map[string]any, len(m))
	for field, fieldType := range m {
		properties[field] = map[string]string{"type": fieldType}
	}

	body, err := json.Marshal(map[string]any{
		"mappings": map[string]any{
			"properties": properties,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}
	return body, nil
}
