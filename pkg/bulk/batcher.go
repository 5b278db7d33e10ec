package bulk

// Split partitions docs into batches whose combined encoded size stays
// within maxBytes. It is a pure fold over the input: order is preserved
// across and within batches, nothing is dropped or duplicated, and a
// document whose own encoded size exceeds maxBytes becomes a singleton
// batch rather than being truncated. Empty input yields no batches.
func Split(docs []Document, maxBytes int) ([][]Document, error) {
	if maxBytes <= 0 {
		return nil, ErrInvalidMaxSize
	}

	var (
		batches [][]Document
		current []Document
		running int
	)

	for _, doc := range docs {
		size, err := doc.encodedSize()
		if err != nil {
			return nil, err
		}

		if len(current) > 0 && running+size > maxBytes {
			batches = append(batches, current)
			current = nil
			running = 0
		}

		current = append(current, doc)
		running += size
	}

	if len(current) > 0 {
		batches = append(batches, current)
	}

	return batches, nil
}
