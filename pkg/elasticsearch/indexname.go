package elasticsearch

import "strings"

const maxIndexNameBytes = 255

// invalidIndexNameChars are the characters the server rejects anywhere in
// an index name.
const invalidIndexNameChars = `\/*?"<>| ,:#`

// IsValidName reports whether name is acceptable as an index name: not "."
// or "..", at most 255 bytes, not starting with '-', '_', '+' or '.', and
// free of characters the server rejects. The check is pure and
// case-sensitive; callers are expected to lower-case names beforehand.
func IsValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if len(name) > maxIndexNameBytes {
		return false
	}
	switch name[0] {
	case '-', '_', '+', '.':
		return false
	}
	return !strings.ContainsAny(name, invalidIndexNameChars)
}
