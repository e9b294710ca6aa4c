package utils

import (
	"fmt"
	"strconv"
)

// IsIDValid reports whether id can address a stored row. Identifiers are
// generated starting at 1, so zero and negatives never match anything.
func IsIDValid(id int64) bool {
	return id > 0
}

// ParseID parses a path or query parameter into a usable identifier.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	if !IsIDValid(id) {
		return 0, fmt.Errorf("invalid id %d", id)
	}
	return uint(id), nil
}
