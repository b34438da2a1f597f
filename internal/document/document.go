package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Document is one decoded metadata document.
type Document map[string]any

// Field returns the value at a dotted path such as "product.name" or
// "lineage.source_datasets.0". Numeric segments index into lists. The
// boolean reports whether the path exists; a present null value is
// reported as (nil, true).
func (d Document) Field(dotted string) (any, bool) {
	if dotted == "" {
		return nil, false
	}

	var cur any = map[string]any(d)
	for _, key := range strings.Split(dotted, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// ID parses the document's top-level "id" field as a UUID.
func (d Document) ID() (uuid.UUID, error) {
	v, ok := d["id"]
	if !ok || v == nil {
		return uuid.Nil, ErrNoID
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("id field is a %T, not a string", v)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
