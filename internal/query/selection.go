package query

// selection.go has the SelectionSet type - the ordered list of fields fetched
// at one nesting level.  The order is the author's order; it is what makes
// compiled output reproducible, so even "set-like" authoring conveniences are
// normalized to this ordered form.

import (
	"fmt"
)

// SelectionSet is an ordered sequence of field references.  No two entries
// may share an output key - aliasing exists precisely so the same underlying
// field can be fetched twice under distinct keys.
type SelectionSet []Field

// NewSelectionSet builds a selection set from fields in the given order,
// failing with ErrDuplicateFieldKey if two fields share an output key.
// Nested selections are checked when the set is attached to a query node.
func NewSelectionSet(fields ...Field) (SelectionSet, error) {
	set := make(SelectionSet, len(fields))
	copy(set, fields)
	if err := set.checkKeys(""); err != nil {
		return nil, err
	}
	return set, nil
}

// checkKeys verifies the output-key uniqueness invariant at this level only.
// The path prefix is used in error messages for nested sets.
func (ss SelectionSet) checkKeys(path string) error {
	if path == "" {
		path = "the selection"
	} else {
		path = "the selection of " + path
	}
	seen := make(map[string]struct{}, len(ss))
	for _, f := range ss {
		key := f.Key()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: output key %q appears twice in %s (alias one of them)",
				ErrDuplicateFieldKey, key, path)
		}
		seen[key] = struct{}{}
	}
	return nil
}
