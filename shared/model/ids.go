package model

import (
	"database/sql/driver"
	"fmt"
	"slices"

	"github.com/lib/pq"
)

// IDs is an ordered set of document identifiers stored on a document as a reference list.
// It maps to a text[] column in Postgres and to an array in document stores.
type IDs []string

// Unique returns a copy with duplicates removed, keeping the first occurrence of each id.
func (ids IDs) Unique() IDs {
	seen := make(map[string]struct{}, len(ids))
	result := make(IDs, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

func (ids IDs) Contains(id string) bool {
	return slices.Contains(ids, id)
}

// With returns ids with id appended, or ids unchanged if it is already present.
func (ids IDs) With(id string) (IDs, bool) {
	if ids.Contains(id) {
		return ids, false
	}

	return append(slices.Clone(ids), id), true
}

// Without returns ids with the first occurrence of id removed.
func (ids IDs) Without(id string) (IDs, bool) {
	idx := slices.Index(ids, id)
	if idx < 0 {
		return ids, false
	}

	return slices.Delete(slices.Clone(ids), idx, idx+1), true
}

// Value implements driver.Valuer.
func (ids IDs) Value() (driver.Value, error) {
	if ids == nil {
		ids = IDs{}
	}

	value, err := pq.StringArray(ids).Value()
	if err != nil {
		return nil, fmt.Errorf("failed to encode ids: %w", err)
	}

	return value, nil
}

// Scan implements sql.Scanner.
func (ids *IDs) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("failed to decode ids: %w", err)
	}

	*ids = IDs(arr)

	return nil
}
