package store

import (
	"encoding/json"
	"fmt"
	"reflect"

	"sealstore/internal/domain"
)

// applyFilter keeps the items whose JSON form matches filter.Where, then
// applies Offset and Limit. Negative values are treated as zero.
func applyFilter[T any](items []T, filter domain.ReadFilter) ([]T, error) {
	where, err := toDocument(filter.Where)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if len(where) > 0 {
			doc, err := toDocument(item)
			if err != nil {
				return nil, fmt.Errorf("encode record: %w", err)
			}
			if !matches(doc, where) {
				continue
			}
		}
		matched = append(matched, item)
	}

	offset := max(filter.Offset, 0)
	if offset >= len(matched) {
		return matched[:0], nil
	}
	matched = matched[offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// toDocument converts v to its generic JSON object form, so numbers compare
// as float64 on both sides. Values that are not JSON objects yield nil.
func toDocument(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	m, _ := doc.(map[string]any)
	return m, nil
}

// matches reports whether every field of where is present in doc with an
// equal value. Nested objects are matched field by field.
func matches(doc, where map[string]any) bool {
	for key, want := range where {
		got, ok := doc[key]
		if !ok {
			return false
		}
		if nested, isObject := want.(map[string]any); isObject {
			sub, ok := got.(map[string]any)
			if !ok || !matches(sub, nested) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
