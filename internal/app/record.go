package app

import (
	"encoding/json"
	"fmt"

	"sealstore/internal/domain"
)

// Record is a free-form JSON object with an "id" member. The CLI stores
// records of this type in every configured store.
type Record struct {
	ID     domain.ID      `cbor:"id"`
	Fields map[string]any `cbor:"fields,omitempty"`
}

func (r *Record) RecordID() domain.ID      { return r.ID }
func (r *Record) SetRecordID(id domain.ID) { r.ID = id }

// MarshalJSON flattens Fields and ID into one object.
func (r *Record) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		doc[k] = v
	}
	if !r.ID.IsZero() {
		doc["id"] = r.ID
	}
	return json.Marshal(doc)
}

// UnmarshalJSON accepts any JSON object. A string "id" member becomes the
// record ID; every other member lands in Fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("record must be a JSON object")
	}

	r.ID = ""
	if raw, ok := doc["id"]; ok {
		id, ok := raw.(string)
		if !ok {
			return fmt.Errorf("record id must be a string, got %T", raw)
		}
		r.ID = domain.ID(id)
		delete(doc, "id")
	}
	r.Fields = doc
	return nil
}

// DecodeRecords parses a JSON array of objects.
func DecodeRecords(data []byte) ([]*Record, error) {
	var records []*Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("failed to decode records: element %d is null", i)
		}
	}
	return records, nil
}

var _ domain.Identifiable = (*Record)(nil)
