package types

// ReadFilter selects records by field equality.
//
// Where is matched against the JSON form of each record; nested objects are
// matched recursively. Offset and Limit are applied after matching, and a
// zero Limit means no limit.
type ReadFilter struct {
	Where  map[string]any `json:"where,omitempty" yaml:"where,omitempty"`
	Offset int            `json:"offset,omitempty" yaml:"offset,omitempty"`
	Limit  int            `json:"limit,omitempty" yaml:"limit,omitempty"`
}
