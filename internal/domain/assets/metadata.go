package assets

// MetaData identifies and describes any asset.
// Extra keeps fields this model does not know about so documents round trip
// without losing data.
type MetaData struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Notes       *string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Description *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Extra       map[string]any `json:"extra,omitempty" yaml:",inline"`
}
