// Declarative schema descriptors.
//
// A table's column set can be built in code with AddColumn or loaded from
// a JSON descriptor:
//
//	{"columns": [
//	  {"name": "owner", "type": "tag"},
//	  {"name": "flags", "type": "flaggroup", "tags": ["prod", "dmz"]},
//	  {"name": "state", "type": "flag", "accept": "up", "reject": "down"},
//	  {"name": "Description", "type": "text"}
//	]}
//
// Both routes produce identical tables; Fingerprint confirms it.
package proptab

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ColumnSpec describes one column in a schema descriptor.
type ColumnSpec struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`             // "flag", "flaggroup", "tag", "text"
	Accept string   `json:"accept,omitempty"` // flag only
	Reject string   `json:"reject,omitempty"` // flag only
	Tags   []string `json:"tags,omitempty"`   // flaggroup only
}

// Schema is a declarative table layout.
type Schema struct {
	Columns []ColumnSpec `json:"columns"`
}

// ParseSchema decodes a JSON schema descriptor.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSchema, err)
	}
	if len(s.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrBadSchema)
	}
	return &s, nil
}

// NewTable builds an empty table with the schema's columns registered in
// order.
func (s *Schema) NewTable(config Config) (*Table, error) {
	t := New(config)
	for _, c := range s.Columns {
		p, err := c.property()
		if err != nil {
			return nil, err
		}
		if err := t.AddColumn(p); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (c ColumnSpec) property() (Property, error) {
	switch c.Type {
	case "flag":
		if c.Accept == "" || c.Reject == "" {
			return nil, fmt.Errorf("%w: flag column %q needs accept and reject", ErrBadSchema, c.Name)
		}
		return NewFlag(c.Name, c.Accept, c.Reject), nil
	case "flaggroup":
		if len(c.Tags) == 0 {
			return nil, fmt.Errorf("%w: flaggroup column %q needs tags", ErrBadSchema, c.Name)
		}
		return NewFlagGroup(c.Name, c.Tags), nil
	case "tag":
		return NewTag(c.Name), nil
	case "text":
		return NewText(c.Name), nil
	}
	return nil, fmt.Errorf("%w: unknown column type %q", ErrBadSchema, c.Type)
}
