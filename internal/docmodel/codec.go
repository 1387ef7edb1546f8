package docmodel

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Enum decoding rejects unknown values up front so a bad snapshot fails at
// the boundary instead of surfacing mid-check.

// UnmarshalText implements encoding.TextUnmarshaler for JSON decoding.
func (t *StyleType) UnmarshalText(b []byte) error {
	v := StyleType(b)
	if !v.Valid() {
		return fmt.Errorf("unknown style type %q", string(b))
	}
	*t = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *StyleType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON decoding.
func (m *LineSpacingMode) UnmarshalText(b []byte) error {
	v := LineSpacingMode(b)
	if !v.Valid() {
		return fmt.Errorf("unknown spacing mode %q", string(b))
	}
	*m = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *LineSpacingMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}
