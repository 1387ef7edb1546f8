package docmodel

import (
	"fmt"
	"strings"
)

// StyleType is the closed set of style kinds a snapshot may carry.
type StyleType string

const (
	StyleParagraph StyleType = "paragraph"
	StyleCharacter StyleType = "character"
	StyleTable     StyleType = "table"
	StyleList      StyleType = "list"
)

// Valid reports whether t is one of the defined style types.
func (t StyleType) Valid() bool {
	switch t {
	case StyleParagraph, StyleCharacter, StyleTable, StyleList:
		return true
	}
	return false
}

// LineSpacingMode is the closed set of paragraph line-spacing rules.
type LineSpacingMode string

const (
	SpacingSingle       LineSpacingMode = "single"
	SpacingOnePointFive LineSpacingMode = "onePointFive"
	SpacingDouble       LineSpacingMode = "double"
	SpacingMultiple     LineSpacingMode = "multiple"
	SpacingExactly      LineSpacingMode = "exactly"
	SpacingAtLeast      LineSpacingMode = "atLeast"
)

// Valid reports whether m is one of the defined spacing modes.
func (m LineSpacingMode) Valid() bool {
	switch m {
	case SpacingSingle, SpacingOnePointFive, SpacingDouble, SpacingMultiple, SpacingExactly, SpacingAtLeast:
		return true
	}
	return false
}

// Metadata carries descriptive document properties. Counts must be
// non-negative; nothing else is enforced.
type Metadata struct {
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	PageCount int    `json:"page_count" yaml:"page_count"`
	WordCount int    `json:"word_count" yaml:"word_count"`
}

// FontSpec describes the font of a style. SizePt == 0 means the size is
// unset; negative sizes violate the input contract.
type FontSpec struct {
	EastAsian string  `json:"east_asian" yaml:"east_asian"`
	SizePt    float64 `json:"size_pt" yaml:"size_pt"`
	Bold      bool    `json:"bold" yaml:"bold"`
}

// ParagraphSpec describes paragraph-level formatting. LineSpacing is a
// multiplier for SpacingMultiple, points for SpacingExactly/SpacingAtLeast,
// and ignored for the fixed modes.
type ParagraphSpec struct {
	SpacingMode LineSpacingMode `json:"spacing_mode" yaml:"spacing_mode"`
	LineSpacing float64         `json:"line_spacing" yaml:"line_spacing"`
}

// Style is one named style definition. Name is the unique key every other
// entity resolves style references against. Paragraph is present only for
// paragraph styles.
type Style struct {
	Name      string         `json:"name" yaml:"name"`
	Type      StyleType      `json:"type" yaml:"type"`
	Font      FontSpec       `json:"font" yaml:"font"`
	Paragraph *ParagraphSpec `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
}

// Paragraph is the skeleton of one document paragraph: its position, the
// style it resolves to, and a non-authoritative text preview. HeadingLevel
// is meaningful only when IsHeading is set.
type Paragraph struct {
	Index        int    `json:"index" yaml:"index"`
	StyleName    string `json:"style_name" yaml:"style_name"`
	PreviewText  string `json:"preview_text" yaml:"preview_text"`
	IsHeading    bool   `json:"is_heading" yaml:"is_heading"`
	HeadingLevel int    `json:"heading_level,omitempty" yaml:"heading_level,omitempty"`
}

// Heading is one entry of the document outline. ParagraphIndex must resolve
// to a heading paragraph whose level matches Level.
type Heading struct {
	ParagraphIndex int    `json:"paragraph_index" yaml:"paragraph_index"`
	Level          int    `json:"level" yaml:"level"`
	Text           string `json:"text" yaml:"text"`
	StyleName      string `json:"style_name" yaml:"style_name"`
}

// Field is one field instruction and its cached result. ResultText may be
// stale relative to FieldCode; detecting that is a validator concern.
type Field struct {
	ParagraphIndex int    `json:"paragraph_index" yaml:"paragraph_index"`
	FieldType      string `json:"field_type" yaml:"field_type"`
	FieldCode      string `json:"field_code" yaml:"field_code"`
	ResultText     string `json:"result_text" yaml:"result_text"`
}

// Table is the skeleton of one table, anchored at a paragraph.
type Table struct {
	ParagraphIndex int  `json:"paragraph_index" yaml:"paragraph_index"`
	Rows           int  `json:"rows" yaml:"rows"`
	Columns        int  `json:"columns" yaml:"columns"`
	HasHeader      bool `json:"has_header" yaml:"has_header"`
}

// Structure is the version-1 structural snapshot of a document: the sole
// aggregate every check pass operates on. It is read-only for the duration
// of a validation call; the engine never mutates it.
type Structure struct {
	Metadata   Metadata    `json:"metadata" yaml:"metadata"`
	Styles     []Style     `json:"styles" yaml:"styles"`
	Paragraphs []Paragraph `json:"paragraphs" yaml:"paragraphs"`
	Headings   []Heading   `json:"headings" yaml:"headings"`
	Fields     []Field     `json:"fields" yaml:"fields"`
	Tables     []Table     `json:"tables" yaml:"tables"`
}

// CheckShape verifies the input contract a snapshot must satisfy before any
// quality check runs: non-negative counts, valid enum values, sane per-entity
// shapes. Cross-reference resolution and index contiguity are deliberately
// not checked here; a document violating those is a quality finding for the
// integrity pass, not a malformed input.
func (s *Structure) CheckShape() error {
	if s == nil {
		return fmt.Errorf("snapshot is nil")
	}
	if s.Metadata.PageCount < 0 {
		return fmt.Errorf("metadata: negative page_count %d", s.Metadata.PageCount)
	}
	if s.Metadata.WordCount < 0 {
		return fmt.Errorf("metadata: negative word_count %d", s.Metadata.WordCount)
	}
	for i, st := range s.Styles {
		if strings.TrimSpace(st.Name) == "" {
			return fmt.Errorf("style %d: empty name", i)
		}
		if !st.Type.Valid() {
			return fmt.Errorf("style %q: unknown type %q", st.Name, st.Type)
		}
		if st.Font.SizePt < 0 {
			return fmt.Errorf("style %q: negative font size %.2f", st.Name, st.Font.SizePt)
		}
		if st.Paragraph != nil {
			if st.Type != StyleParagraph {
				return fmt.Errorf("style %q: paragraph spec on non-paragraph style", st.Name)
			}
			if !st.Paragraph.SpacingMode.Valid() {
				return fmt.Errorf("style %q: unknown spacing mode %q", st.Name, st.Paragraph.SpacingMode)
			}
		}
	}
	for i, p := range s.Paragraphs {
		if p.Index < 0 {
			return fmt.Errorf("paragraph %d: negative index %d", i, p.Index)
		}
		if p.IsHeading && p.HeadingLevel < 1 {
			return fmt.Errorf("paragraph %d: heading without a positive level", p.Index)
		}
		if !p.IsHeading && p.HeadingLevel != 0 {
			return fmt.Errorf("paragraph %d: heading level %d on a non-heading", p.Index, p.HeadingLevel)
		}
	}
	for i, h := range s.Headings {
		if h.Level < 1 {
			return fmt.Errorf("heading %d: non-positive level %d", i, h.Level)
		}
		if h.ParagraphIndex < 0 {
			return fmt.Errorf("heading %d: negative paragraph index %d", i, h.ParagraphIndex)
		}
	}
	for i, f := range s.Fields {
		if f.ParagraphIndex < 0 {
			return fmt.Errorf("field %d: negative paragraph index %d", i, f.ParagraphIndex)
		}
		if strings.TrimSpace(f.FieldType) == "" {
			return fmt.Errorf("field %d: empty field type", i)
		}
	}
	for i, tb := range s.Tables {
		if tb.ParagraphIndex < 0 {
			return fmt.Errorf("table %d: negative paragraph index %d", i, tb.ParagraphIndex)
		}
		if tb.Rows < 1 || tb.Columns < 1 {
			return fmt.Errorf("table %d: non-positive dimensions %dx%d", i, tb.Rows, tb.Columns)
		}
	}
	return nil
}

// StyleByName resolves a style definition by exact name. The second return
// is false when the name does not resolve.
func (s *Structure) StyleByName(name string) (Style, bool) {
	for _, st := range s.Styles {
		if st.Name == name {
			return st, true
		}
	}
	return Style{}, false
}

// ParagraphByIndex resolves a paragraph skeleton by document position.
func (s *Structure) ParagraphByIndex(idx int) (Paragraph, bool) {
	for _, p := range s.Paragraphs {
		if p.Index == idx {
			return p, true
		}
	}
	return Paragraph{}, false
}
