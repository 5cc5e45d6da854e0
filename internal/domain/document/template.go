package document

import (
	"sort"
	"time"
)

// Type enumerates the document kinds the company produces.
type Type string

const (
	TypeInvoice      Type = "invoice"
	TypeDraft        Type = "draft"
	TypeMeasurement  Type = "measurement"
	TypeControl      Type = "control"
	TypeQuote        Type = "quote"
	TypeDeliveryNote Type = "delivery_note"
)

// Meta carries the document metadata rendered into the page head.
type Meta struct {
	Title   string
	Author  string
	Company string
}

// Template is the assembled document: an identifier, a type, the ordered
// sections and metadata. Built once per render request from domain data
// and treated as immutable afterwards.
type Template struct {
	ID        string
	Type      Type
	Sections  []Section
	Meta      Meta
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks every section's kind/payload contract.
func (t *Template) Validate() error {
	for _, s := range t.Sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// OrderedSections returns the sections sorted by ascending position.
// The sort is stable, so sections sharing a position keep their original
// insertion order. The template itself is not mutated.
func (t *Template) OrderedSections() []Section {
	out := make([]Section, len(t.Sections))
	copy(out, t.Sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// Builder assigns sequential positions so no two sections collide.
type Builder struct {
	sections []Section
	next     int
}

// Append adds a section at the next free position.
func (b *Builder) Append(kind SectionKind, content Content) {
	b.sections = append(b.sections, Section{Position: b.next, Kind: kind, Content: content})
	b.next++
}

// Sections returns the accumulated sections.
func (b *Builder) Sections() []Section {
	return b.sections
}
