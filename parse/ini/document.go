// Package ini reads INI documents into an indexed, queryable form.
//
// Format:
//   - [section] headers, all on one level
//   - key = value and key : value (colon optional)
//   - ';' and '#' comments, anywhere on a line by default
//   - double quotes preserve surrounding whitespace in a value
//   - keys before the first header belong to the "global" section
//
// A Document is built once by Load. Afterwards only its error slot and
// warning list change. A Document must not be used from more than one
// goroutine at a time.
package ini

import (
	"fmt"
	"slices"
)

const (
	// GlobalSection names the implicit section holding keys that appear
	// before any header.
	GlobalSection = "global"
	// DefaultName is used in diagnostics when Load is given no name.
	DefaultName = "ini"
)

// Range is a half-open index range into a document's key table.
type Range struct {
	Start int
	End   int
}

// Section is a named set of disjoint key ranges. A section re-opened later
// in the input gains one more range.
type Section struct {
	Name   string
	Ranges []Range
}

// Len returns the number of keys in all of the section's ranges.
func (s *Section) Len() int {
	n := 0
	for _, r := range s.Ranges {
		n += r.End - r.Start
	}
	return n
}

// Document is a parsed INI buffer.
type Document struct {
	mem  *Memory
	data []byte
	name string
	opts Options

	err      string
	warnings []string

	sections  []Section
	keyNames  []Span
	keyValues []Span

	truncated bool
}

func newDocument(opts Options, name string, mem *Memory) *Document {
	if name == "" {
		name = DefaultName
	}
	if mem == nil {
		mem = &Memory{}
	}
	return &Document{mem: mem, name: name, opts: opts}
}

// Close releases the document buffer through its allocator. Lists returned
// by the document are not released; use Release for those.
func (d *Document) Close() {
	if d == nil {
		return
	}
	d.mem.release(d.data)
	d.data = nil
	d.sections = nil
	d.keyNames = nil
	d.keyValues = nil
	d.warnings = nil
}

// Name returns the display name used in diagnostics.
func (d *Document) Name() string { return d.name }

// Options returns the options the document was loaded with.
func (d *Document) Options() Options { return d.opts }

// Warnings returns the warnings found while loading.
func (d *Document) Warnings() []string { return slices.Clone(d.warnings) }

// Truncated reports whether a section header, key or quoted value ran to
// the end of the input.
func (d *Document) Truncated() bool { return d.truncated }

// TruncationError returns a KindTruncated error when Truncated is true and
// nil otherwise. It does not touch the error slot: truncation is tolerated
// by Load and only reported on request.
func (d *Document) TruncationError() error {
	if !d.truncated {
		return nil
	}
	return &Error{
		Kind: KindTruncated,
		Err:  ErrTruncated,
		Msg:  fmt.Sprintf("%s: input ends inside a section header, key or quoted value", d.name),
	}
}

// Len returns the number of keys in the document.
func (d *Document) Len() int { return len(d.keyNames) }

// SectionNames lists the sections in order of first appearance, starting
// with GlobalSection.
func (d *Document) SectionNames() []string {
	out := make([]string, len(d.sections))
	for i := range d.sections {
		out[i] = d.sections[i].Name
	}
	return out
}

func (d *Document) bytes(s Span) []byte { return d.data[s.Start:s.End] }

func (d *Document) text(s Span) string { return string(d.data[s.Start:s.End]) }

func (d *Document) equalName(a, b []byte) bool {
	return equalBytes(a, b, d.opts.DisableCaseSensitivity)
}

// =========================
// Lookup
// =========================

func (d *Document) sectionIndex(name string) (int, error) {
	if name == "" {
		return -1, d.fail(KindLookup, ErrMissingName, "the section name is required")
	}
	for i := range d.sections {
		if d.equalName([]byte(d.sections[i].Name), []byte(name)) {
			return i, nil
		}
	}
	return -1, d.fail(KindLookup, ErrSectionNotFound, "section '%s' not found", name)
}

// findKey returns the key index of name within all ranges of section, or -1.
func (d *Document) findKey(section int, name []byte) int {
	for _, r := range d.sections[section].Ranges {
		for k := r.Start; k < r.End; k++ {
			if d.equalName(d.bytes(d.keyNames[k]), name) {
				return k
			}
		}
	}
	return -1
}

// FindSection returns the named section. The result must not be modified.
// An empty name is always ErrMissingName, so the keys of an empty "[]"
// header are only reachable through Value and the whole-document listings.
func (d *Document) FindSection(name string) (*Section, error) {
	i, err := d.sectionIndex(name)
	if err != nil {
		return nil, err
	}
	d.clearError()
	return &d.sections[i], nil
}

// Value searches every section for key. With OverrideDuplicateKeys the last
// occurrence in the input wins, otherwise the first.
func (d *Document) Value(key string) (string, error) {
	return d.lookup("", false, key)
}

// SectionValue returns the value of key in section.
func (d *Document) SectionValue(section, key string) (string, error) {
	return d.lookup(section, true, key)
}

func (d *Document) lookup(section string, scoped bool, key string) (string, error) {
	if key == "" {
		return "", d.fail(KindLookup, ErrMissingName, "the key name is required")
	}

	if scoped {
		i, err := d.sectionIndex(section)
		if err != nil {
			return "", err
		}
		if k := d.findKey(i, []byte(key)); k >= 0 {
			d.clearError()
			return d.text(d.keyValues[k]), nil
		}
		return "", d.fail(KindLookup, ErrKeyNotFound, "key '%s' not found in section '%s'", key, section)
	}

	found := -1
	for k := range d.keyNames {
		if !d.equalName(d.bytes(d.keyNames[k]), []byte(key)) {
			continue
		}
		found = k
		if !d.opts.OverrideDuplicateKeys {
			break
		}
	}
	if found < 0 {
		return "", d.fail(KindLookup, ErrKeyNotFound, "key '%s' not found", key)
	}
	d.clearError()
	return d.text(d.keyValues[found]), nil
}

// Map returns every section's keys and values. Sections without keys are
// included as empty maps.
func (d *Document) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.sections))
	for i := range d.sections {
		s := &d.sections[i]
		m := make(map[string]string, s.Len())
		for _, r := range s.Ranges {
			for k := r.Start; k < r.End; k++ {
				m[d.text(d.keyNames[k])] = d.text(d.keyValues[k])
			}
		}
		out[s.Name] = m
	}
	return out
}
