package ini

import (
	"bytes"
	"slices"
)

// List is a sequence of strings viewed through spans of a backing buffer.
// Lists are returned by CSV and the section listings and are released with
// Document.Release.
type List struct {
	buf   []byte
	spans []Span
	owned bool
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.spans)
}

// At returns item i as a new string.
func (l *List) At(i int) string {
	s := l.spans[i]
	return string(l.buf[s.Start:s.End])
}

// Bytes returns item i as a view into the backing buffer. The view is only
// valid until the list, or the document it came from, is released.
func (l *List) Bytes(i int) []byte {
	s := l.spans[i]
	return l.buf[s.Start:s.End:s.End]
}

// Strings copies every item.
func (l *List) Strings() []string {
	out := make([]string, l.Len())
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}

// Release frees a list returned by this document. Lists over the document
// buffer only drop their views; CSV lists also return their copy to the
// allocator.
func (d *Document) Release(l *List) {
	if l == nil {
		return
	}
	if l.owned {
		d.mem.release(l.buf)
	}
	l.buf, l.spans, l.owned = nil, nil, false
}

// =========================
// CSV
// =========================

// CSV searches every section for key and splits its value on commas.
func (d *Document) CSV(key string) (*List, error) { return d.csv("", false, key) }

// SectionCSV splits the value of key in section on commas. The value is
// copied into allocator memory and trimmed; every comma then separates two
// fields, so "a,,b" has three and the field count is always one more than
// the comma count. Leading blanks of each field are skipped.
func (d *Document) SectionCSV(section, key string) (*List, error) {
	return d.csv(section, true, key)
}

func (d *Document) csv(section string, scoped bool, key string) (*List, error) {
	raw, err := d.lookup(section, scoped, key)
	if err != nil {
		return nil, err
	}

	buf := d.mem.allocate(len(raw))
	copy(buf, raw)
	whole := trim(buf, Span{Start: 0, End: len(buf)})
	text := buf[:whole.End]

	count := 1 + bytes.Count(text[whole.Start:], []byte{','})
	spans := make([]Span, 0, count)

	start := whole.Start
	for i := 0; i < count; i++ {
		end, _ := skipTo(text, start, ',')
		spans = append(spans, Span{Start: skipBlank(text[:end], start), End: end})
		start = end + 1
	}

	return &List{buf: buf, spans: spans, owned: true}, nil
}

// =========================
// Section listings
// =========================

// SectionKeyNames lists the key names of section in input order.
func (d *Document) SectionKeyNames(section string) (*List, error) {
	return d.sectionList(section, d.keyNames)
}

// SectionKeyValues lists the key values of section in input order.
func (d *Document) SectionKeyValues(section string) (*List, error) {
	return d.sectionList(section, d.keyValues)
}

func (d *Document) sectionList(section string, table []Span) (*List, error) {
	i, err := d.sectionIndex(section)
	if err != nil {
		return nil, err
	}

	s := &d.sections[i]
	spans := make([]Span, 0, s.Len())
	for _, r := range s.Ranges {
		spans = append(spans, table[r.Start:r.End]...)
	}

	d.clearError()
	return &List{buf: d.data, spans: spans}, nil
}

// KeyNames lists every key name of the document in input order.
func (d *Document) KeyNames() *List {
	return &List{buf: d.data, spans: slices.Clone(d.keyNames)}
}

// KeyValues lists every key value of the document in input order.
func (d *Document) KeyValues() *List {
	return &List{buf: d.data, spans: slices.Clone(d.keyValues)}
}
