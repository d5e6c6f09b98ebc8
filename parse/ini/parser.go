package ini

import (
	"slices"
)

// =========================
// Public API
// =========================

// Load parses data as an INI document. The document takes ownership of data
// and blanks its comments in place. name is only used in diagnostics and
// defaults to DefaultName. mem may be nil to use the Go heap.
//
// Load never fails: malformed input is parsed as far as it goes, and
// Truncated and Warnings describe what looked wrong.
func Load(data []byte, opts Options, name string, mem *Memory) *Document {
	d := newDocument(opts, name, mem)
	d.data = data

	est := opts.stripComments(d.data)

	if !opts.DisableWarnings {
		d.warnings = make([]string, 0, warningsIncrement)
		d.detectWarnings()
	}

	d.build(est)
	d.clearError()
	return d
}

// =========================
// Parse pass
// =========================

// build fills the section and key tables from the stripped buffer. Slices
// are reserved from est and shrunk to their true length at the end.
func (d *Document) build(est estimate) {
	buf := d.data

	d.sections = make([]Section, 0, est.sections)
	d.sections = append(d.sections, Section{Name: GlobalSection, Ranges: []Range{{}}})
	d.keyNames = make([]Span, 0, est.keys)
	d.keyValues = make([]Span, 0, est.keys)

	cur := 0
	pos := 0
	for pos < len(buf) {
		pos = skipBlank(buf, pos)
		if pos >= len(buf) {
			break
		}

		if buf[pos] == sectionOpenChar {
			end, closed := skipTo(buf, pos+1, sectionCloseChar)
			name := trim(buf, Span{Start: pos + 1, End: end})
			cur = d.openSection(cur, d.bytes(name))
			if !closed {
				d.truncated = true
				break
			}
			pos = end + 1
			continue
		}

		var done bool
		pos, done = d.parseKey(cur, pos)
		if done {
			break
		}
	}

	d.sections = shrink(d.sections)
	d.keyNames = shrink(d.keyNames)
	d.keyValues = shrink(d.keyValues)
}

// openSection makes the section called name current and returns its index.
// A known section other than cur gets a new range starting at the key
// cursor; an unknown one is appended.
func (d *Document) openSection(cur int, name []byte) int {
	at := len(d.keyNames)
	for i := range d.sections {
		if !d.equalName([]byte(d.sections[i].Name), name) {
			continue
		}
		if i != cur {
			d.sections[i].Ranges = append(d.sections[i].Ranges, Range{Start: at, End: at})
		}
		return i
	}
	d.sections = append(d.sections, Section{
		Name:   string(name),
		Ranges: []Range{{Start: at, End: at}},
	})
	return len(d.sections) - 1
}

// parseKey reads one key starting at pos and returns where scanning resumes.
// done is true when the input ended before an assignment character.
func (d *Document) parseKey(cur, pos int) (next int, done bool) {
	buf := d.data

	end, assigned := d.opts.skipToAssignment(buf, pos)
	name := trim(buf, Span{Start: pos, End: end})

	if !assigned {
		d.truncated = true
		d.putKey(cur, name, Span{Start: end, End: end})
		return len(buf), true
	}

	value, next := d.parseValue(end + 1)
	d.putKey(cur, name, value)
	return next, false
}

// parseValue reads a value starting right after the assignment character.
// A double quote before the line end starts a quoted value that runs to the
// next double quote; otherwise the value is the trimmed rest of the line.
func (d *Document) parseValue(pos int) (Span, int) {
	buf := d.data
	lineEnd, _ := skipTo(buf, pos, lineEndChar)

	if !d.opts.DisableQuotes {
		if open, quoted := skipTo(buf[:lineEnd], pos, quoteChar); quoted {
			closing, ok := skipTo(buf, open+1, quoteChar)
			if !ok {
				d.truncated = true
				return Span{Start: open + 1, End: closing}, len(buf)
			}
			return Span{Start: open + 1, End: closing}, closing + 1
		}
	}

	return trim(buf, Span{Start: pos, End: lineEnd}), min(lineEnd+1, len(buf))
}

// putKey records a key in section cur, applying the empty-value and
// duplicate policies.
func (d *Document) putKey(cur int, name, value Span) {
	if value.empty() && d.opts.IgnoreEmptyValues {
		return
	}

	if dup := d.findKey(cur, d.bytes(name)); dup >= 0 {
		if d.opts.OverrideDuplicateKeys {
			d.keyValues[dup] = value
		}
		return
	}

	d.keyNames = append(d.keyNames, name)
	d.keyValues = append(d.keyValues, value)

	ranges := d.sections[cur].Ranges
	ranges[len(ranges)-1].End = len(d.keyNames)
}

// shrink drops unused capacity once the true length is known.
func shrink[T any](s []T) []T {
	if len(s) == cap(s) {
		return s
	}
	return slices.Clone(s)
}
