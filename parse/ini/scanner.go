package ini

// =========================
// Lexical primitives
// =========================

const (
	commentChar       = ';'
	commentCharAlt    = '#'
	assignmentChar    = '='
	assignmentCharAlt = ':'
	sectionOpenChar   = '['
	sectionCloseChar  = ']'
	lineEndChar       = '\n'
	quoteChar         = '"'
)

// Span is a half-open byte range [Start, End) into a document buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the span width.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) empty() bool { return s.End <= s.Start }

// isBlank reports control characters and space, which the format treats as
// whitespace.
func isBlank(c byte) bool { return c <= ' ' }

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// equalFold compares ASCII letters without regard to case. Bytes outside
// a-z/A-Z must match exactly.
func equalFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if toUpperASCII(a[i]) != toUpperASCII(b[i]) {
			return false
		}
	}
	return true
}

func equalBytes(a, b []byte, fold bool) bool {
	if fold {
		return equalFold(a, b)
	}
	return string(a) == string(b)
}

func (o Options) isCommentChar(c byte) bool {
	return c == commentChar || (!o.DisableHashComments && c == commentCharAlt)
}

func (o Options) isAssignmentChar(c byte) bool {
	return c == assignmentChar || (!o.DisableColonAssignment && c == assignmentCharAlt)
}

// skipBlank returns the first non-blank position at or after pos.
func skipBlank(buf []byte, pos int) int {
	for pos < len(buf) && isBlank(buf[pos]) {
		pos++
	}
	return pos
}

// skipTo returns the position of c at or after pos, or len(buf) when c does
// not occur. The boolean reports whether c was found.
func skipTo(buf []byte, pos int, c byte) (int, bool) {
	for pos < len(buf) {
		if buf[pos] == c {
			return pos, true
		}
		pos++
	}
	return len(buf), false
}

// skipToAssignment finds the earliest assignment character at or after pos.
func (o Options) skipToAssignment(buf []byte, pos int) (int, bool) {
	for pos < len(buf) {
		if o.isAssignmentChar(buf[pos]) {
			return pos, true
		}
		pos++
	}
	return len(buf), false
}

// trim narrows s so that it neither starts nor ends with a blank byte.
func trim(buf []byte, s Span) Span {
	for s.Start < s.End && isBlank(buf[s.Start]) {
		s.Start++
	}
	for s.End > s.Start && isBlank(buf[s.End-1]) {
		s.End--
	}
	return s
}

// position tracks 1-based line and column numbers.
type position struct {
	line int
	col  int
}

func newPosition() position { return position{line: 1, col: 1} }

func (p *position) advance(c byte) {
	if c == lineEndChar {
		p.line++
		p.col = 1
		return
	}
	p.col++
}
