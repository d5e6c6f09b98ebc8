package ini

// =========================
// Comment stripping
// =========================

// estimate holds pessimistic counts used to reserve the output slices:
// duplicates and dropped empty values are not known yet.
type estimate struct {
	sections int
	keys     int
}

// stripComments blanks every comment in place and counts section and key
// introducers. The global section is always counted.
//
// A comment runs from its comment character up to, but excluding, the next
// line end. With quotes enabled, comment characters between double quotes
// after the line's assignment character are value text.
func (o Options) stripComments(buf []byte) estimate {
	est := estimate{sections: 1}

	lineStart := true
	assigned := false
	inQuote := false

	for i := 0; i < len(buf); i++ {
		c := buf[i]

		if c == lineEndChar {
			lineStart, assigned, inQuote = true, false, false
			continue
		}

		if !inQuote && o.isCommentChar(c) && (lineStart || !o.DisableCommentAnywhere) {
			for i < len(buf) && buf[i] != lineEndChar {
				buf[i] = ' '
				i++
			}
			// the line end, if any, is handled by the next iteration
			i--
			continue
		}

		switch {
		case c == sectionOpenChar:
			est.sections++
		case o.isAssignmentChar(c):
			est.keys++
			assigned = true
		case c == quoteChar && assigned && !o.DisableQuotes:
			inQuote = !inQuote
		}

		if !isBlank(c) {
			lineStart = false
		}
	}

	return est
}
