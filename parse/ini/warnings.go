package ini

import (
	"fmt"
	"slices"
)

// warningsIncrement is the number of slots the warning list grows by.
const warningsIncrement = 5

// =========================
// Warning detection
// =========================

// detectWarnings scans the comment-stripped buffer for patterns that are
// probably mistakes. It never changes what the parse pass produces.
func (d *Document) detectWarnings() {
	buf := d.data
	pos := newPosition()
	i := 0

	step := func() {
		pos.advance(buf[i])
		i++
	}

	for i < len(buf) {
		for i < len(buf) && isBlank(buf[i]) {
			step()
		}
		if i >= len(buf) {
			break
		}

		if buf[i] == sectionOpenChar {
			for i < len(buf) && buf[i] != sectionCloseChar {
				switch c := buf[i]; {
				case c == lineEndChar:
					d.addWarning(pos, "newline found in section name, did you forget to close the section name with ']'?")
				case d.opts.isAssignmentChar(c):
					d.addWarning(pos, fmt.Sprintf("'%c' found in section name, did you forget to close the section name with ']'?", c))
				}
				step()
			}
			if i < len(buf) {
				step()
			}
			continue
		}

		for i < len(buf) && !d.opts.isAssignmentChar(buf[i]) {
			d.bracketWarning(pos, buf[i], "key name")
			step()
		}
		if i < len(buf) {
			step()
		}

		for i < len(buf) && buf[i] != lineEndChar {
			d.bracketWarning(pos, buf[i], "key value")
			step()
		}
		if i < len(buf) {
			step()
		}
	}
}

func (d *Document) bracketWarning(pos position, c byte, where string) {
	if c == sectionOpenChar || c == sectionCloseChar {
		d.addWarning(pos, fmt.Sprintf("'%c' found in %s", c, where))
	}
}

func (d *Document) addWarning(pos position, msg string) {
	if d.opts.DisableWarnings {
		return
	}
	if len(d.warnings) == cap(d.warnings) {
		d.warnings = slices.Grow(d.warnings, warningsIncrement)
	}
	d.warnings = append(d.warnings, fmt.Sprintf("%s:%d:%d: warning: %s", d.name, pos.line, pos.col, msg))
}
