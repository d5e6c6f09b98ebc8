package ini

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Bool is the result of a boolean conversion. BoolInvalid is returned when
// the value is neither a number nor "true"/"false"; check the error rather
// than the sentinel when error tracking is disabled.
type Bool int8

const (
	BoolFalse   Bool = 0
	BoolTrue    Bool = 1
	BoolInvalid Bool = -1
)

// Value reports whether b is BoolTrue.
func (b Bool) Value() bool { return b == BoolTrue }

func (b Bool) String() string {
	switch b {
	case BoolTrue:
		return "true"
	case BoolFalse:
		return "false"
	default:
		return "invalid"
	}
}

const (
	boolTrueWord  = "true"
	boolFalseWord = "false"
)

// convError is a conversion failure before it is attached to a document.
type convError struct {
	cause error
	msg   string
}

func (e *convError) Error() string { return e.msg }

func (d *Document) convFail(err error) error {
	var ce *convError
	if errors.As(err, &ce) {
		return d.fail(KindConversion, ce.cause, "%s", ce.msg)
	}
	return d.fail(KindConversion, err, "%v", err)
}

// =========================
// Typed accessors
// =========================

// Int searches every section for key and converts its value to an int64.
func (d *Document) Int(key string) (int64, error) { return d.int("", false, key) }

// SectionInt converts the value of key in section to an int64.
func (d *Document) SectionInt(section, key string) (int64, error) { return d.int(section, true, key) }

// Uint searches every section for key and converts its value to a uint64.
func (d *Document) Uint(key string) (uint64, error) { return d.uint("", false, key) }

// SectionUint converts the value of key in section to a uint64. A negative
// value other than "-0" is a range error rather than wrapping around.
func (d *Document) SectionUint(section, key string) (uint64, error) {
	return d.uint(section, true, key)
}

// Float searches every section for key and converts its value to a float64.
func (d *Document) Float(key string) (float64, error) { return d.float("", false, key) }

// SectionFloat converts the value of key in section to a float64.
func (d *Document) SectionFloat(section, key string) (float64, error) {
	return d.float(section, true, key)
}

// Bool searches every section for key and converts its value to a Bool.
func (d *Document) Bool(key string) (Bool, error) { return d.bool("", false, key) }

// SectionBool converts the value of key in section to a Bool. Numbers are
// true when non-zero; otherwise the value must start with "true" or "false"
// in any case.
func (d *Document) SectionBool(section, key string) (Bool, error) {
	return d.bool(section, true, key)
}

func (d *Document) int(section string, scoped bool, key string) (int64, error) {
	raw, err := d.lookup(section, scoped, key)
	if err != nil {
		return 0, err
	}
	v, err := parseInt(raw)
	if err != nil {
		return 0, d.convFail(err)
	}
	return v, nil
}

func (d *Document) uint(section string, scoped bool, key string) (uint64, error) {
	raw, err := d.lookup(section, scoped, key)
	if err != nil {
		return 0, err
	}
	v, err := parseUint(raw)
	if err != nil {
		return 0, d.convFail(err)
	}
	return v, nil
}

func (d *Document) float(section string, scoped bool, key string) (float64, error) {
	raw, err := d.lookup(section, scoped, key)
	if err != nil {
		return 0, err
	}
	v, err := parseFloat(raw)
	if err != nil {
		return 0, d.convFail(err)
	}
	return v, nil
}

func (d *Document) bool(section string, scoped bool, key string) (Bool, error) {
	raw, err := d.lookup(section, scoped, key)
	if err != nil {
		return BoolInvalid, err
	}
	if n, err := parseInt(raw); err == nil {
		if n != 0 {
			return BoolTrue, nil
		}
		return BoolFalse, nil
	}

	word := strings.TrimLeftFunc(raw, func(r rune) bool { return r <= ' ' })
	switch {
	case hasPrefixFold(word, boolTrueWord):
		return BoolTrue, nil
	case hasPrefixFold(word, boolFalseWord):
		return BoolFalse, nil
	}
	return BoolInvalid, d.fail(KindConversion, ErrInvalidBool, "could not parse '%s' as a bool", raw)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && equalFold([]byte(s[:len(prefix)]), []byte(prefix))
}

// =========================
// Numeric prefixes
// =========================

// integerPrefix finds the leading integer of s the way C's strtol does with
// base 0: blanks and a sign are skipped, "0x" selects hex, a leading 0
// selects octal. ok is false when no digit was consumed.
func integerPrefix(s string) (digits string, base int, neg bool, ok bool) {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base = 10
	if i < len(s) && s[i] == '0' {
		base = 8
		if i+2 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && digitValue(s[i+2]) < 16 {
			base = 16
			i += 2
		}
	}

	start := i
	for i < len(s) && digitValue(s[i]) < base {
		i++
	}
	if i == start {
		return "", 0, false, false
	}
	return s[start:i], base, neg, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return math.MaxInt
}

func parseInt(raw string) (int64, error) {
	digits, base, neg, ok := integerPrefix(raw)
	if !ok {
		return 0, &convError{cause: ErrNoDigits, msg: "'" + raw + "' could not be converted to an integer"}
	}
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if errors.Is(err, strconv.ErrRange) {
		if neg {
			return 0, &convError{cause: ErrRange, msg: "'" + raw + "' is less than the minimum value of an integer"}
		}
		return 0, &convError{cause: ErrRange, msg: "'" + raw + "' is more than the maximum value of an integer"}
	}
	if err != nil {
		return 0, &convError{cause: ErrNoDigits, msg: "'" + raw + "' could not be converted to an integer"}
	}
	return v, nil
}

// parseUint rejects a negative magnitude as out of range; "-0" is zero.
func parseUint(raw string) (uint64, error) {
	digits, base, neg, ok := integerPrefix(raw)
	if !ok {
		return 0, &convError{cause: ErrNoDigits, msg: "'" + raw + "' could not be converted to an unsigned integer"}
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && neg && v != 0) {
		return 0, &convError{cause: ErrRange, msg: "'" + raw + "' is outside the range of values of an unsigned integer"}
	}
	if err != nil {
		return 0, &convError{cause: ErrNoDigits, msg: "'" + raw + "' could not be converted to an unsigned integer"}
	}
	return v, nil
}

// floatPrefix finds the leading floating point number of s, decimal or
// hexadecimal ("0x1.8p3"), including "inf", "infinity" and "nan" in any
// case. A hex mantissa without a binary exponent gets "p0" appended.
// nonZero reports whether the mantissa has a non-zero digit, which tells
// underflow from zero.
func floatPrefix(s string) (num string, nonZero bool, ok bool) {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	rest := s[i:]
	for _, word := range []string{"infinity", "inf", "nan"} {
		if hasPrefixFold(rest, word) {
			return s[start : i+len(word)], true, true
		}
	}

	if num, nonZero, ok := hexFloatPrefix(s, start, i); ok {
		return num, nonZero, true
	}

	mantissa := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		nonZero = nonZero || s[i] != '0'
		mantissa++
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			nonZero = nonZero || s[i] != '0'
			mantissa++
			i++
		}
	}
	if mantissa == 0 {
		return "", false, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return s[start:i], nonZero, true
}

// hexFloatPrefix reads "0x" followed by hex digits, an optional fraction
// and an optional "p" exponent, starting at i. ok is false when no hex
// digit follows the prefix, so "0x" alone parses as zero.
func hexFloatPrefix(s string, start, i int) (num string, nonZero bool, ok bool) {
	if i+1 >= len(s) || s[i] != '0' || (s[i+1] != 'x' && s[i+1] != 'X') {
		return "", false, false
	}
	i += 2

	mantissa := 0
	for i < len(s) && digitValue(s[i]) < 16 {
		nonZero = nonZero || s[i] != '0'
		mantissa++
		i++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && digitValue(s[j]) < 16 {
			nonZero = nonZero || s[j] != '0'
			mantissa++
			j++
		}
		if mantissa > 0 {
			i = j
		}
	}
	if mantissa == 0 {
		return "", false, false
	}

	if i < len(s) && (s[i] == 'p' || s[i] == 'P') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			return s[start:j], nonZero, true
		}
	}
	return s[start:i] + "p0", nonZero, true
}

func parseFloat(raw string) (float64, error) {
	num, nonZero, ok := floatPrefix(raw)
	if !ok {
		return 0, &convError{cause: ErrNoDigits, msg: "'" + raw + "' could not be converted to a float"}
	}
	v, err := strconv.ParseFloat(num, 64)
	switch {
	case err == nil && v == 0 && nonZero:
		return 0, &convError{cause: ErrRange, msg: "'" + raw + "' is outside the range of values of a float"}
	case err == nil:
		return v, nil
	case !errors.Is(err, strconv.ErrRange):
		return 0, &convError{cause: ErrNoDigits, msg: "'" + raw + "' could not be converted to a float"}
	case v > 0:
		return 0, &convError{cause: ErrRange, msg: "'" + raw + "' is more than the maximum value of a float"}
	default:
		return 0, &convError{cause: ErrRange, msg: "'" + raw + "' is less than the minimum value of a float"}
	}
}
