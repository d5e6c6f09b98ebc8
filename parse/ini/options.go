package ini

import (
	"fmt"
	"strings"
)

// Options selects parser behavior. The zero value enables every feature,
// compares names case-sensitively and keeps the first of duplicated keys.
type Options struct {
	// IgnoreEmptyValues drops keys whose value is empty.
	IgnoreEmptyValues bool
	// OverrideDuplicateKeys keeps the last value of a duplicated key
	// instead of the first.
	OverrideDuplicateKeys bool
	// DisableQuotes makes double quotes literal value characters.
	DisableQuotes bool
	// DisableHashComments leaves only ';' as a comment character.
	DisableHashComments bool
	// DisableColonAssignment leaves only '=' as an assignment character.
	DisableColonAssignment bool
	// DisableCommentAnywhere only recognizes a comment as the first
	// non-blank character of a line.
	DisableCommentAnywhere bool
	// DisableCaseSensitivity folds case in every name comparison.
	DisableCaseSensitivity bool
	// DisableErrors keeps the error slot empty.
	DisableErrors bool
	// DisableWarnings skips the warning detection pass.
	DisableWarnings bool
}

// Flag is the bitmask form of Options.
type Flag uint16

const (
	FlagIgnoreEmptyValues Flag = 1 << iota
	FlagOverrideDuplicateKeys
	FlagDisableQuotes
	FlagDisableHashComments
	FlagDisableColonAssignment
	FlagDisableCommentAnywhere
	FlagDisableCaseSensitivity
	FlagDisableErrors
	FlagDisableWarnings

	FlagNone Flag = 0
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagIgnoreEmptyValues, "ignore-empty-values"},
	{FlagOverrideDuplicateKeys, "override-duplicate-keys"},
	{FlagDisableQuotes, "disable-quotes"},
	{FlagDisableHashComments, "disable-hash-comments"},
	{FlagDisableColonAssignment, "disable-colon-assignment"},
	{FlagDisableCommentAnywhere, "disable-comment-anywhere"},
	{FlagDisableCaseSensitivity, "disable-case-sensitivity"},
	{FlagDisableErrors, "disable-errors"},
	{FlagDisableWarnings, "disable-warnings"},
}

// Options expands the bitmask.
func (f Flag) Options() Options {
	return Options{
		IgnoreEmptyValues:      f&FlagIgnoreEmptyValues != 0,
		OverrideDuplicateKeys:  f&FlagOverrideDuplicateKeys != 0,
		DisableQuotes:          f&FlagDisableQuotes != 0,
		DisableHashComments:    f&FlagDisableHashComments != 0,
		DisableColonAssignment: f&FlagDisableColonAssignment != 0,
		DisableCommentAnywhere: f&FlagDisableCommentAnywhere != 0,
		DisableCaseSensitivity: f&FlagDisableCaseSensitivity != 0,
		DisableErrors:          f&FlagDisableErrors != 0,
		DisableWarnings:        f&FlagDisableWarnings != 0,
	}
}

// Flags packs the options into a bitmask.
func (o Options) Flags() Flag {
	var f Flag
	set := func(on bool, bit Flag) {
		if on {
			f |= bit
		}
	}
	set(o.IgnoreEmptyValues, FlagIgnoreEmptyValues)
	set(o.OverrideDuplicateKeys, FlagOverrideDuplicateKeys)
	set(o.DisableQuotes, FlagDisableQuotes)
	set(o.DisableHashComments, FlagDisableHashComments)
	set(o.DisableColonAssignment, FlagDisableColonAssignment)
	set(o.DisableCommentAnywhere, FlagDisableCommentAnywhere)
	set(o.DisableCaseSensitivity, FlagDisableCaseSensitivity)
	set(o.DisableErrors, FlagDisableErrors)
	set(o.DisableWarnings, FlagDisableWarnings)
	return f
}

func (f Flag) String() string {
	if f == FlagNone {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseFlags converts option names such as "override-duplicate-keys" into
// a bitmask. Names are matched case-insensitively; "none" and empty names
// are accepted and contribute nothing.
func ParseFlags(names ...string) (Flag, error) {
	var f Flag
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || strings.EqualFold(name, "none") {
			continue
		}
		found := false
		for _, fn := range flagNames {
			if strings.EqualFold(fn.name, name) {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown option %q", name)
		}
	}
	return f, nil
}

// FlagNames lists every option name accepted by ParseFlags.
func FlagNames() []string {
	out := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		out = append(out, fn.name)
	}
	return out
}
