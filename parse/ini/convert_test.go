package ini

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

const numbersIni = `
long = 70000000
ulong = 2100000
double = 3.14
hex = 0x1F
octal = 010
prefix = 12abc
negative = -42
long_too_big = 99999999999999999999999
long_too_small = -99999999999999999999999
long_no_digits = abc
long_blank =
ulong_negative = -5
ulong_negative_zero = -0
double_scientific = 2.5e3xyz
double_too_big = 1e400
double_too_small = -1e400
double_underflow = 1e-400
double_zero = 0.000
double_inf = -Infinity
double_no_digits = .e5
double_hex = 0x10
double_hex_exp = -0x1.8p1z
double_hex_bare = 0xg

[flags]
bool1 = 1
bool2 = 0
bool3 = TRUE
bool4 = False
bool5 = "  true"
bool6 = 17
bool_blank =
bool_not_parsable = yes
`

func TestIntegerConversion(t *testing.T) {
	convey.Convey("integers", t, func() {
		doc := load(numbersIni, Options{})

		cases := map[string]int64{
			"long":     70000000,
			"hex":      31,
			"octal":    8,
			"prefix":   12,
			"negative": -42,
		}
		for key, want := range cases {
			got, err := doc.Int(key)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, want)
		}

		u, err := doc.Uint("ulong")
		convey.So(err, convey.ShouldBeNil)
		convey.So(u, convey.ShouldEqual, uint64(2100000))

		u, err = doc.Uint("ulong_negative_zero")
		convey.So(err, convey.ShouldBeNil)
		convey.So(u, convey.ShouldEqual, uint64(0))

		convey.Convey("overflow reports a range error and zero", func() {
			v, err := doc.Int("long_too_big")
			convey.So(v, convey.ShouldEqual, 0)
			convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)
			convey.So(KindOf(err), convey.ShouldEqual, KindConversion)
			convey.So(doc.LastError(), convey.ShouldContainSubstring, "more than the maximum")

			_, err = doc.Int("long_too_small")
			convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)
			convey.So(doc.LastError(), convey.ShouldContainSubstring, "less than the minimum")

			_, err = doc.Uint("ulong_negative")
			convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)

			_, err = doc.Uint("long_too_big")
			convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)
		})

		convey.Convey("no digits is a distinct failure", func() {
			for _, key := range []string{"long_no_digits", "long_blank"} {
				v, err := doc.Int(key)
				convey.So(v, convey.ShouldEqual, 0)
				convey.So(errors.Is(err, ErrNoDigits), convey.ShouldBeTrue)
				convey.So(doc.LastError(), convey.ShouldContainSubstring, "could not be converted")
			}
		})

		convey.Convey("lookup failures pass through", func() {
			_, err := doc.SectionInt("flags", "long")
			convey.So(errors.Is(err, ErrKeyNotFound), convey.ShouldBeTrue)
			convey.So(KindOf(err), convey.ShouldEqual, KindLookup)
		})
	})
}

func TestFloatConversion(t *testing.T) {
	convey.Convey("floats", t, func() {
		doc := load(numbersIni, Options{})

		d, err := doc.Float("double")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, 3.14)

		d, err = doc.SectionFloat(GlobalSection, "double_scientific")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, 2500.0)

		d, err = doc.Float("double_zero")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, 0.0)

		d, err = doc.Float("double_inf")
		convey.So(err, convey.ShouldBeNil)
		convey.So(math.IsInf(d, -1), convey.ShouldBeTrue)

		d, err = doc.Float("double_hex")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, 16.0)

		i, err := doc.Int("double_hex")
		convey.So(err, convey.ShouldBeNil)
		convey.So(float64(i), convey.ShouldEqual, d)

		d, err = doc.Float("double_hex_exp")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, -3.0)

		d, err = doc.Float("double_hex_bare")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, 0.0)

		d, err = doc.Float("long")
		convey.So(err, convey.ShouldBeNil)
		convey.So(d, convey.ShouldEqual, 7e7)

		_, err = doc.Float("double_too_big")
		convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)
		convey.So(doc.LastError(), convey.ShouldContainSubstring, "more than the maximum")

		_, err = doc.Float("double_too_small")
		convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)
		convey.So(doc.LastError(), convey.ShouldContainSubstring, "less than the minimum")

		_, err = doc.Float("double_underflow")
		convey.So(errors.Is(err, ErrRange), convey.ShouldBeTrue)
		convey.So(doc.LastError(), convey.ShouldContainSubstring, "outside the range")

		for _, key := range []string{"double_no_digits", "long_blank", "long_no_digits"} {
			_, err = doc.Float(key)
			convey.So(errors.Is(err, ErrNoDigits), convey.ShouldBeTrue)
		}
	})
}

func TestBoolConversion(t *testing.T) {
	convey.Convey("booleans", t, func() {
		doc := load(numbersIni, Options{})

		cases := map[string]Bool{
			"bool1": BoolTrue,
			"bool2": BoolFalse,
			"bool3": BoolTrue,
			"bool4": BoolFalse,
			"bool5": BoolTrue,
			"bool6": BoolTrue,
		}
		for key, want := range cases {
			got, err := doc.SectionBool("flags", key)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, want)
			convey.So(doc.HasError(), convey.ShouldBeFalse)
		}

		for _, key := range []string{"bool_blank", "bool_not_parsable"} {
			got, err := doc.Bool(key)
			convey.So(got, convey.ShouldEqual, BoolInvalid)
			convey.So(errors.Is(err, ErrInvalidBool), convey.ShouldBeTrue)
			convey.So(doc.HasError(), convey.ShouldBeTrue)
		}

		got, err := doc.Bool("missing")
		convey.So(got, convey.ShouldEqual, BoolInvalid)
		convey.So(errors.Is(err, ErrKeyNotFound), convey.ShouldBeTrue)

		convey.So(BoolTrue.Value(), convey.ShouldBeTrue)
		convey.So(BoolInvalid.Value(), convey.ShouldBeFalse)
		convey.So(BoolInvalid.String(), convey.ShouldEqual, "invalid")
	})
}

func TestNumericPrefixes(t *testing.T) {
	convey.Convey("integer prefixes follow strtol base detection", t, func() {
		digits, base, neg, ok := integerPrefix("  -0x1fz")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(digits, convey.ShouldEqual, "1f")
		convey.So(base, convey.ShouldEqual, 16)
		convey.So(neg, convey.ShouldBeTrue)

		digits, base, _, ok = integerPrefix("0x")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(digits, convey.ShouldEqual, "0")
		convey.So(base, convey.ShouldEqual, 8)

		_, _, _, ok = integerPrefix("+")
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("float prefixes stop before a dangling exponent", t, func() {
		num, nonZero, ok := floatPrefix("1.5e+")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(num, convey.ShouldEqual, "1.5")
		convey.So(nonZero, convey.ShouldBeTrue)

		num, nonZero, ok = floatPrefix("0x1Fq")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(num, convey.ShouldEqual, "0x1Fp0")
		convey.So(nonZero, convey.ShouldBeTrue)

		num, _, ok = floatPrefix("+0x.8P-1,")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(num, convey.ShouldEqual, "+0x.8P-1")

		num, _, ok = floatPrefix(" nan!")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(strings.ToLower(num), convey.ShouldEqual, "nan")
	})
}
