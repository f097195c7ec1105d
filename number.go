// seehuhn.de/go/glyphseg - decompose glyph outlines into x-monotone segments
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyphseg

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// defaultPrecision is the number of decimal places all coordinates
	// are rounded to before any derived quantity is computed.
	defaultPrecision = 6

	// defaultSignificantDigits is the number of significant digits kept
	// by FormatNum.
	defaultSignificantDigits = 12
)

// Round rounds x to the given number of decimal places.
//
// Halfway cases are rounded away from zero.  Ties are decided using the
// exact binary value of x, so that for example 0.125 rounds to 0.13 while
// 1.005 (which is stored as 1.00499999999999989...) rounds to 1.
// NaN and infinite values are returned unchanged.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	return parseFloat(toFixed(x, max(places, 0)))
}

// toFixed formats x in fixed-point notation with the given number of
// fractional digits, rounding halfway cases away from zero.
func toFixed(x float64, places int) string {
	ax := math.Abs(x)
	s, tie := exactTie(ax, places)
	if !tie {
		// Away from ties, correct rounding is unambiguous.
		return strconv.FormatFloat(x, 'f', places, 64)
	}

	// s has exactly places+1 fractional digits, the last one being 5.
	digits := strings.Replace(s[:len(s)-1], ".", "", 1)
	digits = incDecimal(digits)
	if places > 0 {
		k := len(digits) - places
		digits = digits[:k] + "." + digits[k:]
	}
	if x < 0 {
		return "-" + digits
	}
	return digits
}

// exactTie reports whether ax lies exactly halfway between two multiples
// of 10^-places.  If so, the exact decimal expansion of ax is returned.
func exactTie(ax float64, places int) (string, bool) {
	s := strconv.FormatFloat(ax, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 != places+1 || s[len(s)-1] != '5' {
		return "", false
	}

	// The shortest representation may differ from the exact value.
	exact, ok := new(big.Rat).SetString(s)
	if !ok || exact.Cmp(new(big.Rat).SetFloat64(ax)) != 0 {
		return "", false
	}
	return s, true
}

// incDecimal adds one to a string of decimal digits.
func incDecimal(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// pow10 returns the double closest to 10^e.
//
// math.Pow10 is not always correctly rounded, so the value is obtained by
// parsing the decimal literal instead.
func pow10(e int) float64 {
	return parseFloat("1e" + strconv.Itoa(e))
}

func parseFloat(s string) float64 {
	// Out of range values still come back as ±Inf or 0, which is what we want.
	x, _ := strconv.ParseFloat(s, 64)
	return x
}

// A Formatter converts numbers into the shortest of two canonical
// decimal encodings.
type Formatter struct {
	// SignificantDigits is the number of significant digits retained.
	// Values smaller than 1 select the default of 12.
	SignificantDigits int
}

// FormatNum formats x using the default number of significant digits.
func FormatNum(x float64) string {
	return Formatter{SignificantDigits: defaultSignificantDigits}.Format(x)
}

// Format returns the canonical text encoding of x.
//
// The mantissa of x is rounded to the configured number of significant
// digits.  Then both a scientific form ("1.2345678e-7") and a plain
// decimal form (".5", "123.456") are built and the shorter one is
// returned; if both have the same length the plain form is used.
// A leading zero before the decimal point is omitted.
func (f Formatter) Format(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	digits := f.SignificantDigits
	if digits < 1 {
		digits = defaultSignificantDigits
	}

	ax := math.Abs(x)
	exponent := int(math.Floor(math.Log10(ax)))
	if ax >= pow10(exponent+1) {
		exponent++
	} else if ax < pow10(exponent) {
		exponent--
	}

	mantissa := parseFloat(toFixed(ax/pow10(exponent), digits-1))
	mantissaStr := strconv.FormatFloat(mantissa, 'f', -1, 64)
	expStr := strconv.Itoa(exponent)

	scientific := mantissaStr + "e" + expStr

	expanded := strconv.FormatFloat(parseFloat(scientific), 'f', -1, 64)
	if len(expanded) > 1 && expanded[0] == '0' {
		expanded = expanded[1:]
	}

	res := expanded
	if len(scientific) < len(expanded) {
		res = scientific
	}
	if x < 0 {
		return "-" + res
	}
	return res
}
