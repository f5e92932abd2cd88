// Package calibration recovers calibration values from lines of text: the
// first and last digit of each line, where digits may also be spelled out.
package calibration

import (
	"errors"
	"strings"
)

// ErrNoDigits is returned for a line that carries no digit at all.
var ErrNoDigits = errors.New("no digits in line")

type digitWord struct {
	word    string
	numeral byte
}

// digitWords is ordered longest first; the first match at a cursor wins.
var digitWords = []digitWord{
	{"three", '3'},
	{"seven", '7'},
	{"eight", '8'},
	{"four", '4'},
	{"five", '5'},
	{"nine", '9'},
	{"one", '1'},
	{"two", '2'},
	{"six", '6'},
}

// Normalize rewrites line as the stream of digits it contains, replacing
// spelled-out digit words with their numerals. After a word matches, the
// cursor advances to the word's last letter rather than past it, so words
// that share a letter ("twone", "oneight") are both found. Characters that
// are neither digits nor part of a word are dropped.
func Normalize(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		c := line[i]
		if isDigit(c) {
			b.WriteByte(c)
			i++
			continue
		}
		if w, ok := wordAt(line, i); ok {
			b.WriteByte(w.numeral)
			i += len(w.word) - 1
			continue
		}
		i++
	}
	return b.String()
}

func wordAt(line string, i int) (digitWord, bool) {
	rest := line[i:]
	for _, w := range digitWords {
		if strings.HasPrefix(rest, w.word) {
			return w, true
		}
	}
	return digitWord{}, false
}

// Digits returns only the ASCII digits of line, in order.
func Digits(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if isDigit(line[i]) {
			b.WriteByte(line[i])
		}
	}
	return b.String()
}

// LineValue combines the first and last digit of digits into a two-digit
// number. A single digit is used twice.
func LineValue(digits string) (int, error) {
	first := strings.IndexFunc(digits, isDigitRune)
	last := strings.LastIndexFunc(digits, isDigitRune)
	if first < 0 {
		return 0, ErrNoDigits
	}
	return 10*int(digits[first]-'0') + int(digits[last]-'0'), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }
