// Package testing provides test utilities for transcode.
package testing

import (
	"sort"
	"strings"
	"testing"

	"github.com/zoobzio/transcode"
	"github.com/zoobzio/transcode/bson"
	"github.com/zoobzio/transcode/json"
	"github.com/zoobzio/transcode/msgpack"
	"github.com/zoobzio/transcode/xml"
	"github.com/zoobzio/transcode/yaml"
)

// PrintableASCII returns every printable ASCII character, space through tilde.
func PrintableASCII() string {
	var b strings.Builder
	for r := rune(0x20); r <= 0x7e; r++ {
		b.WriteRune(r)
	}
	return b.String()
}

// MorseText returns text made only of characters with a Morse code,
// already uppercased so it survives a Morse round-trip unchanged.
func MorseText() string {
	return "THE QUICK BROWN FOX JUMPS OVER 13 LAZY DOGS. WHY? \"YES\" (OK) A+B=C @ $5 & 2/3!"
}

// Formats returns a fresh provider for every result format, keyed by name.
func Formats() map[string]transcode.Format {
	return map[string]transcode.Format{
		"json":    json.New(),
		"xml":     xml.New(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
	}
}

// FormatNames returns the keys of Formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, 5)
	for name := range Formats() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustConvert runs a conversion and fails the test on error.
func MustConvert(tb testing.TB, m transcode.Mode, input string, opts transcode.Options) string {
	tb.Helper()
	out, err := transcode.Convert(m, input, opts)
	if err != nil {
		tb.Fatalf("Convert(%s, %q) error: %v", m, input, err)
	}
	return out
}

// RoundTrip encodes text with m, decodes the result with the inverse mode
// and returns the decoded text. m must be an encoding mode.
func RoundTrip(tb testing.TB, m transcode.Mode, text string, opts transcode.Options) string {
	tb.Helper()
	inv, ok := m.Inverse()
	if !ok {
		tb.Fatalf("mode %q has no inverse", m)
	}
	encoded := MustConvert(tb, m, text, opts)
	return MustConvert(tb, inv, encoded, opts)
}

// EncodingModes returns the modes that convert from text.
func EncodingModes() []transcode.Mode {
	var out []transcode.Mode
	for _, m := range transcode.Modes() {
		if m.Encodes() {
			out = append(out, m)
		}
	}
	return out
}
