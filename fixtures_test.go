package transcode

import "strings"

// printableASCII holds every printable ASCII character, space through tilde.
var printableASCII = func() string {
	var b strings.Builder
	for r := rune(0x20); r <= 0x7e; r++ {
		b.WriteRune(r)
	}
	return b.String()
}()
