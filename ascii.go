package transcode

import (
	"strconv"
	"strings"
)

// EncodeASCII writes the decimal code point of each character, space separated.
func EncodeASCII(text string) string {
	runes := []rune(text)
	codes := make([]string, len(runes))
	for i, r := range runes {
		codes[i] = strconv.Itoa(int(r))
	}
	return strings.Join(codes, " ")
}

// DecodeASCII parses whitespace separated decimal codes in [0, 127].
func DecodeASCII(s string) (string, error) {
	tokens := fields(s)
	if len(tokens) == 0 {
		return "", newConversionError(ErrValueOutOfRange, "", "ASCII input is empty")
	}
	out := make([]rune, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > 127 {
			return "", newConversionError(ErrValueOutOfRange, tok, "must be between 0 and 127")
		}
		out[i] = rune(n)
	}
	return string(out), nil
}

type asciiCodec struct{}

func (asciiCodec) Representation() Representation { return RepASCII }

func (asciiCodec) Encode(text string, _ Options) (string, error) {
	return EncodeASCII(text), nil
}

func (asciiCodec) Decode(s string, _ Options) (string, error) {
	return DecodeASCII(s)
}
