package transcode

import (
	"strconv"
	"strings"
)

// EncodeHex writes each code point in hexadecimal with no fixed width.
func EncodeHex(text string, hc HexCase) string {
	runes := []rune(text)
	codes := make([]string, len(runes))
	for i, r := range runes {
		h := strconv.FormatInt(int64(r), 16)
		if hc == HexUpper {
			h = strings.ToUpper(h)
		}
		codes[i] = h
	}
	return strings.Join(codes, " ")
}

// DecodeHex reads digit pairs, with or without whitespace, as byte values.
// Each pair becomes the code point of that byte, so only U+0000 to U+00FF
// can be produced.
func DecodeHex(s string) (string, error) {
	clean := stripSpace(s)
	for _, r := range clean {
		if !isHexDigit(r) {
			return "", newConversionError(ErrInvalidCharacter, string(r), "use only 0-9, A-F, a-f")
		}
	}
	if len(clean)%2 != 0 {
		return "", newConversionError(ErrOddLength, clean[len(clean)-1:], "hex string must have an even number of characters")
	}

	out := make([]rune, 0, len(clean)/2)
	for i := 0; i < len(clean); i += 2 {
		v, err := strconv.ParseUint(clean[i:i+2], 16, 8)
		if err != nil {
			return "", newConversionError(ErrInvalidCharacter, clean[i:i+2], err.Error())
		}
		out = append(out, rune(v))
	}
	return string(out), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

type hexCodec struct{}

func (hexCodec) Representation() Representation { return RepHex }

func (hexCodec) Encode(text string, opts Options) (string, error) {
	return EncodeHex(text, opts.withDefaults().HexCase), nil
}

func (hexCodec) Decode(s string, _ Options) (string, error) {
	return DecodeHex(s)
}
