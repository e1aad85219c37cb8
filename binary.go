package transcode

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeBinary renders each code point in base 2, zero padded to width.
// Code points wider than width keep all their digits, so the group grows
// instead of being truncated.
func EncodeBinary(text string, width BitWidth) string {
	if width == 0 {
		width = BitWidth8
	}
	var b strings.Builder
	b.Grow(len(text) * (int(width) + 1))
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		digits := strconv.FormatInt(int64(r), 2)
		for pad := int(width) - len(digits); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	}
	return b.String()
}

// DecodeBinary parses space separated 7 or 8 bit groups back into text.
// Under BitWidth7 every group must fit in 7 bits, so an 8-digit group above
// 127 such as "11111111" is rejected even though BitWidth8 accepts it.
func DecodeBinary(s string, width BitWidth) (string, error) {
	clean := collapseSpace(s)
	if clean == "" {
		return "", newConversionError(ErrInvalidCharacter, "", "binary input is empty")
	}
	for _, r := range clean {
		if r != '0' && r != '1' && r != ' ' {
			return "", newConversionError(ErrInvalidCharacter, string(r), "only 0s, 1s, and spaces are allowed")
		}
	}

	groups := strings.Split(clean, " ")
	out := make([]rune, 0, len(groups))
	for _, group := range groups {
		if len(group) < 7 || len(group) > 8 {
			return "", newConversionError(ErrInvalidGroupLength, group, "expected 7 or 8 bits")
		}
		value, err := strconv.ParseUint(group, 2, 8)
		if err != nil {
			return "", newConversionError(ErrInvalidCharacter, group, err.Error())
		}
		if value > 127 && (len(group) == 7 || width == BitWidth7) {
			return "", newConversionError(ErrValueOutOfRange, group, fmt.Sprintf("value %d exceeds 127", value))
		}
		out = append(out, rune(value))
	}
	return string(out), nil
}

type binaryCodec struct{}

func (binaryCodec) Representation() Representation { return RepBinary }

func (binaryCodec) Encode(text string, opts Options) (string, error) {
	return EncodeBinary(text, opts.withDefaults().BitWidth), nil
}

func (binaryCodec) Decode(s string, opts Options) (string, error) {
	return DecodeBinary(s, opts.withDefaults().BitWidth)
}
