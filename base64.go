package transcode

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// base64Alphabet is the standard Base64 alphabet, index = 6-bit value.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// EncodeBase64 encodes the UTF-8 bytes of text with the standard alphabet
// and = padding. Invalid UTF-8 sequences are replaced with U+FFFD first.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.ToValidUTF8(text, "\uFFFD")))
}

// DecodeBase64 decodes standard Base64 into UTF-8 text.
//
// Input must be alphabet characters followed by at most two = characters,
// otherwise ErrInvalidFormat. Padding is only stripped when the length is
// a multiple of four; unpadded input is accepted. Anything that still does
// not decode, or decodes to invalid UTF-8, is ErrInvalidBase64.
func DecodeBase64(s string) (string, error) {
	body := strings.TrimRight(s, "=")
	if len(s)-len(body) > 2 {
		return "", newConversionError(ErrInvalidFormat, "", "more than two padding characters")
	}
	if i := strings.IndexFunc(body, func(r rune) bool { return !strings.ContainsRune(base64Alphabet, r) }); i >= 0 {
		r, _ := utf8.DecodeRuneInString(body[i:])
		return "", newConversionError(ErrInvalidFormat, string(r), "not a Base64 character")
	}

	if len(s)%4 != 0 && len(body) != len(s) {
		return "", newConversionError(ErrInvalidBase64, "", "padding on a length that is not a multiple of 4")
	}
	if len(body)%4 == 1 {
		return "", newConversionError(ErrInvalidBase64, "", "truncated final group")
	}

	data, err := base64.RawStdEncoding.DecodeString(body)
	if err != nil {
		return "", newConversionError(ErrInvalidBase64, "", err.Error())
	}
	if !utf8.Valid(data) {
		return "", newConversionError(ErrInvalidBase64, "", "decoded bytes are not valid UTF-8")
	}
	return string(data), nil
}

type base64Codec struct{}

func (base64Codec) Representation() Representation { return RepBase64 }

func (base64Codec) Encode(text string, _ Options) (string, error) {
	return EncodeBase64(text), nil
}

func (base64Codec) Decode(s string, _ Options) (string, error) {
	return DecodeBase64(s)
}
