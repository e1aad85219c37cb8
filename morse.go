package transcode

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// morseWordSeparator stands for a space between words.
const morseWordSeparator = "/"

// morseCodes declares the Morse alphabet. Both lookup maps are built from it.
var morseCodes = []struct {
	char rune
	code string
}{
	// Letters
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},

	// Numbers
	{'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"}, {'5', "....."},
	{'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."}, {'0', "-----"},

	// Punctuation
	{',', "--..--"}, {'.', ".-.-.-"}, {'?', "..--.."}, {'\'', ".----."},
	{'!', "-.-.--"}, {'/', "-..-."}, {'(', "-.--."}, {')', "-.--.-"},
	{'&', ".-..."}, {':', "---..."}, {';', "-.-.-."}, {'=', "-...-"},
	{'+', ".-.-."}, {'-', "-....-"}, {'_', "..--.-"}, {'"', ".-..-."},
	{'$', "...-..-"}, {'@', ".--.-."},
}

var (
	charToMorse = make(map[rune]string, len(morseCodes))
	morseToChar = make(map[string]rune, len(morseCodes))
)

func init() {
	for _, e := range morseCodes {
		charToMorse[e.char] = e.code
		morseToChar[e.code] = e.char
	}
}

// MorseCode returns the code for an uppercase character.
func MorseCode(r rune) (string, bool) {
	code, ok := charToMorse[r]
	return code, ok
}

// EncodeMorse uppercases text and replaces each character with its code.
// Spaces become "/" and characters without a code pass through unchanged.
func EncodeMorse(text string) string {
	upper := cases.Upper(language.Und).String(text)
	tokens := make([]string, 0, len(upper))
	for _, r := range upper {
		switch code, ok := charToMorse[r]; {
		case r == ' ':
			tokens = append(tokens, morseWordSeparator)
		case ok:
			tokens = append(tokens, code)
		default:
			tokens = append(tokens, string(r))
		}
	}
	return collapseSpace(strings.Join(tokens, " "))
}

// DecodeMorse turns dot/dash codes back into uppercase text.
// Words are separated by "/" and codes by whitespace.
func DecodeMorse(s string) (string, error) {
	if s == "" {
		return "", newConversionError(ErrInvalidCharacter, "", "Morse input is empty")
	}
	for _, r := range s {
		if r != '.' && r != '-' && r != '/' && !isSpace(r) {
			return "", newConversionError(ErrInvalidCharacter, string(r), "use only dots (.), dashes (-), spaces, and forward slashes (/)")
		}
	}

	words := strings.Split(s, morseWordSeparator)
	out := make([]string, len(words))
	for i, word := range words {
		var b strings.Builder
		for _, code := range fields(word) {
			char, ok := morseToChar[code]
			if !ok {
				return "", newConversionError(ErrUnknownCode, code, "no Morse character for this code")
			}
			b.WriteRune(char)
		}
		out[i] = b.String()
	}
	return strings.Join(out, " "), nil
}

type morseCodec struct{}

func (morseCodec) Representation() Representation { return RepMorse }

func (morseCodec) Encode(text string, _ Options) (string, error) {
	return EncodeMorse(text), nil
}

func (morseCodec) Decode(s string, _ Options) (string, error) {
	return DecodeMorse(s)
}
