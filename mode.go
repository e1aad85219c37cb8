package transcode

import "strings"

// Representation is one side of a conversion.
type Representation string

const (
	RepText   Representation = "text"
	RepBinary Representation = "binary"
	RepBase64 Representation = "base64"
	RepMorse  Representation = "morse"
	RepASCII  Representation = "ascii"
	RepHex    Representation = "hex"
	RepEmoji  Representation = "emoji"
)

// Mode selects a directed conversion, written "<from>-to-<to>".
// Use these constants rather than building strings by hand.
type Mode string

const (
	TextToBinary Mode = "text-to-binary"
	BinaryToText Mode = "binary-to-text"
	TextToBase64 Mode = "text-to-base64"
	Base64ToText Mode = "base64-to-text"
	TextToMorse  Mode = "text-to-morse"
	MorseToText  Mode = "morse-to-text"
	TextToASCII  Mode = "text-to-ascii"
	ASCIIToText  Mode = "ascii-to-text"
	TextToHex    Mode = "text-to-hex"
	HexToText    Mode = "hex-to-text"
	TextToEmoji  Mode = "text-to-emoji"
	EmojiToText  Mode = "emoji-to-text"
)

const modeSeparator = "-to-"

// modes lists every supported mode in display order.
var modes = []Mode{
	TextToBinary, BinaryToText,
	TextToBase64, Base64ToText,
	TextToMorse, MorseToText,
	TextToASCII, ASCIIToText,
	TextToHex, HexToText,
	TextToEmoji, EmojiToText,
}

// validModes contains all supported modes for lookup.
var validModes = func() map[Mode]bool {
	m := make(map[Mode]bool, len(modes))
	for _, mode := range modes {
		m[mode] = true
	}
	return m
}()

// modeHints are the one-line input descriptions shown to users.
var modeHints = map[Mode]string{
	TextToBinary: "Enter text to convert to binary",
	BinaryToText: "Enter binary (0s and 1s, separated by spaces)",
	TextToBase64: "Enter text to encode in Base64",
	Base64ToText: "Enter valid Base64 encoded string",
	TextToMorse:  "Enter text to convert to Morse code",
	MorseToText:  "Enter Morse code (dots, dashes, spaces, / for word breaks)",
	TextToASCII:  "Enter text to convert to ASCII codes",
	ASCIIToText:  "Enter ASCII codes (numbers separated by spaces)",
	TextToHex:    "Enter text to convert to hexadecimal",
	HexToText:    "Enter hexadecimal values (with or without spaces)",
	TextToEmoji:  "Enter text to convert using emoji mappings",
	EmojiToText:  "Enter emoji to convert back to text",
}

// Modes returns all supported modes in display order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// IsValidMode returns true if the mode is one of the twelve supported modes.
func IsValidMode(m Mode) bool {
	return validModes[m]
}

// ParseMode validates s and returns it as a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidMode(m) {
		return "", newConfigError(ErrUnknownMode, "mode", s)
	}
	return m, nil
}

// From returns the source representation.
func (m Mode) From() Representation {
	from, _, _ := strings.Cut(string(m), modeSeparator)
	return Representation(from)
}

// To returns the target representation.
func (m Mode) To() Representation {
	_, to, _ := strings.Cut(string(m), modeSeparator)
	return Representation(to)
}

// Inverse returns the mode converting in the opposite direction.
// Every supported mode has a supported inverse; ok is false for unknown modes.
func (m Mode) Inverse() (Mode, bool) {
	if !IsValidMode(m) {
		return "", false
	}
	inv := Mode(string(m.To()) + modeSeparator + string(m.From()))
	return inv, IsValidMode(inv)
}

// Encodes reports whether the mode turns plain text into a representation.
func (m Mode) Encodes() bool {
	return m.From() == RepText
}

// Hint returns the input description for the mode.
func (m Mode) Hint() string {
	if h, ok := modeHints[m]; ok {
		return h
	}
	return "Enter text to convert"
}

// codecRep returns the non-text side of the mode.
func (m Mode) codecRep() Representation {
	if m.Encodes() {
		return m.To()
	}
	return m.From()
}
