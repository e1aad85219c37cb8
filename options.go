package transcode

import "strconv"

// BitWidth is the group width used by the binary codec.
type BitWidth int

const (
	// BitWidth7 renders 7-bit groups and rejects decoded values above 127.
	BitWidth7 BitWidth = 7

	// BitWidth8 renders 8-bit groups.
	BitWidth8 BitWidth = 8
)

// HexCase selects letter case for hex output.
type HexCase string

const (
	HexLower HexCase = "lower"
	HexUpper HexCase = "upper"
)

// EmojiPreset names one of the emoji substitution tables.
type EmojiPreset string

const (
	// PresetLetters maps single letters, replacing every letter in the input.
	PresetLetters EmojiPreset = "letters"

	// PresetWords maps common whole words.
	PresetWords EmojiPreset = "words"

	// PresetCustom maps greetings and gestures.
	PresetCustom EmojiPreset = "custom"
)

// validBitWidths contains all valid bit widths for option validation.
var validBitWidths = map[BitWidth]bool{
	BitWidth7: true,
	BitWidth8: true,
}

// validHexCases contains all valid hex cases for option validation.
var validHexCases = map[HexCase]bool{
	HexLower: true,
	HexUpper: true,
}

// validEmojiPresets contains all valid presets for option validation.
var validEmojiPresets = map[EmojiPreset]bool{
	PresetLetters: true,
	PresetWords:   true,
	PresetCustom:  true,
}

// IsValidBitWidth returns true if w is 7 or 8.
func IsValidBitWidth(w BitWidth) bool {
	return validBitWidths[w]
}

// IsValidHexCase returns true if c is a known hex case.
func IsValidHexCase(c HexCase) bool {
	return validHexCases[c]
}

// IsValidEmojiPreset returns true if p names a known preset.
func IsValidEmojiPreset(p EmojiPreset) bool {
	return validEmojiPresets[p]
}

// Options configures the codecs that need it. Fields not used by a mode
// are ignored. Zero fields fall back to DefaultOptions.
type Options struct {
	BitWidth    BitWidth    `json:"bit_width" yaml:"bit_width" msgpack:"bit_width" bson:"bit_width" xml:"bit_width"`
	HexCase     HexCase     `json:"hex_case" yaml:"hex_case" msgpack:"hex_case" bson:"hex_case" xml:"hex_case"`
	EmojiPreset EmojiPreset `json:"emoji_preset" yaml:"emoji_preset" msgpack:"emoji_preset" bson:"emoji_preset" xml:"emoji_preset"`
}

// DefaultOptions returns 8-bit binary, lowercase hex and the letters preset.
func DefaultOptions() Options {
	return Options{
		BitWidth:    BitWidth8,
		HexCase:     HexLower,
		EmojiPreset: PresetLetters,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BitWidth == 0 {
		o.BitWidth = d.BitWidth
	}
	if o.HexCase == "" {
		o.HexCase = d.HexCase
	}
	if o.EmojiPreset == "" {
		o.EmojiPreset = d.EmojiPreset
	}
	return o
}

// forMode applies defaults and resets every field m does not read to its
// default, so options that differ only in ignored fields compare equal.
func (o Options) forMode(m Mode) Options {
	o = o.withDefaults()
	n := DefaultOptions()
	switch m.codecRep() {
	case RepBinary:
		n.BitWidth = o.BitWidth
	case RepHex:
		if m.Encodes() {
			n.HexCase = o.HexCase
		}
	case RepEmoji:
		n.EmojiPreset = o.EmojiPreset
	}
	return n
}

// Validate checks the fields the given mode consumes.
func (o Options) Validate(m Mode) error {
	if !IsValidMode(m) {
		return newConfigError(ErrUnknownMode, "mode", string(m))
	}
	o = o.withDefaults()
	switch m.codecRep() {
	case RepBinary:
		if !IsValidBitWidth(o.BitWidth) {
			return newConfigError(ErrInvalidOption, "bit_width", strconv.Itoa(int(o.BitWidth)))
		}
	case RepHex:
		if m.Encodes() && !IsValidHexCase(o.HexCase) {
			return newConfigError(ErrInvalidOption, "hex_case", string(o.HexCase))
		}
	case RepEmoji:
		if !IsValidEmojiPreset(o.EmojiPreset) {
			return newConfigError(ErrInvalidOption, "emoji_preset", string(o.EmojiPreset))
		}
	}
	return nil
}
