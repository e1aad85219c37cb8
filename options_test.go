package transcode

import (
	"errors"
	"testing"
)

func TestIsValidBitWidth(t *testing.T) {
	tests := []struct {
		width BitWidth
		want  bool
	}{
		{BitWidth7, true},
		{BitWidth8, true},
		{16, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := IsValidBitWidth(tt.width); got != tt.want {
			t.Errorf("IsValidBitWidth(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestIsValidHexCase(t *testing.T) {
	tests := []struct {
		hc   HexCase
		want bool
	}{
		{HexLower, true},
		{HexUpper, true},
		{"title", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.hc), func(t *testing.T) {
			if got := IsValidHexCase(tt.hc); got != tt.want {
				t.Errorf("IsValidHexCase(%q) = %v, want %v", tt.hc, got, tt.want)
			}
		})
	}
}

func TestIsValidEmojiPreset(t *testing.T) {
	tests := []struct {
		preset EmojiPreset
		want   bool
	}{
		{PresetLetters, true},
		{PresetWords, true},
		{PresetCustom, true},
		{"flags", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			if got := IsValidEmojiPreset(tt.preset); got != tt.want {
				t.Errorf("IsValidEmojiPreset(%q) = %v, want %v", tt.preset, got, tt.want)
			}
		})
	}
}

func TestOptions_WithDefaults(t *testing.T) {
	got := Options{HexCase: HexUpper}.withDefaults()
	want := Options{BitWidth: BitWidth8, HexCase: HexUpper, EmojiPreset: PresetLetters}
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		mode       Mode
		wantErr    error
		wantOption string
	}{
		{"zero options", Options{}, TextToBinary, nil, ""},
		{"bad width for binary", Options{BitWidth: 16}, TextToBinary, ErrInvalidOption, "bit_width"},
		{"bad width on decode", Options{BitWidth: 6}, BinaryToText, ErrInvalidOption, "bit_width"},
		{"bad width ignored for hex", Options{BitWidth: 16}, TextToHex, nil, ""},
		{"bad case for hex encode", Options{HexCase: "title"}, TextToHex, ErrInvalidOption, "hex_case"},
		{"bad case ignored for hex decode", Options{HexCase: "title"}, HexToText, nil, ""},
		{"bad preset", Options{EmojiPreset: "flags"}, EmojiToText, ErrInvalidOption, "emoji_preset"},
		{"bad preset ignored for morse", Options{EmojiPreset: "flags"}, TextToMorse, nil, ""},
		{"unknown mode", Options{}, "text-to-rot13", ErrUnknownMode, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate(tt.mode)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error should be *ConfigError, got %T", err)
			}
			if cfgErr.Option != tt.wantOption {
				t.Errorf("Option = %q, want %q", cfgErr.Option, tt.wantOption)
			}
		})
	}
}

func TestOptions_ForMode(t *testing.T) {
	junk := Options{BitWidth: 3, HexCase: "junk", EmojiPreset: "junk"}
	d := DefaultOptions()

	tests := []struct {
		name string
		opts Options
		mode Mode
		want Options
	}{
		{"base64 reads nothing", junk, TextToBase64, d},
		{"morse reads nothing", junk, MorseToText, d},
		{"binary keeps width", Options{BitWidth: BitWidth7, HexCase: "junk"}, BinaryToText, Options{BitWidth: BitWidth7, HexCase: HexLower, EmojiPreset: PresetLetters}},
		{"hex encode keeps case", Options{HexCase: HexUpper, EmojiPreset: "junk"}, TextToHex, Options{BitWidth: BitWidth8, HexCase: HexUpper, EmojiPreset: PresetLetters}},
		{"hex decode drops case", Options{HexCase: HexUpper}, HexToText, d},
		{"emoji keeps preset", Options{EmojiPreset: PresetWords, BitWidth: 3}, EmojiToText, Options{BitWidth: BitWidth8, HexCase: HexLower, EmojiPreset: PresetWords}},
		{"zero fields default", Options{}, TextToBinary, d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.forMode(tt.mode); got != tt.want {
				t.Errorf("forMode(%s) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}
