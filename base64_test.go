package transcode

import (
	"errors"
	"testing"
)

func TestEncodeBase64(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Hello", "SGVsbG8="},
		{"Hi", "SGk="},
		{"abc", "YWJj"},
		{"", ""},
		{"é", "w6k="},
		{"🎉", "8J+OiQ=="},
		{"\xff", "77+9"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := EncodeBase64(tt.text); got != tt.want {
				t.Errorf("EncodeBase64(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SGVsbG8=", "Hello"},
		{"SGVsbG8", "Hello"},
		{"SGk=", "Hi"},
		{"SGk", "Hi"},
		{"YWJj", "abc"},
		{"w6k=", "é"},
		{"8J+OiQ==", "🎉"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DecodeBase64(tt.input)
			if err != nil {
				t.Fatalf("DecodeBase64(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DecodeBase64(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeBase64_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"illegal character", "SGV$bG8=", ErrInvalidFormat},
		{"whitespace", "SGVs bG8=", ErrInvalidFormat},
		{"three pad characters", "SG===", ErrInvalidFormat},
		{"pad in the middle", "SG=VsbG8", ErrInvalidFormat},
		{"pad on unaligned length", "SGk==", ErrInvalidBase64},
		{"single trailing character", "SGVsb", ErrInvalidBase64},
		{"not utf-8", "/w==", ErrInvalidBase64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBase64(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeBase64(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	inputs := []string{
		printableASCII,
		"héllo wörld",
		"日本語のテキスト",
		"emoji 🎉🔥💧 mix",
		"line\nbreaks\tand\x00nul",
	}

	for _, in := range inputs {
		got, err := DecodeBase64(EncodeBase64(in))
		if err != nil {
			t.Fatalf("DecodeBase64(EncodeBase64(%q)) error: %v", in, err)
		}
		if got != in {
			t.Errorf("round-trip = %q, want %q", got, in)
		}
	}
}
