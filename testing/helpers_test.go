package testing

import (
	"testing"

	"github.com/zoobzio/transcode"
)

func TestPrintableASCII(t *testing.T) {
	s := PrintableASCII()
	if len(s) != 95 {
		t.Errorf("PrintableASCII() length = %d, want 95", len(s))
	}
	if s[0] != ' ' || s[len(s)-1] != '~' {
		t.Errorf("PrintableASCII() bounds = %q..%q", s[0], s[len(s)-1])
	}
}

func TestMorseText(t *testing.T) {
	for _, r := range MorseText() {
		if r == ' ' {
			continue
		}
		if _, ok := transcode.MorseCode(r); !ok {
			t.Errorf("MorseText() contains %q which has no Morse code", r)
		}
	}
}

func TestFormats(t *testing.T) {
	formats := Formats()
	if len(formats) != 5 {
		t.Errorf("Formats() returned %d providers, want 5", len(formats))
	}
	for name, f := range formats {
		if f == nil {
			t.Errorf("Formats()[%q] is nil", name)
		}
	}
}

func TestFormatNames(t *testing.T) {
	want := []string{"bson", "json", "msgpack", "xml", "yaml"}
	got := FormatNames()
	if len(got) != len(want) {
		t.Fatalf("FormatNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FormatNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	got := RoundTrip(t, transcode.TextToHex, "hello", transcode.Options{})
	if got != "hello" {
		t.Errorf("RoundTrip() = %q, want %q", got, "hello")
	}
}

func TestEncodingModes(t *testing.T) {
	modes := EncodingModes()
	if len(modes) != 6 {
		t.Errorf("EncodingModes() returned %d modes, want 6", len(modes))
	}
	for _, m := range modes {
		if m.From() != transcode.RepText {
			t.Errorf("EncodingModes() contains %q", m)
		}
	}
}
