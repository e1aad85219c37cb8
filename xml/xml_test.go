package xml

import (
	"strings"
	"testing"

	"github.com/zoobzio/transcode"
)

func TestNew(t *testing.T) {
	f := New()
	if f == nil {
		t.Error("New() should return non-nil format")
	}
}

func TestContentType(t *testing.T) {
	f := New()
	if f.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", f.ContentType(), "application/xml")
	}
}

func TestResultRoundTrip(t *testing.T) {
	f := New()

	original := transcode.Result{
		Mode:         transcode.TextToMorse,
		Options:      transcode.DefaultOptions(),
		Input:        "SOS",
		Output:       "... --- ...",
		InputLength:  3,
		OutputLength: 11,
	}

	data, err := f.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored transcode.Result
	if err := f.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshal_SpecialCharacters(t *testing.T) {
	f := New()

	original := transcode.Result{
		Mode:   transcode.Base64ToText,
		Input:  "PGE+Jmk8L2E+",
		Output: "<a>&i</a>",
	}

	data, err := f.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if strings.Contains(string(data), "<a>&i</a>") {
		t.Errorf("Marshal() should escape markup in output, got %s", data)
	}

	var restored transcode.Result
	if err := f.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Output != original.Output {
		t.Errorf("Output = %q, want %q", restored.Output, original.Output)
	}
}

func TestMarshalNil(t *testing.T) {
	f := New()

	data, err := f.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	// XML represents nil as empty (no element)
	if len(data) != 0 {
		t.Errorf("Marshal(nil) = %q, want empty", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	f := New()

	var r transcode.Result
	err := f.Unmarshal([]byte("not xml at all {{{"), &r)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshal_EmptyInput(t *testing.T) {
	f := New()

	var r transcode.Result
	if err := f.Unmarshal([]byte{}, &r); err == nil {
		t.Error("Unmarshal(empty) should return error")
	}
}
