package transcode

import (
	"context"
	"fmt"
	"time"
)

// Format provides content-type aware marshaling for conversion results.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Result is the envelope a caller stores, prints or ships after a conversion.
// Lengths count characters, not bytes.
type Result struct {
	Mode         Mode    `json:"mode" yaml:"mode" msgpack:"mode" bson:"mode" xml:"mode"`
	Options      Options `json:"options" yaml:"options" msgpack:"options" bson:"options" xml:"options"`
	Input        string  `json:"input" yaml:"input" msgpack:"input" bson:"input" xml:"input"`
	Output       string  `json:"output" yaml:"output" msgpack:"output" bson:"output" xml:"output"`
	InputLength  int     `json:"input_length" yaml:"input_length" msgpack:"input_length" bson:"input_length" xml:"input_length"`
	OutputLength int     `json:"output_length" yaml:"output_length" msgpack:"output_length" bson:"output_length" xml:"output_length"`
}

// newResult builds a Result with character counts filled in.
func newResult(m Mode, opts Options, input, output string) *Result {
	return &Result{
		Mode:         m,
		Options:      opts,
		Input:        input,
		Output:       output,
		InputLength:  runeCount(input),
		OutputLength: runeCount(output),
	}
}

// MarshalResult encodes r with f.
func MarshalResult(ctx context.Context, f Format, r *Result) ([]byte, error) {
	data, err := f.Marshal(r)
	if err != nil {
		err = newFormatError(ErrMarshal, f.ContentType(), err)
		emitResultMarshaled(ctx, r.Mode, f.ContentType(), 0, err)
		return nil, err
	}
	emitResultMarshaled(ctx, r.Mode, f.ContentType(), len(data), nil)
	return data, nil
}

// UnmarshalResult decodes data produced by MarshalResult with the same format.
func UnmarshalResult(f Format, data []byte) (*Result, error) {
	var r Result
	if err := f.Unmarshal(data, &r); err != nil {
		return nil, newFormatError(ErrUnmarshal, f.ContentType(), err)
	}
	return &r, nil
}

// Filename returns the name used when saving output: converted_<target>_<unix millis>.txt.
func Filename(m Mode, t time.Time) string {
	return fmt.Sprintf("converted_%s_%d.txt", m.To(), t.UnixMilli())
}
