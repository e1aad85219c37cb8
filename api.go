// Package transcode converts text to and from simple encodings.
//
// The package offers six codecs, each a pair of pure functions with
// input validation: binary, Base64, Morse code, ASCII decimal, hexadecimal
// and emoji substitution. A Mode selects the codec and direction, and
// Options carries the few settings some codecs need.
//
// # Modes
//
// Modes are written "<from>-to-<to>". Every mode has an inverse:
//
//	text-to-binary  <-> binary-to-text
//	text-to-base64  <-> base64-to-text
//	text-to-morse   <-> morse-to-text
//	text-to-ascii   <-> ascii-to-text
//	text-to-hex     <-> hex-to-text
//	text-to-emoji   <-> emoji-to-text
//
// # Basic Usage
//
//	out, err := transcode.Convert(transcode.TextToBinary, "Hi", transcode.DefaultOptions())
//	// out == "01001000 01101001"
//
//	out, err = transcode.Convert(transcode.MorseToText, "... --- ...", transcode.Options{})
//	// out == "SOS"
//
// A Converter binds a mode and options once and emits capitan signals
// for each conversion:
//
//	conv, _ := transcode.Use(transcode.TextToHex, transcode.Options{HexCase: transcode.HexUpper})
//	out, err := conv.Convert(ctx, "«")
//	// out == "AB"
//
// # Options
//
//   - BitWidth: 7 or 8, binary codec (default 8)
//   - HexCase: lower or upper, hex encoding (default lower)
//   - EmojiPreset: letters, words or custom, emoji codec (default letters)
//
// # Errors
//
// Failures wrap a sentinel (ErrInvalidCharacter, ErrInvalidGroupLength,
// ErrValueOutOfRange, ErrOddLength, ErrInvalidFormat, ErrInvalidBase64,
// ErrUnknownCode, ErrUnknownMode, ErrInvalidOption). Input failures are
// *ConversionError and name the offending token. No partial output is
// returned alongside an error.
//
// # Known Limits
//
//   - Binary encoding keeps every digit of code points wider than the bit
//     width; such groups do not decode again.
//   - Hex decoding reads byte pairs, so only U+0000 to U+00FF round-trip.
//   - Emoji decoding is lossy where keys share a glyph; the last declared
//     key is produced.
//
// # Result Formats
//
// Results can be marshaled through the format providers in sub-packages:
//
//   - json - application/json
//   - xml - application/xml
//   - yaml - application/yaml
//   - msgpack - application/msgpack
//   - bson - application/bson
package transcode

import (
	"context"
	"time"
)

// LargeInputThreshold is the character count above which conversions emit
// SignalLargeInput. Large inputs are still converted.
const LargeInputThreshold = 10000

// Convert runs one conversion. Input that is empty or only whitespace
// yields an empty string.
func Convert(m Mode, input string, opts Options) (string, error) {
	if err := opts.Validate(m); err != nil {
		return "", err
	}
	return convert(m, input, opts)
}

// convert dispatches an already validated mode.
func convert(m Mode, input string, opts Options) (string, error) {
	if isBlank(input) {
		return "", nil
	}
	c, ok := codecs[m.codecRep()]
	if !ok {
		return "", newConfigError(ErrUnknownMode, "mode", string(m))
	}

	var (
		out string
		err error
	)
	if m.Encodes() {
		out, err = c.Encode(input, opts)
	} else {
		out, err = c.Decode(input, opts)
	}
	if err != nil {
		return "", withMode(err, m)
	}
	return out, nil
}

// Converter runs conversions for one mode and option set.
// Converters are immutable and safe for concurrent use.
type Converter struct {
	mode Mode
	opts Options
}

// NewConverter validates the mode and options and returns a Converter.
// Zero option fields are filled from DefaultOptions, and fields the mode
// does not read are reset to their defaults.
func NewConverter(m Mode, opts Options) (*Converter, error) {
	if err := opts.Validate(m); err != nil {
		return nil, err
	}
	c := &Converter{mode: m, opts: opts.forMode(m)}
	emitConverterCreated(context.Background(), m)
	return c, nil
}

// Mode returns the converter's mode.
func (c *Converter) Mode() Mode {
	return c.mode
}

// Options returns the options the converter runs with.
func (c *Converter) Options() Options {
	return c.opts
}

// Inverse returns a converter for the opposite direction with the same options.
func (c *Converter) Inverse() (*Converter, error) {
	inv, ok := c.mode.Inverse()
	if !ok {
		return nil, newConfigError(ErrUnknownMode, "mode", string(c.mode))
	}
	return NewConverter(inv, c.opts)
}

// Convert converts input and emits start and complete signals.
func (c *Converter) Convert(ctx context.Context, input string) (string, error) {
	size := runeCount(input)
	emitConvertStart(ctx, c.mode, size)
	if size > LargeInputThreshold {
		emitLargeInput(ctx, c.mode, size)
	}

	start := time.Now()
	out, err := convert(c.mode, input, c.opts)
	emitConvertComplete(ctx, c.mode, size, runeCount(out), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return out, nil
}

// Result converts input and wraps the outcome in a Result envelope.
func (c *Converter) Result(ctx context.Context, input string) (*Result, error) {
	out, err := c.Convert(ctx, input)
	if err != nil {
		return nil, err
	}
	return newResult(c.mode, c.opts, input, out), nil
}
