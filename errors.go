package transcode

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidCharacter indicates input outside the codec's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidGroupLength indicates a binary group that is not 7 or 8 bits.
	ErrInvalidGroupLength = errors.New("invalid group length")

	// ErrValueOutOfRange indicates a parsed number outside the codec's range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrOddLength indicates a hex string with an unpaired digit.
	ErrOddLength = errors.New("odd length")

	// ErrInvalidFormat indicates Base64 input with a malformed structure.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidBase64 indicates Base64 input that does not decode to text.
	ErrInvalidBase64 = errors.New("invalid base64")

	// ErrUnknownCode indicates a Morse token with no table entry.
	ErrUnknownCode = errors.New("unknown code")

	// ErrUnknownMode indicates an unsupported mode.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrInvalidOption indicates an option value outside its allowed set.
	ErrInvalidOption = errors.New("invalid option")

	// ErrMarshal indicates a format failed to marshal a result.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates a format failed to unmarshal a result.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// ConversionError reports input a codec could not convert.
// It wraps a sentinel error with the mode and the offending token.
type ConversionError struct {
	Err    error  // Underlying sentinel error (ErrInvalidCharacter, etc.)
	Mode   Mode   // Mode being converted, empty for direct codec calls
	Token  string // Offending token or substring, if any
	Detail string // Human readable explanation
}

func (e *ConversionError) Error() string {
	msg := e.Err.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Mode != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Mode)
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ConfigError represents an unknown mode or an invalid option value.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrUnknownMode, ErrInvalidOption)
	Option string // Option name, "mode" for mode errors
	Value  string // Rejected value
}

func (e *ConfigError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("%s %s %q", e.Err.Error(), e.Option, e.Value)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FormatError represents a result marshal/unmarshal error.
type FormatError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the format
	Cause       error  // Original error from the format
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// newConversionError creates a ConversionError for rejected input.
func newConversionError(sentinel error, token, detail string) error {
	return &ConversionError{
		Err:    sentinel,
		Token:  token,
		Detail: detail,
	}
}

// newConfigError creates a ConfigError for a rejected mode or option.
func newConfigError(sentinel error, option, value string) error {
	return &ConfigError{
		Err:    sentinel,
		Option: option,
		Value:  value,
	}
}

// newFormatError creates a FormatError for marshal/unmarshal failures.
func newFormatError(sentinel error, contentType string, cause error) error {
	return &FormatError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}

// withMode stamps the mode onto a ConversionError.
func withMode(err error, m Mode) error {
	var ce *ConversionError
	if errors.As(err, &ce) && ce.Mode == "" {
		cp := *ce
		cp.Mode = m
		return &cp
	}
	return err
}
