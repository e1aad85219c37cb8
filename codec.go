package transcode

// Codec converts between plain text and one representation.
// Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Representation returns the non-text side of the codec (e.g., RepHex).
	Representation() Representation

	// Encode converts plain text into the representation.
	Encode(text string, opts Options) (string, error)

	// Decode converts the representation back into plain text.
	Decode(s string, opts Options) (string, error)
}

// codecs holds the builtin codec for each representation.
var codecs = map[Representation]Codec{
	RepBinary: binaryCodec{},
	RepBase64: base64Codec{},
	RepMorse:  morseCodec{},
	RepASCII:  asciiCodec{},
	RepHex:    hexCodec{},
	RepEmoji:  emojiCodec{},
}

// CodecFor returns the builtin codec for a representation.
func CodecFor(r Representation) (Codec, bool) {
	c, ok := codecs[r]
	return c, ok
}
