package transcode

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EmojiEntry maps one key to its glyph.
type EmojiEntry struct {
	Key   string
	Glyph string
}

// emojiTables declares each preset in priority order.
// Glyphs may repeat within a preset, which makes decoding lossy.
var emojiTables = map[EmojiPreset][]EmojiEntry{
	PresetLetters: {
		{"A", "🅰️"}, {"B", "🅱️"}, {"C", "©️"}, {"D", "🇩"},
		{"E", "📧"}, {"F", "🎏"}, {"G", "🇬"}, {"H", "🏨"},
		{"I", "ℹ️"}, {"J", "🎷"}, {"K", "🎋"}, {"L", "🇱"},
		{"M", "Ⓜ️"}, {"N", "🎵"}, {"O", "⭕"}, {"P", "🅿️"},
		{"Q", "🇶"}, {"R", "®️"}, {"S", "💰"}, {"T", "🆃"},
		{"U", "⛎"}, {"V", "♈"}, {"W", "〰️"}, {"X", "❌"},
		{"Y", "💴"}, {"Z", "💤"},
	},
	PresetWords: {
		{"love", "❤️"}, {"heart", "💖"}, {"fire", "🔥"}, {"water", "💧"},
		{"sun", "☀️"}, {"moon", "🌙"}, {"star", "⭐"}, {"earth", "🌍"},
		{"tree", "🌳"}, {"flower", "🌸"}, {"cat", "🐱"}, {"dog", "🐶"},
		{"happy", "😊"}, {"sad", "😢"}, {"angry", "😠"}, {"surprised", "😲"},
		{"cool", "😎"}, {"party", "🎉"}, {"music", "🎵"}, {"book", "📚"},
		{"phone", "📱"}, {"computer", "💻"}, {"car", "🚗"}, {"house", "🏠"},
		{"food", "🍕"}, {"coffee", "☕"}, {"beer", "🍺"}, {"pizza", "🍕"},
		{"money", "💰"}, {"time", "⏰"}, {"work", "💼"}, {"sleep", "😴"},
	},
	PresetCustom: {
		{"hello", "👋"}, {"goodbye", "👋"}, {"yes", "✅"}, {"no", "❌"},
		{"good", "👍"}, {"bad", "👎"}, {"ok", "👌"}, {"peace", "✌️"},
		{"rock", "🤘"}, {"thumb", "👍"}, {"clap", "👏"}, {"pray", "🙏"},
	},
}

// emojiPresetTable holds the lookup structures derived from one preset.
type emojiPresetTable struct {
	words   map[string]string // lowercase key -> glyph, first declared wins
	letters map[rune]string   // uppercase letter -> glyph, letters preset only
	reverse map[string]string // glyph -> key, last declared wins
	glyphs  []string          // reverse keys, longest first
}

var emojiPresets = make(map[EmojiPreset]*emojiPresetTable, len(emojiTables))

func init() {
	for preset, entries := range emojiTables {
		emojiPresets[preset] = buildEmojiPreset(preset, entries)
	}
}

func buildEmojiPreset(preset EmojiPreset, entries []EmojiEntry) *emojiPresetTable {
	t := &emojiPresetTable{
		words:   make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}
	if preset == PresetLetters {
		t.letters = make(map[rune]string, len(entries))
	}
	for _, e := range entries {
		lower := strings.ToLower(e.Key)
		if _, seen := t.words[lower]; !seen {
			t.words[lower] = e.Glyph
		}
		if t.letters != nil && utf8.RuneCountInString(e.Key) == 1 {
			r, _ := utf8.DecodeRuneInString(e.Key)
			if _, seen := t.letters[r]; !seen {
				t.letters[r] = e.Glyph
			}
		}
		t.reverse[e.Glyph] = e.Key
	}
	for g := range t.reverse {
		t.glyphs = append(t.glyphs, g)
	}
	sort.Slice(t.glyphs, func(i, j int) bool {
		if len(t.glyphs[i]) != len(t.glyphs[j]) {
			return len(t.glyphs[i]) > len(t.glyphs[j])
		}
		return t.glyphs[i] < t.glyphs[j]
	})
	return t
}

// EmojiEntries returns a copy of the preset's table in declaration order.
func EmojiEntries(p EmojiPreset) []EmojiEntry {
	entries := emojiTables[p]
	out := make([]EmojiEntry, len(entries))
	copy(out, entries)
	return out
}

// EncodeEmoji replaces whole words matching a preset key, ignoring case,
// with the key's glyph. Words are runs of ASCII letters, digits and
// underscores. The letters preset also replaces every remaining character
// whose uppercase form is a letter key.
func EncodeEmoji(text string, p EmojiPreset) (string, error) {
	t, ok := emojiPresets[p]
	if !ok {
		return "", newConfigError(ErrInvalidOption, "emoji_preset", string(p))
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if isWordByte(text[i]) {
			j := i + 1
			for j < len(text) && isWordByte(text[j]) {
				j++
			}
			word := text[i:j]
			if glyph, ok := t.words[strings.ToLower(word)]; ok {
				b.WriteString(glyph)
			} else {
				t.writeLetters(&b, word)
			}
			i = j
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		t.writeLetters(&b, text[i:i+size])
		i += size
	}
	return b.String(), nil
}

// writeLetters copies s, substituting letter glyphs when the preset has them.
func (t *emojiPresetTable) writeLetters(b *strings.Builder, s string) {
	if t.letters == nil {
		b.WriteString(s)
		return
	}
	for _, r := range s {
		if glyph, ok := t.letters[unicode.ToUpper(r)]; ok {
			b.WriteString(glyph)
			continue
		}
		b.WriteRune(r)
	}
}

// DecodeEmoji replaces every preset glyph with its key. When several keys
// share a glyph the last declared key is produced.
func DecodeEmoji(s string, p EmojiPreset) (string, error) {
	t, ok := emojiPresets[p]
	if !ok {
		return "", newConfigError(ErrInvalidOption, "emoji_preset", string(p))
	}

	var b strings.Builder
	b.Grow(len(s))
next:
	for i := 0; i < len(s); {
		for _, g := range t.glyphs {
			if strings.HasPrefix(s[i:], g) {
				b.WriteString(t.reverse[g])
				i += len(g)
				continue next
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String(), nil
}

// isWordByte reports whether c belongs to an ASCII word.
func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type emojiCodec struct{}

func (emojiCodec) Representation() Representation { return RepEmoji }

func (emojiCodec) Encode(text string, opts Options) (string, error) {
	return EncodeEmoji(text, opts.withDefaults().EmojiPreset)
}

func (emojiCodec) Decode(s string, opts Options) (string, error) {
	return DecodeEmoji(s, opts.withDefaults().EmojiPreset)
}
