package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/transcode"
	"github.com/zoobzio/transcode/bson"
	"github.com/zoobzio/transcode/json"
	"github.com/zoobzio/transcode/msgpack"
	"github.com/zoobzio/transcode/xml"
	"github.com/zoobzio/transcode/yaml"
)

// formatText prints the converted output alone.
const formatText = "text"

var formats = map[string]func() transcode.Format{
	"json":    json.New,
	"xml":     xml.New,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
}

// formatFor returns the provider for name, or nil for plain text.
func formatFor(name string) (transcode.Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == formatText || name == "" {
		return nil, nil
	}
	newFormat, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: format %q (want one of %s)", transcode.ErrInvalidOption, name, strings.Join(formatNames(), ", "))
	}
	return newFormat(), nil
}

func formatNames() []string {
	names := []string{formatText}
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// isBinaryFormat reports whether a content type is not printable text.
func isBinaryFormat(f transcode.Format) bool {
	switch f.ContentType() {
	case "application/msgpack", "application/bson":
		return true
	}
	return false
}
