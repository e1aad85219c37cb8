// Package xml provides a XML result format.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/transcode"
)

// xmlFormat implements transcode.Format for XML.
type xmlFormat struct{}

// New returns a XML format.
func New() transcode.Format {
	return &xmlFormat{}
}

// ContentType returns the MIME type for XML.
func (f *xmlFormat) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (f *xmlFormat) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (f *xmlFormat) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
