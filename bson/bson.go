// Package bson provides a BSON result format.
package bson

import (
	"github.com/zoobzio/transcode"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonFormat implements transcode.Format for BSON.
type bsonFormat struct{}

// New returns a BSON format.
func New() transcode.Format {
	return &bsonFormat{}
}

// ContentType returns the MIME type for BSON.
func (f *bsonFormat) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (f *bsonFormat) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (f *bsonFormat) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
