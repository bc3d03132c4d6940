// Package payload detects and decodes the input shapes accepted by the
// release-note pipeline.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Shape identifies which of the supported input forms a payload takes.
type Shape int

const (
	// ShapeUnknown indicates an empty or undecodable payload.
	ShapeUnknown Shape = iota

	// ShapeStorageDocument is a JSON object whose body.storage.value holds
	// the markup document — the primary Confluence export shape.
	ShapeStorageDocument

	// ShapeRecordArray is a JSON array of already-structured record
	// objects, passed through parsing unchanged.
	ShapeRecordArray

	// ShapeRawMarkup is a markup document with no JSON envelope.
	ShapeRawMarkup
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeStorageDocument:
		return "StorageDocument"
	case ShapeRecordArray:
		return "RecordArray"
	case ShapeRawMarkup:
		return "RawMarkup"
	default:
		return "Unknown"
	}
}

// Payload is a decoded input. Exactly one of Document or Records is
// populated, according to Shape.
type Payload struct {
	Shape    Shape
	Document string
	Records  []map[string]interface{}
}

// Decode detects the payload shape and decodes its content.
//
// Detection order follows the input contract: a JSON decode is attempted
// first; an object carrying body.storage.value or an array of objects wins.
// Anything else — including malformed JSON — is treated as raw markup, so
// decoding never fails on document content, only on unreadable bytes.
func Decode(data []byte) (Payload, error) {
	text, err := normalizeEncoding(data)
	if err != nil {
		return Payload{}, fmt.Errorf("decoding payload text: %w", err)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Payload{Shape: ShapeUnknown}, nil
	}

	switch trimmed[0] {
	case '{':
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			if doc, ok := storageValue(obj); ok {
				return Payload{Shape: ShapeStorageDocument, Document: doc}, nil
			}
		}
	case '[':
		var items []map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return Payload{Shape: ShapeRecordArray, Records: items}, nil
		}
	}

	return Payload{Shape: ShapeRawMarkup, Document: text}, nil
}

// DecodeReader decodes a payload from a reader, honoring any charset
// declared in an HTML meta tag or content-type hint.
func DecodeReader(r io.Reader, contentType string) (Payload, error) {
	cr, err := charset.NewReader(r, contentType)
	if err != nil {
		return Payload{}, fmt.Errorf("detecting charset: %w", err)
	}
	data, err := io.ReadAll(cr)
	if err != nil {
		return Payload{}, fmt.Errorf("reading payload: %w", err)
	}
	return Decode(data)
}

// storageValue digs body.storage.value out of a decoded export object.
func storageValue(obj map[string]interface{}) (string, bool) {
	body, ok := obj["body"].(map[string]interface{})
	if !ok {
		return "", false
	}
	storage, ok := body["storage"].(map[string]interface{})
	if !ok {
		return "", false
	}
	value, ok := storage["value"].(string)
	return value, ok
}

// normalizeEncoding converts the raw bytes to UTF-8, honoring and stripping
// any UTF-8/UTF-16 byte-order mark. Exports routinely carry a BOM that
// would otherwise break JSON detection.
func normalizeEncoding(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(bytes.ToValidUTF8(out, []byte("�"))), nil
}
