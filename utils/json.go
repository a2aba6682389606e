//go:build !purego

package utils

import (
	gojson "github.com/goccy/go-json" //nolint:depguard
)

var encodeOptions = []gojson.EncodeOptionFunc{gojson.DisableHTMLEscape()}

func MarshalJSON(val any) ([]byte, error) {
	return gojson.MarshalWithOption(val, encodeOptions...)
}

func MarshalJSONIndent(val any, indent string) ([]byte, error) {
	return gojson.MarshalIndentWithOption(val, "", indent, encodeOptions...)
}

func UnmarshalJSON(data []byte, val any) error {
	return gojson.UnmarshalWithOption(data, val)
}
