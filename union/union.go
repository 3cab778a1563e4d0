// Package union is the runtime support package for generated union types.
// Generated code calls into it for tag peeking, tagged encoding, and strict
// branch decoding, keeping the templates free of serialization detail.
package union

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// ErrMissingTag is returned by Tag when the payload has no discriminator
// field, wrapped with the field name.
var ErrMissingTag = errors.New("missing discriminator field")

// Tag peeks the discriminator field's string value out of a JSON object
// without decoding the rest of the payload.
func Tag(data []byte, field string) (string, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("union payload is not an object: %w", err)
	}
	raw, ok := probe[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingTag, field)
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", fmt.Errorf("discriminator %q is not a string: %w", field, err)
	}
	return tag, nil
}

// EncodeTagged serializes a variant payload with the discriminator field
// forced to the given constant tag. The tag always wins over any value the
// payload itself carries for that field, so an encoded union can never hold
// a tag/payload mismatch. Keys are emitted in sorted order so output is
// deterministic.
func EncodeTagged(field, tag string, payload any) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(body, &merged); err != nil {
			return nil, fmt.Errorf("union payload is not an object: %w", err)
		}
	}
	tagValue, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	merged[field] = tagValue

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(merged[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode serializes a decoded branch value.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode deserializes a payload into a variant value.
func Decode(data []byte, out any) error {
	return json.Unmarshal(data, out)
}

// DecodeStrict deserializes a payload into a variant value, rejecting fields
// the variant type does not declare. First-match wrapper decoding relies on
// this to keep loosely-shaped branches from swallowing every payload.
func DecodeStrict(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}
