// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/joeydtaylor/steeze-lite/pkg/value"
)

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

// ErrNotObject is returned when a payload decodes to something other than a JSON object.
var ErrNotObject = errors.New("payload is not a json object")

type jsonCodec struct{}

// JSON keeps numbers as json.Number so integer fields survive without float rounding.
var JSON Codec = jsonCodec{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	// Probe for trailing data (must be EOF)
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return fmt.Errorf("json trailing content")
	}
	return nil
}

func (jsonCodec) ContentType() string { return "application/json" }

// DecodeObject decodes a request payload into the field mapping an Input wraps.
// Empty and null payloads yield an empty object.
func DecodeObject(c Codec, data []byte) (value.Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Object{}, nil
	}
	var v any
	if err := c.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return value.Object{}, nil
	case map[string]any:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, value.KindOf(v))
	}
}
