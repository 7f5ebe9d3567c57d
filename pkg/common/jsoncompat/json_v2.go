//go:build jsonv2

package jsoncompat

import (
	json "encoding/json/v2"
	"io"
)

// Marshal proxies to encoding/json/v2 Marshal when jsonv2 build tag is present.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal proxies to encoding/json/v2 Unmarshal when jsonv2 build tag is present.
func Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type v2Encoder struct {
	w io.Writer
}

func (e v2Encoder) Encode(v any) error { return json.MarshalWrite(e.w, v) }

// NewEncoder returns a streaming encoder writing to w.
func NewEncoder(w io.Writer) Encoder { return v2Encoder{w: w} }
