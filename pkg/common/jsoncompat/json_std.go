//go:build !jsonv2

package jsoncompat

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal proxies to sonic (std compatible config) when jsonv2 build tag is absent.
func Marshal(v any) ([]byte, error) { return api.Marshal(v) }

// Unmarshal proxies to sonic (std compatible config) when jsonv2 build tag is absent.
func Unmarshal(data []byte, v any) error { return api.Unmarshal(data, v) }

// NewEncoder returns a streaming encoder writing to w.
func NewEncoder(w io.Writer) Encoder { return api.NewEncoder(w) }
