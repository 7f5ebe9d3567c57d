package jsoncompat

// Encoder is the subset of json.Encoder the handlers use.
type Encoder interface {
	Encode(v any) error
}
