package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a nullable update field that remembers whether its key
// appeared in the payload. An absent key leaves the column untouched;
// an explicit null clears it.
type Optional[T any] struct {
	Present bool
	Value   *T
}

var nullLiteral = []byte("null")

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, nullLiteral) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return nullLiteral, nil
	}
	return json.Marshal(o.Value)
}
