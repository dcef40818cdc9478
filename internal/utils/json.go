package utils

import (
	"bytes"
	"encoding/json"
)

// DecodeJSONStrict unmarshals data into target.
// Unknown fields are rejected so typos in config files surface early.
func DecodeJSONStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
