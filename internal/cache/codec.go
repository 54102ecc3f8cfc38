package cache

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes v to msgpack and hex encodes the bytes so the value
// survives stores that only accept text.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode cache value: %w", err)
	}

	return hex.EncodeToString(buf.Bytes()), nil
}

// Decode is the exact inverse of Encode.
func Decode(data string, v any) error {
	raw, err := hex.DecodeString(data)
	if err != nil {
		return fmt.Errorf("failed to hex decode cache value: %w", err)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.SetCustomStructTag("json")

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode cache value: %w", err)
	}

	return nil
}
