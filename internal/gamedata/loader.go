// Package gamedata holds the embedded Green Chapel content (biomes, enemies,
// items, encounters and narrative text) and the validated Registry built
// from it.
package gamedata

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var dataFS embed.FS

// Load reads and decodes one embedded content file. Keys that no field
// claims are an error, so a typo in content fails at startup.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return decode[T](filename, content)
}

func decode[T any](filename string, content []byte) (T, error) {
	var result T
	if err := decodeStrict(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}
	return result, nil
}

// decodeStrict unmarshals data into v, rejecting unknown keys. Types with
// their own UnmarshalJSON call it again so nested objects stay strict.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
