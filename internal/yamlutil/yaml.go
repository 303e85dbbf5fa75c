// Package yamlutil isolates the YAML dependency behind a small API with input
// size limits, so the rest of the module never imports the YAML library directly.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to keep a stray large file from being parsed (64 KiB).
// Configuration files for this tool are a few hundred bytes.
var MaxInputSize = 64 << 10

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// IsEmptyDocument reports whether data holds no value: only whitespace,
// comments, or an explicit null. Decoding such a document into a struct
// would zero it.
func IsEmptyDocument(data []byte) (bool, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return true, nil
	}
	var doc any
	if err := checkInput(data, &doc); err != nil {
		return false, err
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("yamlutil: %w", err)
	}
	return doc == nil, nil
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v with two-space indentation and indented sequences.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
