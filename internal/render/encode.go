package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Encode for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrNoTextView is returned when text output is asked for a value that has
// no text rendering.
var ErrNoTextView = errors.New("no text view")

// Output formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatText = "text"
)

// Encode writes v to w in format.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatText:
		return encodeText(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, v any) error {
	var s string
	switch doc := v.(type) {
	case Document:
		s = Text(doc)
	case *Document:
		s = Text(*doc)
	case Collection:
		parts := make([]string, len(doc.Charts))
		for i, d := range doc.Charts {
			parts[i] = Text(d)
		}
		s = strings.Join(parts, "\n")
	case Conversion:
		s = ConversionText(doc)
	default:
		return fmt.Errorf("%w for %T", ErrNoTextView, v)
	}
	_, err := io.WriteString(w, s)
	return err
}
