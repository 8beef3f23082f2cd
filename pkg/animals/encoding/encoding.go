package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diwise/animal-sorter/pkg/animals"
	"github.com/diwise/animal-sorter/pkg/animals/errors"
	yaml "gopkg.in/yaml.v2"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts a user supplied format name, such as a command line flag value
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", errors.NewUnsupportedFormatError(fmt.Sprintf("format %q is not supported (use json or yaml)", name))
	}
}

// FormatFromPath guesses the format of a file from its extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// wireRecord uses pointers so that missing attributes can be told apart from zero values
type wireRecord struct {
	Type   *string `json:"type" yaml:"type"`
	Weight *int    `json:"weight" yaml:"weight"`
	Color  *string `json:"color" yaml:"color"`
}

// Decode parses a document holding a sequence of animal records. Every record must have
// a type, a weight and a color. Additional attributes are ignored.
func Decode(format Format, body []byte) ([]animals.Record, error) {
	var wire []wireRecord
	var err error

	switch format {
	case JSON:
		err = json.Unmarshal(body, &wire)
	case YAML:
		err = yaml.Unmarshal(body, &wire)
	default:
		return nil, errors.NewUnsupportedFormatError(fmt.Sprintf("unable to decode format %q", format))
	}

	if err != nil {
		return nil, errors.NewMalformedInputError(fmt.Sprintf("failed to unmarshal animals: %s", err.Error()))
	}

	if wire == nil {
		return nil, errors.NewMalformedInputError("failed to unmarshal animals: expected a sequence of records")
	}

	records := make([]animals.Record, 0, len(wire))

	for idx, w := range wire {
		if w.Type == nil || w.Weight == nil || w.Color == nil {
			return nil, errors.NewMalformedInputError(
				fmt.Sprintf("record %d must have a type, a weight and a color", idx),
			)
		}

		records = append(records, animals.Record{
			Type:   *w.Type,
			Weight: *w.Weight,
			Color:  *w.Color,
		})
	}

	return records, nil
}

// Encode renders the animals, in their current order, as an indented document
func Encode(format Format, collection []animals.Animal) ([]byte, error) {
	records := animals.ToRecords(collection)

	switch format {
	case JSON:
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		if err := enc.Encode(records); err != nil {
			return nil, errors.NewSerializationError(fmt.Sprintf("failed to marshal animals: %s", err.Error()))
		}

		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case YAML:
		b, err := yaml.Marshal(records)
		if err != nil {
			return nil, errors.NewSerializationError(fmt.Sprintf("failed to marshal animals: %s", err.Error()))
		}

		return bytes.TrimSuffix(b, []byte("\n")), nil
	default:
		return nil, errors.NewUnsupportedFormatError(fmt.Sprintf("unable to encode format %q", format))
	}
}
