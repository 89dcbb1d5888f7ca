package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/studyplan/internal/models"
)

// Format is an on-disk payload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported payload extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads and decodes a schedule payload file.
func Load(path string) (models.SchedulePayload, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.SchedulePayload{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.SchedulePayload{}, fmt.Errorf("failed to open payload: %w", err)
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return models.SchedulePayload{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return p, nil
}

// Decode reads a single payload document. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (models.SchedulePayload, error) {
	var p models.SchedulePayload

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return models.SchedulePayload{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			if err == io.EOF {
				return models.SchedulePayload{}, fmt.Errorf("empty payload")
			}
			return models.SchedulePayload{}, err
		}
	default:
		return models.SchedulePayload{}, fmt.Errorf("unsupported payload format %q", format)
	}

	return p, nil
}

// Encode writes v in the given format. JSON output is indented.
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unsupported payload format %q", format)
	}
}
