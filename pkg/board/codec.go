package board

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// Format is a board serialization format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension. Anything that is not
// .json is treated as TOML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Decode reads a board, assigns ids to items that have none, fills in grid
// defaults, and validates the result.
func Decode(r io.Reader, format Format) (*Board, error) {
	var b Board
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json board")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&b)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml board")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown board key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported board format %q", format)
	}

	assignIDs(&b)
	b.Normalize()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Encode writes b in the given format.
func Encode(w io.Writer, b *Board, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json board")
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(b); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml board")
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported board format %q", format)
	}
	return nil
}

// Marshal returns b encoded in the given format.
func Marshal(b *Board, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a board from data.
func Unmarshal(data []byte, format Format) (*Board, error) {
	return Decode(bytes.NewReader(data), format)
}

// ReadFile loads a board file, picking the format from its extension.
func ReadFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read board file %s", path)
	}
	b, err := Unmarshal(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "board file %s", path)
	}
	return b, nil
}

// WriteFile saves b to path, picking the format from its extension.
func WriteFile(path string, b *Board) error {
	data, err := Marshal(b, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write board file %s", path)
	}
	return nil
}

func assignIDs(b *Board) {
	for i := range b.Zones {
		for j := range b.Zones[i].Items {
			if it := &b.Zones[i].Items[j]; it.ID == "" {
				it.ID = registry.ItemID(uuid.NewString())
			}
		}
	}
}
