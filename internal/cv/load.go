package cv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for loading.
var (
	ErrNotFound = errors.New("CV data file not found")
	ErrRead     = errors.New("failed to read CV data file")
	ErrParse    = errors.New("invalid CV data")
)

// MaxInputSize caps the data file size (1MB), same limit as YAML config.
const MaxInputSize = yamlutil.MaxInputSize

// Format identifies the encoding of a CV data file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "YAML"
	}
	return "JSON"
}

// FormatFor picks the format from the file extension.
// .yaml and .yml are YAML, everything else is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the CV data file at path.
// Returns ErrNotFound if the file does not exist and ErrParse if the
// content is not well-formed.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	rec, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Parse decodes data in the given format. Unknown keys are ignored.
func Parse(data []byte, format Format) (*Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty %s document", ErrParse, format)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrParse, len(data), MaxInputSize)
	}

	var rec Record
	switch format {
	case FormatYAML:
		if err := yamlutil.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	default:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, describeJSONError(data, err))
		}
	}
	return &rec, nil
}

// describeJSONError adds line and column to syntax errors.
func describeJSONError(data []byte, err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(data, syntaxErr.Offset)
		return fmt.Sprintf("line %d, column %d: %v", line, col, err)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("field %q: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return err.Error()
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	col = int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
