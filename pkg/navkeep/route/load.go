package route

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/navkeep/navkeep/pkg/navkeep/constants"
)

// tableFile is the top-level structure of a route table file.
type tableFile struct {
	Routes []Config `toml:"route" yaml:"routes"`
}

// LoadTable reads a route table from a TOML or YAML file, chosen by extension.
func LoadTable(path string) (*Table, error) {
	format, ok := constants.FormatForExtension(strings.ToLower(filepath.Ext(path)))
	if !ok {
		return nil, NewTableError("load", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewTableError("load", err)
	}

	return ParseTable(data, format)
}

// ParseTable decodes a route table from raw file contents.
func ParseTable(data []byte, format constants.TableFormat) (*Table, error) {
	var file tableFile

	switch format {
	case constants.TableFormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&file)
		if err != nil {
			return nil, NewTableError("decode", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, NewTableError("decode", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
		}
	case constants.TableFormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, NewTableError("decode", err)
		}
	default:
		return nil, NewTableError("decode", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format))
	}

	return NewTable(file.Routes...)
}
