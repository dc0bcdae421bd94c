package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

/*
Load reads a TOML or YAML config file, chosen by extension, and
flattens it into setting keys. Nested tables become dotted keys, so

	[penalties]
	nline = 500

yields "penalties.nline" = "500". Scalars are formatted back to text;
the settings appliers parse them again. Lists are rejected.
*/
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read config")
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes data in the format named by ext (".toml", ".yaml" or
// ".yml").
func Parse(ext string, data []byte) (map[string]string, error) {
	raw := map[string]any{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errdef.Wrap(errdef.CodeConfig, err, "parse toml")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errdef.Wrap(errdef.CodeConfig, err, "parse yaml")
		}
	default:
		return nil, errdef.New(errdef.CodeConfig, "unsupported config format %q", ext)
	}

	out := make(map[string]string)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadDefault loads the first of DefaultFiles present in Dir. It
// returns the path it read, or "" and no error when none exists.
func LoadDefault() (map[string]string, string, error) {
	dir := Dir()
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		m, err := Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, path, err
		}
		return m, path, nil
	}
	return nil, "", nil
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := strings.ToLower(strings.TrimSpace(k))
		if prefix != "" {
			key = prefix + "." + key
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case []any:
			return errdef.New(errdef.CodeConfig, "%s: lists are not supported", key)
		case nil:
			out[key] = ""
		case string:
			out[key] = val
		case bool:
			out[key] = strconv.FormatBool(val)
		case float64:
			out[key] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}
