package source

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mhr-catalog/feature/catalog/models"
)

// Catalog file names.
const (
	ArmorFile      = "armor.json"
	SkillFile      = "skill.json"
	DecorationFile = "deco.json"
)

// Files lists the catalog files in write order.
var Files = [...]string{ArmorFile, SkillFile, DecorationFile}

const indent = "    "

// Encode serializes v the way catalog files are written.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeCatalogs encodes each catalog, keyed by file name. Nil lists are written
// as empty arrays.
func EncodeCatalogs(c *models.Catalogs) (map[string][]byte, error) {
	lists := map[string]any{
		ArmorFile:      nonNil(c.Armors),
		SkillFile:      nonNil(c.Skills),
		DecorationFile: nonNil(c.Decorations),
	}

	out := make(map[string][]byte, len(lists))
	for name, list := range lists {
		data, err := Encode(list)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func decode[T any](name string, data []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return list, nil
}
