// Package catalog reads galaxy catalogs from files or URLs.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"galaxy-classify/internal/httpx"
	"galaxy-classify/internal/store"
)

type document struct {
	Galaxies []store.Galaxy `json:"galaxies" yaml:"galaxies"`
}

// Load reads the catalog at src, a file path or an http(s) URL.
func Load(ctx context.Context, src string) ([]store.Galaxy, error) {
	var (
		data []byte
		err  error
		name = src
	)
	if isURL(src) {
		u, _ := url.Parse(src)
		name = u.Path
		if strings.EqualFold(path.Ext(name), ".json") {
			data, err = httpx.GetJSON(ctx, src)
		} else {
			data, err = httpx.Get(ctx, src)
		}
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", src, err)
	}
	gs, err := Parse(data, isYAML(name, data))
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", src, err)
	}
	return gs, nil
}

// Parse decodes a JSON or YAML catalog. Both a bare list and a document with
// a top level "galaxies" list are accepted.
func Parse(data []byte, asYAML bool) ([]store.Galaxy, error) {
	var gs []store.Galaxy
	if asYAML {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
			var doc document
			if err := node.Decode(&doc); err != nil {
				return nil, err
			}
			gs = doc.Galaxies
		} else if err := node.Decode(&gs); err != nil {
			return nil, err
		}
	} else {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var doc document
			if err := json.Unmarshal(trimmed, &doc); err != nil {
				return nil, err
			}
			gs = doc.Galaxies
		} else if err := json.Unmarshal(trimmed, &gs); err != nil {
			return nil, err
		}
	}
	if err := validate(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func validate(gs []store.Galaxy) error {
	seen := make(map[string]int, len(gs))
	for i := range gs {
		gs[i].ID = strings.TrimSpace(gs[i].ID)
		id := gs[i].ID
		if id == "" {
			return fmt.Errorf("galaxy %d: missing id", i)
		}
		if j, dup := seen[id]; dup {
			return fmt.Errorf("galaxy %d: duplicate id %q (first at %d)", i, id, j)
		}
		seen[id] = i
	}
	return nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func isYAML(name string, data []byte) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] != '[' && trimmed[0] != '{'
}
