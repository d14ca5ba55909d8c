// Package file loads a tenant's configuration from a YAML or JSON file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
)

// Source implements ports.ConfigSource over a single configuration file.
// The extension decides the codec: ".json" for JSON, anything else YAML.
type Source struct {
	path string
}

var _ ports.ConfigSource = (*Source)(nil)

// New creates a file-backed configuration source.
func New(path string) *Source {
	return &Source{path: path}
}

// Load reads and decodes the configuration file into entity collections.
// The file is decoded to a raw map first and then mapped onto the typed
// entities, so unknown keys are tolerated rather than fatal.
func (s *Source) Load(ctx context.Context) (domain.Collections, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Collections{}, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(s.path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Collections{}, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Collections{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return Decode(raw)
}

// Decode maps a raw configuration document onto typed collections. Entity
// IDs are backfilled from map keys when records omit the id field, so the
// map key stays authoritative for the keyed collections.
func Decode(raw map[string]any) (domain.Collections, error) {
	var c domain.Collections
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.Collections{}, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.Collections{}, fmt.Errorf("failed to decode config: %w", err)
	}

	for id, p := range c.Programs {
		if p.ID == "" {
			p.ID = id
			c.Programs[id] = p
		}
	}
	for id, f := range c.Forms {
		if f.ID == "" {
			f.ID = id
			c.Forms[id] = f
		}
	}
	for id, cta := range c.CTAs {
		if cta.ID == "" {
			cta.ID = id
			c.CTAs[id] = cta
		}
	}
	for id, b := range c.Branches {
		if b.ID == "" {
			b.ID = id
			c.Branches[id] = b
		}
	}
	for id, ch := range c.Chips {
		if ch.ID == "" {
			ch.ID = id
			c.Chips[id] = ch
		}
	}

	return c, nil
}
