// Package production provides integrations around the protectedx core:
// hierarchy loading and report/graph export.
package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/protectedx/internal/primitives"
)

// ErrUnsupportedFormat is returned for hierarchy files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported hierarchy format")

// LoadHierarchy reads and validates a hierarchy file. The format follows the
// extension: .yaml, .yml or .json.
func LoadHierarchy(path string) (*primitives.HierarchyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("hierarchy %q: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseHierarchyYAML(data)
	case ".json":
		return ParseHierarchyJSON(data)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ParseHierarchyYAML decodes and validates a YAML hierarchy.
func ParseHierarchyYAML(data []byte) (*primitives.HierarchyConfig, error) {
	var cfg primitives.HierarchyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation after load: %w", err)
	}
	cfg.Version = primitives.ComputeVersion(&cfg)
	return &cfg, nil
}

// ParseHierarchyJSON decodes and validates a JSON hierarchy.
func ParseHierarchyJSON(data []byte) (*primitives.HierarchyConfig, error) {
	var cfg primitives.HierarchyConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation after load: %w", err)
	}
	cfg.Version = primitives.ComputeVersion(&cfg)
	return &cfg, nil
}
