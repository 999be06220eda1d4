// Package primitives provides versioning utilities for HierarchyConfig.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion computes a deterministic version for a HierarchyConfig.
// Priority: user-provided config.Version, else SHA256(config JSON)[:8] in hex.
func ComputeVersion(config *HierarchyConfig) string {
	if config.Version != "" {
		return config.Version
	}

	data, err := json.Marshal(config)
	if err != nil {
		// Props hold values JSON cannot encode.
		return "unversioned"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
