package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// LoadTargets reads the ordered list of card-image names to sync.
// The format is chosen by file extension: .json keeps compatibility
// with the original targets.json layout, everything else is parsed as
// YAML. Order is preserved; the sync loop processes targets in the
// order listed.
func LoadTargets(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSONTargets(path, data)
	}

	return parseYAMLTargets(path, data)
}

func parseJSONTargets(path string, data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: not valid JSON", path)
	}

	list := gjson.GetBytes(data, "targets")
	if !list.Exists() {
		return nil, fmt.Errorf("parsing %s: missing \"targets\" key", path)
	}

	var targets []string
	for _, entry := range list.Array() {
		targets = append(targets, entry.String())
	}

	return targets, nil
}

func parseYAMLTargets(path string, data []byte) ([]string, error) {
	var doc struct {
		Targets []string `yaml:"targets"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return doc.Targets, nil
}
