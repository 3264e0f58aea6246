package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk pipeline configuration format.
type File struct {
	Pipeline []Step `yaml:"pipeline"`
}

// Parse decodes a YAML pipeline configuration.
func Parse(data []byte) ([]Step, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pipeline configuration: %w", err)
	}
	return f.Pipeline, nil
}

// Load reads a pipeline configuration file.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline configuration: %w", err)
	}
	return Parse(data)
}
