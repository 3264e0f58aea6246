package component

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is a declarative component descriptor loaded from a manifest.
// Empty optional fields mean the component does not declare that capability.
type Definition struct {
	ComponentName string   `yaml:"name"`
	ModulePath    string   `yaml:"module"`
	ClassChain    []string `yaml:"hierarchy"`
	Docstring     string   `yaml:"doc"`
	Input         string   `yaml:"input_type"`
	Output        string   `yaml:"output_type"`
	Logic         *Logic   `yaml:"processing_logic"`
}

// Name implements Descriptor.
func (d *Definition) Name() string { return d.ComponentName }

// Module implements Descriptor.
func (d *Definition) Module() string { return d.ModulePath }

// Hierarchy implements Descriptor. If the manifest omits the hierarchy, the
// component name itself is the whole chain.
func (d *Definition) Hierarchy() []string {
	if len(d.ClassChain) == 0 {
		return []string{d.ComponentName}
	}
	return d.ClassChain
}

// Doc implements Descriptor.
func (d *Definition) Doc() (string, bool) {
	return d.Docstring, d.Docstring != ""
}

// InputType implements Descriptor.
func (d *Definition) InputType() (string, bool) {
	return d.Input, d.Input != ""
}

// OutputType implements Descriptor.
func (d *Definition) OutputType() (string, bool) {
	return d.Output, d.Output != ""
}

// ProcessingLogic implements Descriptor. Parameters declared without a type
// are reported with the UnknownType sentinel.
func (d *Definition) ProcessingLogic() (*Logic, bool) {
	if d.Logic == nil {
		return nil, false
	}

	logic := &Logic{
		Description: d.Logic.Description,
		Parameters:  make([]Parameter, len(d.Logic.Parameters)),
	}
	for i, p := range d.Logic.Parameters {
		if p.Type == "" {
			p.Type = UnknownType
		}
		logic.Parameters[i] = p
	}
	return logic, true
}

// Validate checks that the definition is usable as a descriptor.
func (d *Definition) Validate() error {
	if d.ComponentName == "" {
		return fmt.Errorf("component definition missing name")
	}
	for i, p := range d.logicParameters() {
		if p.Name == "" {
			return fmt.Errorf("component %q: processing logic parameter %d missing name", d.ComponentName, i)
		}
	}
	return nil
}

func (d *Definition) logicParameters() []Parameter {
	if d.Logic == nil {
		return nil
	}
	return d.Logic.Parameters
}

// Manifest is the on-disk format for declarative component definitions.
type Manifest struct {
	Components []*Definition `yaml:"components"`
}

// ParseManifest parses a YAML component manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse component manifest: %w", err)
	}

	for _, def := range m.Components {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("invalid component manifest: %w", err)
		}
	}
	return &m, nil
}

// LoadManifest reads a component manifest file and registers every
// definition into the given registry.
func LoadManifest(path string, registry *Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read component manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return err
	}

	for _, def := range m.Components {
		registry.Register(def)
	}
	return nil
}
