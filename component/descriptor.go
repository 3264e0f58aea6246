// Package component defines the descriptor contract for pipeline components
// and a registry that resolves component names to descriptors.
package component

// Parameter describes one declared parameter of a component's processing logic.
type Parameter struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Logic describes a component's processing logic: its declared parameters in
// order and an optional description of what the logic does.
type Logic struct {
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

// UnknownType is recorded for parameters declared without a type.
const UnknownType = "Unknown"

// Descriptor is the introspection surface a component type exposes.
// Optional capabilities return (value, ok) pairs; ok=false means the
// component does not declare that capability, which is never an error.
type Descriptor interface {
	// Name returns the component name as known to the registry.
	Name() string

	// Module returns the module path the component is defined in.
	// Empty means unknown.
	Module() string

	// Hierarchy returns the ancestry of the component type, most-derived
	// first. Implementations must not include the universal base type.
	Hierarchy() []string

	// Doc returns the component's documentation string, if any.
	Doc() (string, bool)

	// InputType returns the name of the declared input data type, if any.
	InputType() (string, bool)

	// OutputType returns the name of the declared output data type, if any.
	OutputType() (string, bool)

	// ProcessingLogic returns the component's processing logic, if declared.
	ProcessingLogic() (*Logic, bool)
}
