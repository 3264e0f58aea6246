// Package metadata normalizes component descriptors into immutable metadata
// records used for prompt composition and diagnostics.
package metadata

import "github.com/semantiva/chain/component"

// Interface kinds recorded in a metadata record.
const (
	InterfaceInput  = "input"
	InterfaceOutput = "output"
)

// LogicUndefined is recorded when a component declares no processing logic.
// It is nested, non-fatal data: composition continues with no parameters.
const LogicUndefined = "Processing logic not defined"

// Interface records one declared data interface of a component.
type Interface struct {
	Kind     string `json:"interface_type"`
	DataType string `json:"data_type"`
}

// LogicInfo records a component's processing logic, or its absence.
type LogicInfo struct {
	Parameters  []component.Parameter `json:"parameters,omitempty"`
	Description string                `json:"description,omitempty"`
	Err         string                `json:"error,omitempty"`
}

// Unavailable reports whether the component declared no processing logic.
func (l LogicInfo) Unavailable() bool {
	return l.Err != ""
}

// Record is the normalized description of a component's shape.
// It is a pure function of the resolved descriptor: the same descriptor
// always yields an identical record. Records are shared via the extractor
// cache and must not be mutated by callers.
type Record struct {
	ComponentName   string      `json:"component_name"`
	ModulePath      string      `json:"module_path"`
	ClassHierarchy  []string    `json:"class_hierarchy"`
	Interfaces      []Interface `json:"interfaces"`
	ProcessingLogic LogicInfo   `json:"processing_logic"`
	Docstring       string      `json:"docstring,omitempty"`
}
