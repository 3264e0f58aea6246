// Package prompt renders pipeline steps and component metadata into the
// prompt sent to the text-completion service. Composition is pure and
// deterministic: the same inputs always produce a byte-identical prompt.
package prompt

import (
	"strconv"
	"strings"

	"github.com/semantiva/chain/metadata"
	"github.com/semantiva/chain/pipeline"
)

// Fallback text for components that carry no documentation or module path.
const (
	noDescription = "No description available."
	unknownModule = "Unknown"
)

// Instructional wrapper around the two rendered sections.
const (
	promptHeader = "You are an AI workflow assistant. Given the following pipeline configuration,\n" +
		"explain how it works in a clear and structured manner."
	promptFooter = "Provide a detailed, structured, and human-readable explanation of the workflow."
)

// Composer renders the explanation prompt.
type Composer struct{}

// NewComposer creates a prompt composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose renders the full prompt from parallel, equal-length step and
// record slices, where records[i] describes steps[i]. The caller enforces
// that invariant.
func (c *Composer) Compose(steps []pipeline.Step, records []*metadata.Record) string {
	var sb strings.Builder

	sb.WriteString(promptHeader)
	sb.WriteString("\n\n**Pipeline Configuration:**\n")
	c.writeStructure(&sb, steps)
	sb.WriteString("\n**Component Details:**\n")
	c.writeDetails(&sb, records)
	sb.WriteString("\n")
	sb.WriteString(promptFooter)
	sb.WriteString("\n")

	return sb.String()
}

// writeStructure renders one block per step at its 1-based display index.
// Steps whose parameters field was present but not a mapping are skipped:
// the boundary validation normally rejects them first, but the composer
// stays safe when used standalone.
func (c *Composer) writeStructure(sb *strings.Builder, steps []pipeline.Step) {
	for i, step := range steps {
		if step.HasMalformedParams() {
			continue
		}

		sb.WriteString("- Step ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(": ")
		sb.WriteString(step.Processor)
		sb.WriteString("\n  Context Keyword: ")
		if step.ContextKeyword != "" {
			sb.WriteString(step.ContextKeyword)
		} else {
			sb.WriteString("None")
		}
		sb.WriteString("\n  Parameters:\n")

		if step.Parameters != nil {
			for _, kv := range step.Parameters.Pairs() {
				sb.WriteString("    - ")
				sb.WriteString(kv.Key)
				sb.WriteString(": ")
				sb.WriteString(kv.Value)
				sb.WriteString("\n")
			}
		}
	}
}

// writeDetails renders one block per metadata record.
func (c *Composer) writeDetails(sb *strings.Builder, records []*metadata.Record) {
	for _, record := range records {
		sb.WriteString("- ")
		sb.WriteString(record.ComponentName)
		sb.WriteString(":\n  Description: ")
		if record.Docstring != "" {
			sb.WriteString(record.Docstring)
		} else {
			sb.WriteString(noDescription)
		}
		sb.WriteString("\n  Module: ")
		if record.ModulePath != "" {
			sb.WriteString(record.ModulePath)
		} else {
			sb.WriteString(unknownModule)
		}
		sb.WriteString("\n  Class Hierarchy: ")
		sb.WriteString(strings.Join(record.ClassHierarchy, ", "))

		sb.WriteString("\n  Interfaces:\n")
		for _, iface := range record.Interfaces {
			if iface.Kind == "" || iface.DataType == "" {
				continue
			}
			sb.WriteString("    - ")
			sb.WriteString(iface.Kind)
			sb.WriteString(": ")
			sb.WriteString(iface.DataType)
			sb.WriteString("\n")
		}

		// An unavailable processing logic renders as an empty sub-list.
		sb.WriteString("  Processing Logic:\n")
		for _, param := range record.ProcessingLogic.Parameters {
			if param.Name == "" {
				continue
			}
			sb.WriteString("    - ")
			sb.WriteString(param.Name)
			sb.WriteString(": ")
			sb.WriteString(param.Type)
			sb.WriteString("\n")
		}
	}
}
