// Package pipeline defines the pipeline step configuration supplied to the
// explainer: an ordered list of processor invocations, each with an optional
// context keyword and an ordered parameter mapping.
package pipeline

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step is one configured invocation of a component within a workflow.
// Step order is significant: it defines the 1-based index used in rendering.
type Step struct {
	Processor      string  `yaml:"processor" json:"processor"`
	ContextKeyword string  `yaml:"context_keyword" json:"context_keyword,omitempty"`
	Parameters     *Params `yaml:"parameters" json:"parameters,omitempty"`
}

// HasMalformedParams reports whether the parameters field was present in the
// source configuration but was not a mapping.
func (s Step) HasMalformedParams() bool {
	return s.Parameters != nil && !s.Parameters.IsMapping()
}

// String renders the step in a compact configuration-like form, used in
// error messages so the offending step content is visible to the caller.
func (s Step) String() string {
	var sb strings.Builder
	sb.WriteString("{")

	var fields []string
	if s.Processor != "" {
		fields = append(fields, "processor: "+s.Processor)
	}
	if s.ContextKeyword != "" {
		fields = append(fields, "context_keyword: "+s.ContextKeyword)
	}
	if s.Parameters != nil {
		fields = append(fields, "parameters: "+s.Parameters.String())
	}
	sb.WriteString(strings.Join(fields, ", "))
	sb.WriteString("}")
	return sb.String()
}

// Pair is one parameter key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Params is an insertion-ordered parameter mapping. Unlike a Go map it
// preserves the order parameters were supplied in, which the prompt composer
// depends on for deterministic output.
type Params struct {
	pairs   []Pair
	invalid bool
}

// NewParams builds a parameter mapping from ordered pairs.
func NewParams(pairs ...Pair) *Params {
	return &Params{pairs: pairs}
}

// MalformedParams builds a parameters value that was present in the source
// configuration but was not a mapping. Used by tests and by YAML decoding.
func MalformedParams() *Params {
	return &Params{invalid: true}
}

// IsMapping reports whether the source value was a mapping.
func (p *Params) IsMapping() bool {
	return !p.invalid
}

// Pairs returns the parameter entries in supplied order.
func (p *Params) Pairs() []Pair {
	return p.pairs
}

// Len returns the number of parameter entries.
func (p *Params) Len() int {
	return len(p.pairs)
}

// String renders the parameters in mapping form for error messages.
func (p *Params) String() string {
	if p.invalid {
		return "<not a mapping>"
	}

	parts := make([]string, len(p.pairs))
	for i, kv := range p.pairs {
		parts[i] = kv.Key + ": " + kv.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// UnmarshalYAML decodes a parameters value, preserving mapping order.
// A non-mapping value does not fail decoding; it marks the parameters as
// malformed so the boundary validation can reject the step with a message
// that names it, instead of a generic YAML type error.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		p.invalid = true
		return nil
	}

	p.pairs = make([]Pair, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		var val string
		if err := valNode.Decode(&val); err != nil {
			// Non-scalar values render through their YAML form.
			raw, merr := yaml.Marshal(valNode)
			if merr != nil {
				return fmt.Errorf("decode parameter %q: %w", keyNode.Value, err)
			}
			val = strings.TrimSpace(string(raw))
		}
		p.pairs = append(p.pairs, Pair{Key: keyNode.Value, Value: val})
	}
	return nil
}

// MarshalYAML encodes the parameters back to a mapping in supplied order.
func (p *Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range p.pairs {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Value},
		)
	}
	return node, nil
}
