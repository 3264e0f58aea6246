// Package workflow generates natural-language explanations for pipeline
// configurations: it gathers component metadata, composes the prompt, and
// forwards it to the configured text-completion service.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/semantiva/chain/component"
	"github.com/semantiva/chain/llm"
	"github.com/semantiva/chain/metadata"
	"github.com/semantiva/chain/pipeline"
	"github.com/semantiva/chain/prompt"
)

// EmptyPipelineMessage is returned for an empty step list.
const EmptyPipelineMessage = "The provided workflow configuration is empty."

// Explainer produces human-readable explanations of pipeline configurations.
// Explain always returns a string: every failure encountered during a single
// invocation is converted to a descriptive message, never an error value.
type Explainer struct {
	extractor *metadata.Extractor
	composer  *prompt.Composer
	service   llm.Service
	options   llm.Options
	logger    *slog.Logger
}

// ExplainerOption configures an Explainer.
type ExplainerOption func(*Explainer)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ExplainerOption {
	return func(e *Explainer) {
		e.logger = logger
	}
}

// WithGenerateOptions sets the options forwarded to the completion service.
func WithGenerateOptions(opts llm.Options) ExplainerOption {
	return func(e *Explainer) {
		e.options = opts
	}
}

// WithExtractor replaces the default extractor. Used by tests that need to
// control caching behavior.
func WithExtractor(extractor *metadata.Extractor) ExplainerOption {
	return func(e *Explainer) {
		e.extractor = extractor
	}
}

// NewExplainer creates an explainer over the given component resolver and
// text-completion service.
func NewExplainer(resolver component.Resolver, service llm.Service, opts ...ExplainerOption) *Explainer {
	e := &Explainer{
		extractor: metadata.NewExtractor(resolver),
		composer:  prompt.NewComposer(),
		service:   service,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Explain generates a human-readable explanation for a pipeline
// configuration. Steps are validated and extracted strictly in order; the
// first invalid or unresolvable step short-circuits with an error message
// and no further steps are processed.
func (e *Explainer) Explain(ctx context.Context, steps []pipeline.Step) string {
	if len(steps) == 0 {
		return EmptyPipelineMessage
	}

	records := make([]*metadata.Record, 0, len(steps))
	for _, step := range steps {
		if step.Processor == "" {
			return fmt.Sprintf("Error: Missing 'processor' key in node configuration: %s", step)
		}
		if step.HasMalformedParams() {
			return fmt.Sprintf("Error: Malformed 'parameters' in node configuration: %s", step)
		}

		record, err := e.extractor.Extract(step.Processor)
		if err != nil {
			return fmt.Sprintf("Error: %s", err)
		}
		records = append(records, record)
	}

	e.logger.Debug("Extracted metadata for components",
		"steps", len(steps),
		"components", records)

	rendered := e.composer.Compose(steps, records)

	response, err := e.service.Generate(ctx, rendered, e.options)
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return response
}
