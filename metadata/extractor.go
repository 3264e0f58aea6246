package metadata

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/semantiva/chain/component"
)

// defaultCacheSize bounds the extractor's record cache.
const defaultCacheSize = 128

// Extractor resolves component names and builds metadata records.
// Extraction is referentially transparent, so records are cached by
// component name. The cache assumes registry contents are fixed after
// startup, which is how manifests are loaded.
type Extractor struct {
	resolver component.Resolver
	cache    *lru.Cache[string, *Record]
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithCacheSize sets the record cache size. Values below 1 are clamped.
func WithCacheSize(size int) ExtractorOption {
	return func(e *Extractor) {
		if size < 1 {
			size = 1
		}
		cache, _ := lru.New[string, *Record](size)
		e.cache = cache
	}
}

// NewExtractor creates an extractor backed by the given resolver.
func NewExtractor(resolver component.Resolver, opts ...ExtractorOption) *Extractor {
	cache, _ := lru.New[string, *Record](defaultCacheSize)
	e := &Extractor{
		resolver: resolver,
		cache:    cache,
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract resolves a component name and returns its metadata record.
// A name unknown to the resolver yields a component.NotFoundError.
// A component without processing logic is not an error: the record's
// ProcessingLogic carries the LogicUndefined marker instead.
func (e *Extractor) Extract(name string) (*Record, error) {
	if record, ok := e.cache.Get(name); ok {
		return record, nil
	}

	descriptor, ok := e.resolver.Resolve(name)
	if !ok {
		return nil, &component.NotFoundError{Name: name}
	}

	record := build(name, descriptor)
	e.cache.Add(name, record)
	return record, nil
}

// build derives a metadata record from a resolved descriptor.
func build(name string, d component.Descriptor) *Record {
	record := &Record{
		ComponentName:   name,
		ModulePath:      d.Module(),
		ClassHierarchy:  append([]string(nil), d.Hierarchy()...),
		Interfaces:      interfaces(d),
		ProcessingLogic: processingLogic(d),
	}
	if doc, ok := d.Doc(); ok {
		record.Docstring = doc
	}
	return record
}

// interfaces records declared input/output data types, input first.
// Absence of either is not an error; it simply omits that entry.
func interfaces(d component.Descriptor) []Interface {
	result := []Interface{}
	if input, ok := d.InputType(); ok {
		result = append(result, Interface{Kind: InterfaceInput, DataType: input})
	}
	if output, ok := d.OutputType(); ok {
		result = append(result, Interface{Kind: InterfaceOutput, DataType: output})
	}
	return result
}

func processingLogic(d component.Descriptor) LogicInfo {
	logic, ok := d.ProcessingLogic()
	if !ok {
		return LogicInfo{Err: LogicUndefined}
	}

	return LogicInfo{
		Parameters:  append([]component.Parameter(nil), logic.Parameters...),
		Description: logic.Description,
	}
}
