// Package output provides formatters for displaying recsize analysis
// reports in various output formats (pretty, plain, json, yaml, markdown).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jamesainslie/recsize/pkg/recsize/engine"
	"github.com/jamesainslie/recsize/pkg/recsize/logging"
)

// logger is the package-level logger for output operations.
var logger = logging.Get("output")

// Result contains the complete output data for formatting: the engine
// report plus scan metadata the formatters display around it.
type Result struct {
	// Report is the engine's analysis report.
	Report *engine.Report `json:"report" yaml:"report"`

	// Source is the root path that was scanned.
	Source string `json:"source" yaml:"source"`

	// Elapsed is the time the scan took.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`

	// FSBlockSize is the block size of the filesystem holding Source,
	// or 0 if unknown.
	FSBlockSize int64 `json:"fs_block_size" yaml:"fs_block_size"`

	// ScanErrors is the number of entries skipped during the scan.
	ScanErrors int `json:"scan_errors" yaml:"scan_errors"`
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	f, err := DefaultRegistry.Get(name)
	if err != nil {
		logger.Warn("formatter lookup failed", "name", name)
	}
	return f, err
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
