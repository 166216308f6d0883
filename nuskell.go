package nuskell

import (
	"io"
	"log/slog"

	"github.com/jphuse/nuskell/pkg/compiler"
	"github.com/jphuse/nuskell/pkg/domain"
	"github.com/jphuse/nuskell/pkg/parser"
)

// Version is the release version reported by the CLI and the adapters.
var Version = "0.3.0"

// Engine is the high-level entry point for the nuskell library.
// It wraps the translation core and provides a simplified API for consumers.
type Engine struct {
	logger *slog.Logger
	alloc  *compiler.Allocator
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithAllocator injects a shared domain allocator. The default is a fresh
// allocator per Compile call, keeping compilation runs isolated.
func WithAllocator(alloc *compiler.Allocator) Option {
	return func(e *Engine) {
		e.alloc = alloc
	}
}

// New initializes a new nuskell Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return e
}

// Compile translates a parsed CRN into its DSD complex set.
// Each call uses a fresh species registry; with the default allocator, each
// call also gets a fresh domain namespace.
func (e *Engine) Compile(crn *domain.CRN) (*domain.System, error) {
	opts := []compiler.Option{compiler.WithLogger(e.logger)}
	if e.alloc != nil {
		opts = append(opts, compiler.WithAllocator(e.alloc))
	}
	return compiler.New(opts...).Compile(crn)
}

// CompileString parses CRN source text and compiles it.
func (e *Engine) CompileString(src string) (*domain.System, error) {
	crn, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Compile(crn)
}

// CompileFile parses a CRN file and compiles it.
func (e *Engine) CompileFile(path string) (*domain.System, error) {
	crn, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return e.Compile(crn)
}
