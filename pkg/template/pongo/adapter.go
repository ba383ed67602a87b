// Package pongo adapts the pongo2 engine to the template.Renderer seam.
// Record templates arrive as raw strings, so the engine runs without any
// filesystem loader; dotted placeholder paths resolve against nested maps.
package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-datagen/pkg/template"
)

// Option configures the adapter before construction.
type Option func(*config)

type config struct {
	globalData map[string]any
}

// WithGlobalData seeds context values available to every rendered template,
// alongside the per-record data.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[key] = value
		}
	}
}

// Engine renders record templates through a pongo2 template set. Parsed
// templates are cached by content, so rendering the same record template for
// every row parses it once.
type Engine struct {
	mu          sync.RWMutex
	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

// Ensure Engine implements the Renderer seam.
var _ template.Renderer = (*Engine)(nil)

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	// Output is plain text, not HTML; generated values must pass through
	// unescaped.
	pongo2.SetAutoescape(false)

	// Templates are parsed via FromString, so the loader is never consulted,
	// but NewSet requires at least one.
	set := pongo2.NewSet("datagen", pongo2.MustNewLocalFileSystemLoader(""))
	if len(cfg.globalData) > 0 {
		set.Globals = pongo2.Context(cfg.globalData)
	}

	return &Engine{
		templateSet: set,
		templates:   make(map[string]*pongo2.Template),
	}
}

// RenderString parses templateContent, executes it against data, and returns
// the rendered text. Any writers in out receive the same bytes.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}

	tmpl, err := e.getTemplate(templateContent)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}

	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", fmt.Errorf("pongo: execute template string: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) getTemplate(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[content]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[content]; ok {
		return tmpl, nil
	}
	tmpl, err := e.templateSet.FromString(content)
	if err != nil {
		return nil, err
	}
	e.templates[content] = tmpl
	return tmpl, nil
}

func convertToContext(data any) (pongo2.Context, error) {
	switch value := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return value, nil
	case map[string]any:
		return pongo2.Context(value), nil
	default:
		return nil, fmt.Errorf("unsupported context type %T, want map[string]any", data)
	}
}
