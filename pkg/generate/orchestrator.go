package generate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-datagen/internal/locales"
	"github.com/goliatone/go-datagen/pkg/format"
	"github.com/goliatone/go-datagen/pkg/provider"
	"github.com/goliatone/go-datagen/pkg/template"
	"github.com/goliatone/go-datagen/pkg/template/pongo"
)

const defaultLocale = "en"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a custom provider registry.
func WithRegistry(registry *provider.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderer injects a custom template renderer implementation.
func WithRenderer(renderer template.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithDefaultLocale overrides the locale used when a request omits an
// explicit Locale field.
func WithDefaultLocale(locale string) Option {
	return func(o *Orchestrator) {
		if locale != "" {
			o.defaultLocale = locale
		}
	}
}

// Orchestrator drives record generation: it adapts the template to the
// requested container format, resolves placeholder tags against the provider
// registry, then renders and streams records sequentially to the sink. It
// applies sensible defaults (builtin locales, pongo renderer) while remaining
// open to dependency injection.
type Orchestrator struct {
	registry      *provider.Registry
	renderer      template.Renderer
	defaultLocale string
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultLocale: defaultLocale,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = locales.Builtin()
	}
	if o.renderer == nil {
		o.renderer = pongo.New()
	}
}

// Request describes a single render job.
type Request struct {
	// Template is the raw record template text. For CSV it must hold exactly
	// two lines: a literal header row and the per-record template.
	Template string
	// Output receives the framed records. The caller owns the underlying
	// handle and is responsible for closing it.
	Output io.Writer
	// Records is the number of records to render. Zero is legal: header and
	// footer are still written.
	Records int
	// Locale selects the provider capability graph. Empty selects the
	// orchestrator's default.
	Locale string
	// Format selects the output container. Empty selects Plain.
	Format format.Format
}

// Generate runs one render job. Records are rendered and written strictly
// sequentially, separated per the format plan. Nothing reaches the sink until
// the format, the locale, and every placeholder tag have been validated; any
// failure aborts the run with no partial-output guarantee beyond what was
// already written.
func (o *Orchestrator) Generate(ctx context.Context, req Request) error {
	if req.Output == nil {
		return errors.New("generate: output sink is required")
	}
	if req.Records < 0 {
		return fmt.Errorf("generate: record count must be non-negative, got %d", req.Records)
	}

	locale := req.Locale
	if locale == "" {
		locale = o.defaultLocale
	}
	selector := req.Format
	if selector == "" {
		selector = format.Plain
	}

	plan, err := format.Adapt(req.Template, selector)
	if err != nil {
		return err
	}

	tags := template.ExtractTags(plan.RecordTemplate)
	resolved, err := o.registry.Resolve(locale, tags)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(req.Output, plan.Header); err != nil {
		return err
	}
	for i := 0; i < req.Records; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record := resolved.Generate()
		if _, err := o.renderer.RenderString(plan.RecordTemplate, record, req.Output); err != nil {
			return err
		}
		if i < req.Records-1 {
			if _, err := io.WriteString(req.Output, plan.Separator); err != nil {
				return err
			}
		}
	}
	if _, err := io.WriteString(req.Output, plan.Footer); err != nil {
		return err
	}
	return nil
}
