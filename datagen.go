// Package datagen renders a record template N times, substituting
// {{module.function}} placeholder tags with synthetic data from a
// locale-keyed provider registry, optionally wrapping the output in a
// container format (plain list, CSV, JSON array).
package datagen

import (
	"bytes"
	"context"

	"github.com/goliatone/go-datagen/internal/locales"
	"github.com/goliatone/go-datagen/pkg/format"
	"github.com/goliatone/go-datagen/pkg/generate"
	"github.com/goliatone/go-datagen/pkg/provider"
)

// Format selects the output container; aliased at the root package for
// convenience.
type Format = format.Format

// Supported container formats.
const (
	Plain = format.Plain
	CSV   = format.CSV
	JSON  = format.JSON
)

// Request describes a single render job.
type Request = generate.Request

// Option customises the orchestrator configuration.
type Option = generate.Option

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...Option) *generate.Orchestrator {
	return generate.New(options...)
}

// BuiltinRegistry constructs a registry preloaded with the bundled locale
// capability graphs, keeping the concrete builder hidden from consumers.
// Callers can register additional locales on the returned registry before
// starting a run.
func BuiltinRegistry() *provider.Registry {
	return locales.Builtin()
}

// Generate runs one render job with a default orchestrator. It is the
// simplest entry point for callers that just want records on a sink.
func Generate(ctx context.Context, req Request, options ...Option) error {
	gen := generate.New(options...)
	return gen.Generate(ctx, req)
}

// GenerateString renders records into a string, for callers that do not
// stream to a file.
func GenerateString(ctx context.Context, template string, records int, locale string, f Format, options ...Option) (string, error) {
	var buf bytes.Buffer
	err := Generate(ctx, Request{
		Template: template,
		Output:   &buf,
		Records:  records,
		Locale:   locale,
		Format:   f,
	}, options...)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
