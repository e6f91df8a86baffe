// Package apimodel is the entry point for hydrating generated Petstore models
// from JSON or YAML payloads. It re-exports constructors from the pkg/ tree so
// callers can start with a single import.
package apimodel

import (
	"context"

	internalLoader "github.com/goliatone/go-apimodel/internal/payload/loader"
	"github.com/goliatone/go-apimodel/pkg/hydrator"
	pkgpayload "github.com/goliatone/go-apimodel/pkg/payload"
)

// NewLoader constructs a payload loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgpayload.LoaderOption) pkgpayload.Loader {
	cfg := pkgpayload.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewHydrator exposes the hydrator constructor from the top-level module.
func NewHydrator(options ...hydrator.Option) *hydrator.Hydrator {
	return hydrator.New(options...)
}

// HydrateSource loads source and hydrates the named model in one call.
func HydrateSource(ctx context.Context, source pkgpayload.Source, modelName string, options ...hydrator.Option) (any, error) {
	return hydrator.New(options...).Hydrate(ctx, hydrator.Request{
		Model:  modelName,
		Source: source,
	})
}
