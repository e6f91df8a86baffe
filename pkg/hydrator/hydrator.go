package hydrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	internalLoader "github.com/goliatone/go-apimodel/internal/payload/loader"
	"github.com/goliatone/go-apimodel/pkg/convert"
	"github.com/goliatone/go-apimodel/pkg/model"
	"github.com/goliatone/go-apimodel/pkg/observability/logging"
	pkgpayload "github.com/goliatone/go-apimodel/pkg/payload"
)

const defaultModelName = model.ListModelName

// Option customises the hydrator configuration.
type Option func(*Hydrator)

// WithLoader injects a custom payload loader.
func WithLoader(loader pkgpayload.Loader) Option {
	return func(h *Hydrator) {
		h.loader = loader
	}
}

// WithRegistry injects the model registry used to resolve names.
func WithRegistry(registry *model.Registry) Option {
	return func(h *Hydrator) {
		h.registry = registry
	}
}

// WithConverter injects the converter handed to model factories.
func WithConverter(conv convert.Converter) Option {
	return func(h *Hydrator) {
		h.converter = conv
	}
}

// WithLogger attaches a logger for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hydrator) {
		h.logger = logger
	}
}

// WithValidation toggles schema validation ahead of hydration.
func WithValidation(enabled bool) Option {
	return func(h *Hydrator) {
		h.validate = enabled
	}
}

// WithDefaultModel overrides the model used when a request omits Model.
func WithDefaultModel(name string) Option {
	return func(h *Hydrator) {
		h.defaultModel = name
	}
}

// Hydrator turns payload sources into model instances.
type Hydrator struct {
	loader       pkgpayload.Loader
	registry     *model.Registry
	converter    convert.Converter
	logger       *slog.Logger
	validate     bool
	defaultModel string
}

// New constructs a Hydrator applying any provided options. Missing
// dependencies fall back to the built-in implementations.
func New(options ...Option) *Hydrator {
	h := &Hydrator{defaultModel: defaultModelName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.loader == nil {
		h.loader = internalLoader.New(pkgpayload.NewLoaderOptions())
	}
	if h.registry == nil {
		h.registry = model.NewRegistry()
	}
	if h.converter == nil {
		h.converter = convert.Default()
	}
	if h.logger == nil {
		h.logger = logging.Discard()
	}
	return h
}

// Request describes a single hydration. Exactly one of Object, Document or
// Source is consulted, in that order.
type Request struct {
	// Model names the registered model. Empty uses the configured default.
	Model string

	// Object is an already-decoded payload. Nil falls through to Document.
	Object map[string]any

	// Document bypasses the loader.
	Document *pkgpayload.Document

	// Source is loaded through the configured loader.
	Source pkgpayload.Source
}

// Hydrate resolves the payload and runs the model factory. A null payload
// yields a nil result and no error.
func (h *Hydrator) Hydrate(ctx context.Context, req Request) (any, error) {
	if ctx == nil {
		return nil, errors.New("hydrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := req.Model
	if name == "" {
		name = h.defaultModel
	}
	desc, ok := h.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("hydrator: %w: %q", model.ErrUnknownModel, name)
	}

	object, err := h.resolveObject(ctx, req)
	if err != nil {
		return nil, err
	}
	if object == nil {
		h.logger.Debug("hydrator: null payload", slog.String("model", desc.Name))
		return nil, nil
	}

	if h.validate {
		if err := desc.Validate(object); err != nil {
			return nil, fmt.Errorf("hydrator: %w", err)
		}
	}

	out, err := h.registry.Hydrate(ctx, desc.Name, object, h.converter)
	if err != nil {
		return nil, fmt.Errorf("hydrator: %w", err)
	}
	h.logger.Debug("hydrator: model hydrated",
		slog.String("model", desc.Name),
		slog.Int("keys", len(object)),
	)
	return out, nil
}

func (h *Hydrator) resolveObject(ctx context.Context, req Request) (map[string]any, error) {
	if req.Object != nil {
		return req.Object, nil
	}

	var doc pkgpayload.Document
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		loaded, err := h.loader.Load(ctx, req.Source)
		if err != nil {
			return nil, fmt.Errorf("hydrator: load payload: %w", err)
		}
		doc = loaded
	default:
		return nil, errors.New("hydrator: object, document or source is required")
	}

	object, err := doc.Decode()
	if err != nil {
		return nil, fmt.Errorf("hydrator: decode payload: %w", err)
	}
	if src := doc.Source(); src != nil {
		h.logger.Debug("hydrator: payload decoded",
			slog.String("source", string(src.Kind())),
			slog.String("location", src.Location()),
		)
	}
	return object, nil
}
