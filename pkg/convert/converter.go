package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Converter coerces a raw decoded value into the declared type. Nil input
// must yield nil output so absent-vs-null stays observable by the caller.
type Converter interface {
	ConvertToType(value any, t Type) (any, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(value any, t Type) (any, error)

// ConvertToType calls f(value, t).
func (f ConverterFunc) ConvertToType(value any, t Type) (any, error) {
	return f(value, t)
}

// DefaultDateLayouts are tried in order when coercing strings to Date.
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Options configures the standard converter.
type Options struct {
	// Strict disables lossy coercions: only values whose JSON shape already
	// matches the declared type (or strings that parse cleanly) are accepted.
	Strict bool

	// DateLayouts overrides DefaultDateLayouts.
	DateLayouts []string

	// Logger receives debug records for lossy coercions. Nil discards.
	Logger *slog.Logger
}

// Option mutates Options before construction.
type Option func(*Options)

// WithStrict toggles strict coercion.
func WithStrict(strict bool) Option {
	return func(opts *Options) {
		opts.Strict = strict
	}
}

// WithDateLayouts replaces the layouts used to parse Date values.
func WithDateLayouts(layouts ...string) Option {
	return func(opts *Options) {
		opts.DateLayouts = append([]string(nil), layouts...)
	}
}

// WithLogger attaches a logger for coercion diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// Standard is the built-in Converter. It is immutable after construction and
// safe for concurrent use.
type Standard struct {
	strict  bool
	layouts []string
	logger  *slog.Logger
}

var _ Converter = (*Standard)(nil)

var defaultConverter = New()

// Default returns the shared best-effort converter.
func Default() *Standard {
	return defaultConverter
}

// New constructs a Standard converter from options.
func New(options ...Option) *Standard {
	cfg := Options{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	layouts := cfg.DateLayouts
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Standard{
		strict:  cfg.Strict,
		layouts: append([]string(nil), layouts...),
		logger:  logger,
	}
}

// Strict reports whether lossy coercions are rejected.
func (c *Standard) Strict() bool {
	return c != nil && c.strict
}

// ConvertToType implements Converter.
func (c *Standard) ConvertToType(value any, t Type) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch t.kind {
	case KindPrimitive:
		return c.convertPrimitive(value, t)
	case KindArray:
		return c.convertArray(value, t)
	case KindMap:
		return c.convertMap(value, t)
	case KindModel:
		return c.convertModel(value, t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, t.String())
	}
}

func (c *Standard) convertPrimitive(value any, t Type) (any, error) {
	switch t.name {
	case String.name:
		return c.toString(value, t)
	case Boolean.name:
		return c.toBoolean(value, t)
	case Integer.name:
		return c.toInteger(value, t)
	case Number.name:
		return c.toNumber(value, t)
	case Date.name:
		return c.toDate(value, t)
	case Blob.name, Object.name:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, t.name)
	}
}

func (c *Standard) toString(value any, t Type) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	}
	if c.strict {
		return nil, coercionError(t, value, nil)
	}
	var out string
	switch v := value.(type) {
	case bool:
		out = strconv.FormatBool(v)
	case float64:
		out = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		out = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		out = strconv.Itoa(v)
	case int64:
		out = strconv.FormatInt(v, 10)
	case time.Time:
		out = v.Format(time.RFC3339Nano)
	default:
		out = fmt.Sprint(v)
	}
	c.lossy(t, value)
	return out, nil
}

func (c *Standard) toBoolean(value any, t Type) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return parsed, nil
		}
		if c.strict {
			return nil, coercionError(t, value, err)
		}
		c.lossy(t, value)
		return v != "", nil
	}
	if c.strict {
		return nil, coercionError(t, value, nil)
	}
	c.lossy(t, value)
	if f, ok := toFloat(value); ok {
		return f != 0 && !math.IsNaN(f), nil
	}
	return true, nil
}

var leadingInteger = regexp.MustCompile(`^[+-]?\d+`)

func (c *Standard) toInteger(value any, t Type) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, coercionError(t, value, strconv.ErrRange)
		}
		return int64(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, coercionError(t, value, err)
		}
		return c.integerFromFloat(f, value, t)
	case float64:
		return c.integerFromFloat(v, value, t)
	case float32:
		return c.integerFromFloat(float64(v), value, t)
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err == nil {
			return n, nil
		}
		if c.strict {
			return nil, coercionError(t, value, err)
		}
		prefix := leadingInteger.FindString(trimmed)
		if prefix == "" {
			return nil, coercionError(t, value, err)
		}
		n, err = strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			return nil, coercionError(t, value, err)
		}
		c.lossy(t, value)
		return n, nil
	default:
		return nil, coercionError(t, value, nil)
	}
}

// maxInt64Float is 2^63; float64(math.MaxInt64) rounds up to it, so the
// bound must be exclusive.
var maxInt64Float = math.Ldexp(1, 63)

func (c *Standard) integerFromFloat(f float64, raw any, t Type) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= maxInt64Float || f < math.MinInt64 {
		return nil, coercionError(t, raw, strconv.ErrRange)
	}
	if f != math.Trunc(f) {
		if c.strict {
			return nil, coercionError(t, raw, nil)
		}
		c.lossy(t, raw)
	}
	return int64(f), nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func (c *Standard) toNumber(value any, t Type) (any, error) {
	if f, ok := toFloat(value); ok {
		return f, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, coercionError(t, value, nil)
	}
	trimmed := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err == nil {
		return f, nil
	}
	if c.strict {
		return nil, coercionError(t, value, err)
	}
	prefix := leadingNumber.FindString(trimmed)
	if prefix == "" {
		return nil, coercionError(t, value, err)
	}
	f, err = strconv.ParseFloat(prefix, 64)
	if err != nil {
		return nil, coercionError(t, value, err)
	}
	c.lossy(t, value)
	return f, nil
}

func (c *Standard) toDate(value any, t Type) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		var lastErr error
		for _, layout := range c.layouts {
			parsed, err := time.Parse(layout, trimmed)
			if err == nil {
				return parsed, nil
			}
			lastErr = err
		}
		return nil, coercionError(t, value, lastErr)
	default:
		return nil, coercionError(t, value, nil)
	}
}

func (c *Standard) convertArray(value any, t Type) (any, error) {
	elem, _ := t.Elem()
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, coercionError(t, value, ErrNotArray)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		converted, err := c.ConvertToType(rv.Index(i).Interface(), elem)
		if err != nil {
			return nil, fmt.Errorf("convert: %s index %d: %w", t, i, err)
		}
		out[i] = converted
	}
	return out, nil
}

func (c *Standard) convertMap(value any, t Type) (any, error) {
	elem, _ := t.Elem()
	object, ok := asObject(value)
	if !ok {
		return nil, coercionError(t, value, ErrNotObject)
	}
	out := make(map[string]any, len(object))
	for key, raw := range object {
		converted, err := c.ConvertToType(raw, elem)
		if err != nil {
			return nil, fmt.Errorf("convert: %s key %q: %w", t, key, err)
		}
		out[key] = converted
	}
	return out, nil
}

func (c *Standard) convertModel(value any, t Type) (any, error) {
	if t.hydrate == nil {
		return nil, fmt.Errorf("%w: model %q has no hydrator", ErrUnsupportedType, t.name)
	}
	object, ok := asObject(value)
	if !ok {
		return nil, coercionError(t, value, ErrNotObject)
	}
	return t.hydrate(object, c)
}

func (c *Standard) lossy(t Type, value any) {
	c.logger.Debug("convert: lossy coercion",
		slog.String("type", t.String()),
		slog.String("from", fmt.Sprintf("%T", value)),
	)
}

// asObject accepts both map[string]any (encoding/json, yaml.v3) and
// map[any]any (older YAML decoders) as long as every key is a string.
func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[name] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
