package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apimodel/pkg/convert"
)

func TestRegistry_BuiltinsIncludeList(t *testing.T) {
	reg := NewRegistry()

	if diff := cmp.Diff([]string{ListModelName}, reg.Names()); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
	desc, ok := reg.Lookup(" List ")
	if !ok {
		t.Fatalf("expected List descriptor")
	}
	if len(desc.Fields) != 1 || desc.Fields[0].WireKey != "123-list" || desc.Fields[0].GoName != "List123" {
		t.Fatalf("unexpected field table %+v", desc.Fields)
	}
	if desc.Type().Name() != ListModelName || desc.Type().Kind() != convert.KindModel {
		t.Fatalf("unexpected type %v", desc.Type())
	}
}

func TestRegistry_LookupReturnsFieldCopy(t *testing.T) {
	reg := NewRegistry()
	desc, _ := reg.Lookup(ListModelName)
	desc.Fields[0].WireKey = "mutated"

	again, _ := reg.Lookup(ListModelName)
	if again.Fields[0].WireKey != "123-list" {
		t.Fatalf("registry state leaked through Lookup")
	}
}

func TestRegistry_RegisterRejectsInvalidDescriptors(t *testing.T) {
	reg := NewEmptyRegistry()
	hydrate := func(map[string]any, convert.Converter) (any, error) { return nil, nil }

	cases := []struct {
		name string
		desc Descriptor
		want error
	}{
		{name: "empty name", desc: Descriptor{Name: "  ", Hydrate: hydrate}, want: ErrInvalidDescriptor},
		{name: "missing hydrator", desc: Descriptor{Name: "Pet"}, want: ErrInvalidDescriptor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := reg.Register(tc.desc); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if err := reg.Register(Descriptor{Name: "Pet", Hydrate: hydrate}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(Descriptor{Name: "Pet", Hydrate: hydrate}); !errors.Is(err, ErrDuplicateModel) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegistry_Hydrate(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	got, err := reg.Hydrate(ctx, ListModelName, map[string]any{"123-list": "abc"}, nil)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	list, ok := got.(*List)
	if !ok {
		t.Fatalf("expected *List, got %T", got)
	}
	if value, _ := list.GetList123(); value != "abc" {
		t.Fatalf("unexpected value %q", value)
	}

	got, err = reg.Hydrate(ctx, ListModelName, nil, nil)
	if err != nil || got != nil {
		t.Fatalf("expected nil result for nil data, got %v (%v)", got, err)
	}

	if _, err := reg.Hydrate(ctx, "Pet", map[string]any{}, nil); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("expected ErrUnknownModel, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := reg.Hydrate(cancelled, ListModelName, map[string]any{}, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestDescriptor_Validate(t *testing.T) {
	desc := ListDescriptor()

	if err := desc.Validate(map[string]any{"123-list": "abc", "extra": true}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	if err := desc.Validate(map[string]any{"123-list": nil}); err != nil {
		t.Fatalf("explicit null must validate, got %v", err)
	}
	if err := desc.Validate(map[string]any{"123-list": 12.0}); err == nil {
		t.Fatalf("expected schema violation for numeric value")
	}
	if err := (Descriptor{Name: "Loose"}).Validate(map[string]any{"any": 1}); err != nil {
		t.Fatalf("descriptor without schema must accept anything, got %v", err)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()
	hydrate := func(map[string]any, convert.Converter) (any, error) { return nil, nil }

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers*3)

	for i := 0; i < workers; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			if err := reg.Register(Descriptor{Name: fmt.Sprintf("Model%d", i), Hydrate: hydrate}); err != nil {
				errs <- err
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			value := fmt.Sprintf("v%d", i)
			got, err := reg.Hydrate(ctx, ListModelName, map[string]any{"123-list": value}, nil)
			if err != nil {
				errs <- err
				return
			}
			if v, _ := got.(*List).GetList123(); v != value {
				errs <- fmt.Errorf("worker %d: got %q", i, v)
			}
			if _, ok := reg.Lookup(ListModelName); !ok {
				errs <- errors.New("List missing during concurrent access")
			}
			_ = reg.Names()
		}(i)
		go func(i int) {
			defer wg.Done()
			got, err := convert.Default().ConvertToType(float64(i), convert.String)
			if err != nil {
				errs <- err
				return
			}
			if got != fmt.Sprint(i) {
				errs <- fmt.Errorf("worker %d: converted %v", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	if got := len(reg.Names()); got != workers+1 {
		t.Fatalf("expected %d models, got %d", workers+1, got)
	}
}
