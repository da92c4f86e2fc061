package prefs

import (
	"context"
	"errors"
	"testing"

	"animal-registry/internal/domain/animals"
)

type testRepo struct {
	values map[string][]byte
}

func newTestRepo() *testRepo {
	return &testRepo{values: map[string][]byte{}}
}

func (r *testRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *testRepo) Set(ctx context.Context, key string, value []byte) error {
	r.values[key] = value
	return nil
}

func TestService_Defaults(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Theme != ThemeLight {
		t.Fatalf("expected light theme default, got %s", p.Theme)
	}
	if p.Sort.Field != animals.SortCategoria || p.Sort.Direction != animals.DirectionAsc {
		t.Fatalf("unexpected sort default: %+v", p.Sort)
	}
	if p.Filters != (animals.FilterOptions{}) {
		t.Fatalf("expected empty filters, got %+v", p.Filters)
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if err := svc.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := svc.SetFilters(ctx, animals.FilterOptions{Categoria: "Peixe", QuantidadeMinima: 2, Busca: "bet"}); err != nil {
		t.Fatalf("set filters: %v", err)
	}
	if err := svc.SetSort(ctx, animals.SortOptions{Field: animals.SortValor, Direction: animals.DirectionDesc}); err != nil {
		t.Fatalf("set sort: %v", err)
	}

	p, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if p.Theme != ThemeDark {
		t.Fatalf("theme not persisted: %s", p.Theme)
	}
	if p.Filters.Categoria != "Peixe" || p.Filters.QuantidadeMinima != 2 || p.Filters.Busca != "bet" {
		t.Fatalf("filters not persisted: %+v", p.Filters)
	}
	if p.Sort.Field != animals.SortValor || p.Sort.Direction != animals.DirectionDesc {
		t.Fatalf("sort not persisted: %+v", p.Sort)
	}
}

func TestService_RejectsInvalidValues(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if err := svc.SetTheme(ctx, "blue"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for theme, got %v", err)
	}
	if err := svc.SetSort(ctx, animals.SortOptions{Field: "peso", Direction: animals.DirectionAsc}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for sort field, got %v", err)
	}
	if err := svc.SetSort(ctx, animals.SortOptions{Field: animals.SortValor, Direction: "sideways"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for direction, got %v", err)
	}
	if err := svc.SetFilters(ctx, animals.FilterOptions{QuantidadeMinima: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for filters, got %v", err)
	}
}
