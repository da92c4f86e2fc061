package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"animal-registry/internal/domain/animals"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get arma las preferencias completas; las claves ausentes caen en los
// defaults de la UI.
func (s *Service) Get(ctx context.Context) (Preferences, error) {
	out := Defaults()

	if err := s.load(ctx, KeyTheme, &out.Theme); err != nil {
		return Preferences{}, err
	}
	if err := s.load(ctx, KeyFilters, &out.Filters); err != nil {
		return Preferences{}, err
	}
	if err := s.load(ctx, KeySort, &out.Sort); err != nil {
		return Preferences{}, err
	}

	return out, nil
}

func (s *Service) SetTheme(ctx context.Context, t Theme) error {
	if t != ThemeLight && t != ThemeDark {
		return fmt.Errorf("%w: theme deve ser light ou dark", ErrInvalidInput)
	}
	return s.store(ctx, KeyTheme, t)
}

func (s *Service) SetFilters(ctx context.Context, f animals.FilterOptions) error {
	if f.QuantidadeMinima < 0 {
		return fmt.Errorf("%w: quantidadeMinima não pode ser negativa", ErrInvalidInput)
	}
	return s.store(ctx, KeyFilters, f)
}

func (s *Service) SetSort(ctx context.Context, so animals.SortOptions) error {
	if !animals.ValidSortField(so.Field) {
		return fmt.Errorf("%w: campo de ordenação inválido", ErrInvalidInput)
	}
	if !animals.ValidDirection(so.Direction) {
		return fmt.Errorf("%w: direção de ordenação inválida", ErrInvalidInput)
	}
	return s.store(ctx, KeySort, so)
}

func (s *Service) load(ctx context.Context, key string, dst any) error {
	raw, found, err := s.repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func (s *Service) store(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, key, raw)
}
