package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Input son los campos editables de un registro (todo menos el id).
type Input struct {
	Categoria      string
	Especie        string
	Quantidade     int
	DataCompra     time.Time
	DataNascimento *time.Time
	Valor          float64
	Tamanho        float64
	Origem         string
	Observacao     string
	ImageURL       string
}

func (in Input) toAnimal(id string) Animal {
	return Animal{
		ID:             id,
		Categoria:      strings.TrimSpace(in.Categoria),
		Especie:        strings.TrimSpace(in.Especie),
		Quantidade:     in.Quantidade,
		DataCompra:     in.DataCompra,
		DataNascimento: in.DataNascimento,
		Valor:          in.Valor,
		Tamanho:        in.Tamanho,
		Origem:         strings.TrimSpace(in.Origem),
		Observacao:     strings.TrimSpace(in.Observacao),
		ImageURL:       strings.TrimSpace(in.ImageURL),
	}
}

// Create valida y agrega un registro al final de la lista.
// DataCompra vacía se completa con la fecha actual (default del formulario).
func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	if in.DataCompra.IsZero() {
		in.DataCompra = s.now()
	}

	a := in.toAnimal(s.newID())
	if errs := Validate(a); errs != nil {
		return Animal{}, errs
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return Animal{}, err
	}

	list = append(list, a)
	if err := s.repo.Replace(ctx, list); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Update reemplaza todos los campos del registro identificado por id.
// El id y la posición en la lista no cambian.
func (s *Service) Update(ctx context.Context, id string, in Input) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}

	a := in.toAnimal(id)
	if errs := Validate(a); errs != nil {
		return Animal{}, errs
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return Animal{}, err
	}

	idx := indexOf(list, id)
	if idx < 0 {
		return Animal{}, ErrNotFound
	}

	list[idx] = a
	if err := s.repo.Replace(ctx, list); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(list, id)
	if idx < 0 {
		return ErrNotFound
	}

	list = append(list[:idx], list[idx+1:]...)
	return s.repo.Replace(ctx, list)
}

// Reorder mueve el registro de la posición from a la posición to
// (semántica de drag and drop: se quita y se reinserta).
func (s *Service) Reorder(ctx context.Context, from, to int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return ErrInvalidInput
	}
	if from == to {
		return nil
	}

	moved := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list[:to], append([]Animal{moved}, list[to:]...)...)

	return s.repo.Replace(ctx, list)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return Animal{}, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return Animal{}, ErrNotFound
	}
	return list[idx], nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// Append agrega registros al final de la lista en un único Replace.
// Lo usa la importación: si algún registro es inválido no se aplica nada.
func (s *Service) Append(ctx context.Context, items []Animal) error {
	if len(items) == 0 {
		return nil
	}

	for _, a := range items {
		if errs := Validate(a); errs != nil {
			return errs
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	list = append(list, items...)
	return s.repo.Replace(ctx, list)
}

func indexOf(list []Animal, id string) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}
