package animals

import "context"

// Repository persiste la lista ordenada completa.
// Replace es la única escritura: cada mutación lógica (alta, edición,
// borrado, reorden) reemplaza la lista entera de forma atómica, así no
// existe estado parcialmente escrito.
type Repository interface {
	List(ctx context.Context) ([]Animal, error)
	Replace(ctx context.Context, list []Animal) error
}
