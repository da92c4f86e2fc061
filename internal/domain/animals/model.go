package animals

import "time"

// Animal representa un registro del plantel: una especie adquirida,
// con cantidad, valor y datos de compra. El orden dentro de la lista
// lo controla el usuario y se persiste tal cual.
type Animal struct {
	ID string `json:"id"`

	Categoria  string `json:"categoria"` // máx. 40 caracteres
	Especie    string `json:"especie"`   // máx. 50 caracteres
	Quantidade int    `json:"quantidade"`

	DataCompra     time.Time  `json:"dataCompra"`
	DataNascimento *time.Time `json:"dataNascimento,omitempty"`

	Valor   float64 `json:"valor"`
	Tamanho float64 `json:"tamanho"`

	Origem     string `json:"origem"`               // máx. 100 caracteres
	Observacao string `json:"observacao,omitempty"` // máx. 254 caracteres

	ImageURL string `json:"imageUrl,omitempty"`
}

// FilterOptions filtra la proyección de la lista.
// Todos los criterios son opcionales y se combinan con AND.
type FilterOptions struct {
	Categoria        string `json:"categoria,omitempty"`
	QuantidadeMinima int    `json:"quantidadeMinima,omitempty"`
	Busca            string `json:"busca,omitempty"`
}

// SortField es el conjunto cerrado de campos ordenables.
type SortField string

const (
	SortCategoria  SortField = "categoria"
	SortEspecie    SortField = "especie"
	SortQuantidade SortField = "quantidade"
	SortValor      SortField = "valor"
	SortDataCompra SortField = "dataCompra"
)

// Direction define la dirección de ordenamiento.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// SortOptions define el campo y la dirección de la proyección ordenada.
type SortOptions struct {
	Field     SortField `json:"field"`
	Direction Direction `json:"direction"`
}

// DefaultSort es el orden inicial (igual al default de la UI original).
func DefaultSort() SortOptions {
	return SortOptions{Field: SortCategoria, Direction: DirectionAsc}
}

// ValidSortField reporta si el campo pertenece al conjunto ordenable.
func ValidSortField(f SortField) bool {
	switch f {
	case SortCategoria, SortEspecie, SortQuantidade, SortValor, SortDataCompra:
		return true
	}
	return false
}

// ValidDirection reporta si la dirección es asc o desc.
func ValidDirection(d Direction) bool {
	return d == DirectionAsc || d == DirectionDesc
}

// DashboardStats son los agregados derivados de la lista completa.
// Nunca se persisten; se recalculan en cada lectura.
type DashboardStats struct {
	TotalAnimais      int            `json:"totalAnimais"`
	TotalPorCategoria map[string]int `json:"totalPorCategoria"`
	TotalPorEspecie   map[string]int `json:"totalPorEspecie"`
	ValorTotal        float64        `json:"valorTotal"`
	QuantidadeTotal   int            `json:"quantidadeTotal"`
}
