package animals

import (
	"sort"
	"strings"
)

// ComputeStats recorre la lista una sola vez y acumula los agregados
// del dashboard. Lista vacía produce stats en cero (mapas vacíos, no nil).
func ComputeStats(list []Animal) DashboardStats {
	stats := DashboardStats{
		TotalAnimais:      len(list),
		TotalPorCategoria: make(map[string]int),
		TotalPorEspecie:   make(map[string]int),
	}

	for _, a := range list {
		stats.TotalPorCategoria[a.Categoria]++
		stats.TotalPorEspecie[a.Especie]++
		stats.ValorTotal += a.Valor * float64(a.Quantidade)
		stats.QuantidadeTotal += a.Quantidade
	}

	return stats
}

// FilterAndSort devuelve una proyección nueva de la lista: primero el
// predicado de filtros (todos en AND), después el orden pedido.
// Nunca muta la entrada. Los empates mantienen el orden original de la
// lista (orden estable).
func FilterAndSort(list []Animal, filter FilterOptions, sortOpts SortOptions) []Animal {
	out := make([]Animal, 0, len(list))
	for _, a := range list {
		if matches(a, filter) {
			out = append(out, a)
		}
	}

	cmp := comparatorFor(sortOpts.Field)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if sortOpts.Direction == DirectionDesc {
			return c > 0
		}
		return c < 0
	})

	return out
}

func matches(a Animal, f FilterOptions) bool {
	if f.Categoria != "" && a.Categoria != f.Categoria {
		return false
	}
	if f.QuantidadeMinima > 0 && a.Quantidade < f.QuantidadeMinima {
		return false
	}
	if f.Busca != "" {
		term := strings.ToLower(f.Busca)
		if !strings.Contains(strings.ToLower(a.Categoria), term) &&
			!strings.Contains(strings.ToLower(a.Especie), term) {
			return false
		}
	}
	return true
}

// comparatorFor mapea cada campo ordenable a un accessor tipado.
// Campo desconocido cae en categoría, igual que el default de la UI.
func comparatorFor(field SortField) func(a, b Animal) int {
	switch field {
	case SortEspecie:
		return func(a, b Animal) int { return strings.Compare(a.Especie, b.Especie) }
	case SortQuantidade:
		return func(a, b Animal) int { return compareInt(a.Quantidade, b.Quantidade) }
	case SortValor:
		return func(a, b Animal) int { return compareFloat(a.Valor, b.Valor) }
	case SortDataCompra:
		// Compara el instante, no la representación textual.
		return func(a, b Animal) int { return a.DataCompra.Compare(b.DataCompra) }
	default:
		return func(a, b Animal) int { return strings.Compare(a.Categoria, b.Categoria) }
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// UniqueCategories devuelve las categorías distintas, ordenadas.
// Alimenta el combo de filtro por categoría.
func UniqueCategories(list []Animal) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, a := range list {
		if _, ok := seen[a.Categoria]; ok {
			continue
		}
		seen[a.Categoria] = struct{}{}
		out = append(out, a.Categoria)
	}
	sort.Strings(out)
	return out
}
