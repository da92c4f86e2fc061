package prefs

import "animal-registry/internal/domain/animals"

// Theme es la preferencia de tema de la UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Claves fijas bajo las que se persiste cada preferencia,
// iguales a las claves del almacenamiento local original.
const (
	KeyTheme   = "theme"
	KeyFilters = "filters"
	KeySort    = "sort"
)

// Preferences agrupa todo lo persistido fuera de la lista de animales.
type Preferences struct {
	Theme   Theme                 `json:"theme"`
	Filters animals.FilterOptions `json:"filters"`
	Sort    animals.SortOptions   `json:"sort"`
}

// Defaults replica los valores iniciales de la UI.
func Defaults() Preferences {
	return Preferences{
		Theme:   ThemeLight,
		Filters: animals.FilterOptions{},
		Sort:    animals.DefaultSort(),
	}
}
