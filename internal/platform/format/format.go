// Package format concentra los helpers de presentación en pt-BR:
// edad desde la fecha de compra, moneda y fecha. Son funciones puras;
// la "fecha actual" siempre entra por parámetro.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Age calcula años y meses enteros transcurridos desde la compra y los
// presenta en portugués con singular/plural correcto.
func Age(dataCompra, now time.Time) string {
	years := now.Year() - dataCompra.Year()
	months := int(now.Month()) - int(dataCompra.Month())

	if months < 0 {
		years--
		months += 12
	}

	switch {
	case years == 0 && months == 0:
		return "Menos de 1 mês"
	case years == 0:
		return fmt.Sprintf("%d %s", months, plural(months, "mês", "meses"))
	case months == 0:
		return fmt.Sprintf("%d %s", years, plural(years, "ano", "anos"))
	default:
		return fmt.Sprintf("%d %s, %d %s",
			years, plural(years, "ano", "anos"),
			months, plural(months, "mês", "meses"))
	}
}

func plural(n int, singular, pl string) string {
	if n == 1 {
		return singular
	}
	return pl
}

// Currency renderiza un valor en reales con las convenciones pt-BR
// (punto de miles, coma decimal): R$ 1.234,56.
func Currency(v float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}

// Date renderiza la fecha corta pt-BR (dd/mm/aaaa).
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
