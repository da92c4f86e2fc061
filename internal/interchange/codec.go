// Package interchange implementa el formato de texto portable usado para
// exportar e importar registros a mano (copiar/pegar, archivo, WhatsApp).
//
// Forma del blob:
//
//	ANIMAL::<json1>::<json2>::...::<jsonN>
//
// donde cada chunk es el JSON de un registro sin id ni imageUrl, y N puede
// ser 0 (solo el tag).
package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"animal-registry/internal/domain/animals"
)

// Tag es el prefijo literal obligatorio del blob.
const Tag = "ANIMAL::"

const delimiter = "::"

var (
	// ErrInvalidFormat: la entrada no empieza con el tag.
	ErrInvalidFormat = errors.New("formato de importação inválido")
	// ErrMalformedRecord: algún chunk no parsea; la importación entera falla.
	ErrMalformedRecord = errors.New("registro malformado")
)

// record es el subconjunto de campos que viaja en el blob.
// El orden de los campos reproduce el del exportador original.
type record struct {
	Categoria      string   `json:"categoria"`
	Especie        string   `json:"especie"`
	Quantidade     int      `json:"quantidade"`
	DataCompra     isoDate  `json:"dataCompra"`
	DataNascimento *isoDate `json:"dataNascimento,omitempty"`
	Valor          float64  `json:"valor"`
	Tamanho        float64  `json:"tamanho"`
	Origem         string   `json:"origem"`
	Observacao     string   `json:"observacao,omitempty"`
}

// Encode serializa la lista al formato portable. Lista vacía produce
// solo el tag. Cualquier "::" que quede dentro de un chunk (texto libre
// con el delimitador adentro) se reescribe como `:\u003a`, que es JSON
// equivalente pero no colisiona con el separador de registros.
func Encode(list []animals.Animal) (string, error) {
	chunks := make([]string, 0, len(list))

	for _, a := range list {
		rec := record{
			Categoria:  a.Categoria,
			Especie:    a.Especie,
			Quantidade: a.Quantidade,
			DataCompra: isoDate{a.DataCompra},
			Valor:      a.Valor,
			Tamanho:    a.Tamanho,
			Origem:     a.Origem,
			Observacao: a.Observacao,
		}
		if a.DataNascimento != nil {
			rec.DataNascimento = &isoDate{*a.DataNascimento}
		}

		b, err := json.Marshal(rec)
		if err != nil {
			return "", err
		}

		// Dentro de un chunk JSON, "::" solo puede aparecer dentro de un
		// string literal, así que el escape unicode es siempre válido.
		chunk := strings.ReplaceAll(string(b), delimiter, `:\u003a`)
		chunks = append(chunks, chunk)
	}

	return Tag + strings.Join(chunks, delimiter), nil
}

// Decode parsea un blob exportado. Cada registro recibe un id nuevo:
// los ids del lado exportador nunca se reutilizan. Un solo chunk
// malformado hace fallar la importación completa.
//
// "ANIMAL::" sin registros decodifica a lista vacía sin error; el caller
// decide cómo mostrar "nada para importar".
func Decode(input string) ([]animals.Animal, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, Tag) {
		return nil, ErrInvalidFormat
	}

	rest := strings.TrimPrefix(input, Tag)
	if rest == "" {
		return []animals.Animal{}, nil
	}

	chunks := strings.Split(rest, delimiter)
	out := make([]animals.Animal, 0, len(chunks))

	for i, chunk := range chunks {
		var rec record
		if err := json.Unmarshal([]byte(chunk), &rec); err != nil {
			return nil, fmt.Errorf("%w: registro %d: %v", ErrMalformedRecord, i+1, err)
		}

		a := animals.Animal{
			ID:         uuid.NewString(),
			Categoria:  rec.Categoria,
			Especie:    rec.Especie,
			Quantidade: rec.Quantidade,
			DataCompra: rec.DataCompra.Time,
			Valor:      rec.Valor,
			Tamanho:    rec.Tamanho,
			Origem:     rec.Origem,
			Observacao: rec.Observacao,
		}
		if rec.DataNascimento != nil && !rec.DataNascimento.IsZero() {
			t := rec.DataNascimento.Time
			a.DataNascimento = &t
		}

		out = append(out, a)
	}

	return out, nil
}

// WhatsAppLink arma el link de compartir con el blob ya exportado.
func WhatsAppLink(exportText string) string {
	// encodeURIComponent usa %20 para el espacio, QueryEscape usa '+'.
	encoded := strings.ReplaceAll(url.QueryEscape(exportText), "+", "%20")
	return "https://wa.me/?text=" + encoded
}

// isoDate serializa como instante ISO-8601 y parsea tanto instantes
// completos (con o sin milisegundos) como fechas planas YYYY-MM-DD.
type isoDate struct {
	time.Time
}

func (d isoDate) MarshalJSON() ([]byte, error) {
	// Mismo formato que emite el exportador original (UTC con millis).
	return []byte(`"` + d.UTC().Format("2006-01-02T15:04:05.000Z07:00") + `"`), nil
}

func (d *isoDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("data inválida %q", s)
	}
	d.Time = t
	return nil
}
