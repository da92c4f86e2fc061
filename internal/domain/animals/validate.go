package animals

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// FieldError es un error de validación asociado a un campo puntual.
// El mensaje va en portugués porque es texto visible para el usuario.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors junta todos los errores de campo de un submit.
// Se validan todos los campos; no se corta en el primero.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "invalid input"
	}
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

const (
	maxCategoria  = 40
	maxEspecie    = 50
	maxOrigem     = 100
	maxObservacao = 254
)

// Validate aplica las reglas del formulario de alta/edición.
// Devuelve nil cuando el registro es válido.
func Validate(a Animal) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(a.Categoria) == "" {
		errs = append(errs, FieldError{"categoria", "Categoria é obrigatória"})
	} else if utf8.RuneCountInString(a.Categoria) > maxCategoria {
		errs = append(errs, FieldError{"categoria", "Categoria deve ter no máximo 40 caracteres"})
	}

	if strings.TrimSpace(a.Especie) == "" {
		errs = append(errs, FieldError{"especie", "Espécie é obrigatória"})
	} else if utf8.RuneCountInString(a.Especie) > maxEspecie {
		errs = append(errs, FieldError{"especie", "Espécie deve ter no máximo 50 caracteres"})
	}

	if a.Quantidade <= 0 {
		errs = append(errs, FieldError{"quantidade", "Quantidade deve ser um número positivo"})
	}

	if a.DataCompra.IsZero() {
		errs = append(errs, FieldError{"dataCompra", "Data de compra é obrigatória"})
	}

	if a.Valor <= 0 {
		errs = append(errs, FieldError{"valor", "Valor deve ser um número positivo"})
	}

	if a.Tamanho <= 0 {
		errs = append(errs, FieldError{"tamanho", "Tamanho deve ser um número positivo"})
	}

	if strings.TrimSpace(a.Origem) == "" {
		errs = append(errs, FieldError{"origem", "Origem é obrigatória"})
	} else if utf8.RuneCountInString(a.Origem) > maxOrigem {
		errs = append(errs, FieldError{"origem", "Origem deve ter no máximo 100 caracteres"})
	}

	if utf8.RuneCountInString(a.Observacao) > maxObservacao {
		errs = append(errs, FieldError{"observacao", "Observação deve ter no máximo 254 caracteres"})
	}

	if a.ImageURL != "" && !validURL(a.ImageURL) {
		errs = append(errs, FieldError{"imageUrl", "URL da imagem inválida"})
	}

	return errs
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
