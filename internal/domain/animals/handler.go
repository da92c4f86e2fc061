package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-registry/internal/platform/format"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/categorias", listCategoriesHandler(svc))
		ar.Put("/ordem", reorderHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})

	r.Get("/dashboard", dashboardHandler(svc))
}

type animalRequest struct {
	Categoria      string  `json:"categoria"`
	Especie        string  `json:"especie"`
	Quantidade     int     `json:"quantidade"`
	DataCompra     string  `json:"dataCompra"`     // YYYY-MM-DD o RFC3339; vacío = hoy
	DataNascimento string  `json:"dataNascimento"` // opcional
	Valor          float64 `json:"valor"`
	Tamanho        float64 `json:"tamanho"`
	Origem         string  `json:"origem"`
	Observacao     string  `json:"observacao"`
	ImageURL       string  `json:"imageUrl"`
}

// animalResponse agrega a cada registro los campos de presentación
// derivados (edad, valor y fecha formateados).
type animalResponse struct {
	Animal
	Idade               string `json:"idade"`
	ValorFormatado      string `json:"valorFormatado"`
	DataCompraFormatada string `json:"dataCompraFormatada"`
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type dashboardResponse struct {
	DashboardStats
	ValorTotalFormatado string `json:"valorTotalFormatado"`
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeAnimalRequest(w, r)
		if !ok {
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a, time.Now()))
	}
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, sortOpts, err := criteriaFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		projected := FilterAndSort(list, filter, sortOpts)

		now := time.Now()
		out := make([]animalResponse, 0, len(projected))
		for _, a := range projected {
			out = append(out, toAnimalResponse(a, now))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func listCategoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, UniqueCategories(list))
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a, time.Now()))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeAnimalRequest(w, r)
		if !ok {
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a, time.Now()))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func reorderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := svc.Reorder(r.Context(), req.From, req.To); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		stats := ComputeStats(list)
		writeJSON(w, http.StatusOK, dashboardResponse{
			DashboardStats:      stats,
			ValorTotalFormatado: format.Currency(stats.ValorTotal),
		})
	}
}

func decodeAnimalRequest(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req animalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return Input{}, false
	}

	dataCompra, err := parseDate(req.DataCompra)
	if err != nil {
		writeError(w, http.StatusBadRequest, "dataCompra deve ser YYYY-MM-DD")
		return Input{}, false
	}

	var nascimento *time.Time
	if strings.TrimSpace(req.DataNascimento) != "" {
		t, err := parseDate(req.DataNascimento)
		if err != nil {
			writeError(w, http.StatusBadRequest, "dataNascimento deve ser YYYY-MM-DD")
			return Input{}, false
		}
		nascimento = &t
	}

	return Input{
		Categoria:      req.Categoria,
		Especie:        req.Especie,
		Quantidade:     req.Quantidade,
		DataCompra:     dataCompra,
		DataNascimento: nascimento,
		Valor:          req.Valor,
		Tamanho:        req.Tamanho,
		Origem:         req.Origem,
		Observacao:     req.Observacao,
		ImageURL:       req.ImageURL,
	}, true
}

func criteriaFromQuery(r *http.Request) (FilterOptions, SortOptions, error) {
	q := r.URL.Query()

	filter := FilterOptions{
		Categoria: q.Get("categoria"),
		Busca:     q.Get("busca"),
	}
	if raw := q.Get("quantidade_minima"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return FilterOptions{}, SortOptions{}, errors.New("quantidade_minima deve ser um inteiro não negativo")
		}
		filter.QuantidadeMinima = n
	}

	sortOpts := DefaultSort()
	if raw := q.Get("sort"); raw != "" {
		f := SortField(raw)
		if !ValidSortField(f) {
			return FilterOptions{}, SortOptions{}, errors.New("sort inválido")
		}
		sortOpts.Field = f
	}
	if raw := q.Get("direction"); raw != "" {
		d := Direction(raw)
		if !ValidDirection(d) {
			return FilterOptions{}, SortOptions{}, errors.New("direction inválido")
		}
		sortOpts.Direction = d
	}

	return filter, sortOpts, nil
}

// parseDate acepta fecha plana o instante completo; vacío = zero time
// (el service la completa con hoy en el alta).
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toAnimalResponse(a Animal, now time.Time) animalResponse {
	return animalResponse{
		Animal:              a,
		Idade:               format.Age(a.DataCompra, now),
		ValorFormatado:      format.Currency(a.Valor),
		DataCompraFormatada: format.Date(a.DataCompra),
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "animal not found")
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto del proyecto: todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
