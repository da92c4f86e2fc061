package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"animal-registry/internal/domain/animals"
)

func RegisterRoutes(r chi.Router, svc *animals.Service) {
	r.Get("/export", exportHandler(svc))
	r.Post("/import", importHandler(svc))
}

type exportResponse struct {
	Text        string `json:"text"`
	Total       int    `json:"total"`
	WhatsAppURL string `json:"whatsappUrl"`
}

type importRequest struct {
	Text string `json:"text"`
}

type importResponse struct {
	Importados int    `json:"importados"`
	Message    string `json:"message"`
}

func exportHandler(svc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		text, err := Encode(list)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, exportResponse{
			Text:        text,
			Total:       len(list),
			WhatsAppURL: WhatsAppLink(text),
		})
	}
}

func importHandler(svc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "Texto de importação é obrigatório")
			return
		}

		imported, err := Decode(req.Text)
		switch {
		case errors.Is(err, ErrInvalidFormat):
			writeError(w, http.StatusBadRequest, `Formato de importação inválido. Deve começar com "ANIMAL::"`)
			return
		case errors.Is(err, ErrMalformedRecord):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if len(imported) == 0 {
			writeError(w, http.StatusBadRequest, "Nenhum animal encontrado no texto importado")
			return
		}

		if err := svc.Append(r.Context(), imported); err != nil {
			var verrs animals.ValidationErrors
			if errors.As(err, &verrs) {
				writeError(w, http.StatusBadRequest, verrs.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, importResponse{
			Importados: len(imported),
			Message:    fmt.Sprintf("%d animais importados com sucesso!", len(imported)),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
