package prefs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"animal-registry/internal/domain/animals"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/preferences", func(pr chi.Router) {
		pr.Get("/", getPreferencesHandler(svc))
		pr.Put("/theme", setThemeHandler(svc))
		pr.Put("/filters", setFiltersHandler(svc))
		pr.Put("/sort", setSortHandler(svc))
	})
}

type themeRequest struct {
	Theme Theme `json:"theme"`
}

func getPreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func setThemeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.SetTheme(r.Context(), req.Theme); err != nil {
			writePrefsError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setFiltersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animals.FilterOptions
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.SetFilters(r.Context(), req); err != nil {
			writePrefsError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setSortHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animals.SortOptions
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.SetSort(r.Context(), req); err != nil {
			writePrefsError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writePrefsError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
