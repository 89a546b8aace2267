package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fishguide/internal/advisor"
	"fishguide/internal/catalog"
	"fishguide/internal/journal"
	"fishguide/internal/report"
)

// Image data URLs travel inside entry bodies.
const maxBodyBytes = 32 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var scenario advisor.Scenario
	if err := decode(w, r, &scenario); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(scenario.Question) == "" {
		writeError(w, http.StatusBadRequest, errors.New("question is required"))
		return
	}
	writeJSON(w, http.StatusOK, s.advisor.Recommend(scenario))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		writeError(w, http.StatusBadRequest, errors.New("location is required"))
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.today()
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(location, date)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.reports.Generate(location, date)))
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	filter, err := catalogFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.FindSpecies(filter))
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	filter, err := catalogFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.FindLocations(filter))
}

func (s *Server) handleGear(w http.ResponseWriter, r *http.Request) {
	if species := r.URL.Query().Get("species"); species != "" {
		writeJSON(w, http.StatusOK, s.gear.ForSpecies(species))
		return
	}
	writeJSON(w, http.StatusOK, s.gear.Categories())
}

func (s *Server) handleStarterKits(w http.ResponseWriter, r *http.Request) {
	level, err := catalog.ParseLevel(r.URL.Query().Get("level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	wt, err := catalog.ParseWaterType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.gear.StarterKits(catalog.KitFilter{Level: level, Type: wt}))
}

func catalogFilter(r *http.Request) (catalog.Filter, error) {
	wt, err := catalog.ParseWaterType(r.URL.Query().Get("type"))
	if err != nil {
		return catalog.Filter{}, err
	}
	return catalog.Filter{Search: r.URL.Query().Get("q"), Type: wt}, nil
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.journal.Entries(r.Context()))
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.journal.Entry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	var entry journal.Entry
	if err := decode(w, r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	saved, err := s.journal.SaveEntry(r.Context(), entry)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.journal.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEntryCatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.journal.CatchesForEntry(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handleListCatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.journal.Catches(r.Context()))
}

func (s *Server) handleAddCatch(w http.ResponseWriter, r *http.Request) {
	var c journal.Catch
	if err := decode(w, r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(c.Species) == "" {
		writeError(w, http.StatusBadRequest, errors.New("species is required"))
		return
	}
	added, err := s.journal.AddCatch(r.Context(), c)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleDeleteCatch(w http.ResponseWriter, r *http.Request) {
	if err := s.journal.DeleteCatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, journal.ErrEntryNotFound), errors.Is(err, journal.ErrCatchNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
