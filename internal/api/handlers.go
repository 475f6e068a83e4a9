package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/errors"
	"github.com/matzehuels/ganttring/pkg/pipeline"
	"github.com/matzehuels/ganttring/pkg/sample"
	"github.com/matzehuels/ganttring/pkg/store"
)

// chartSummary is the list-view projection of a stored document.
type chartSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount int    `json:"task_count"`
	CreatedAt string `json:"created_at"`
}

// createChartRequest is the POST /api/charts body.
type createChartRequest struct {
	Name      string           `json:"name"`
	Intervals []chart.Interval `json:"intervals"`
	Options   pipeline.Options `json:"options"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	summaries := make([]chartSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, chartSummary{
			ID:        doc.ID,
			Name:      doc.Name,
			TaskCount: len(doc.Intervals),
			CreatedAt: doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	// Compress defaults on; the zero value of a decoded bool cannot
	// distinguish "absent" from "false", so seed the default first.
	req := createChartRequest{Options: pipeline.Options{Compress: true}}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Name == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "name is required"))
		return
	}

	doc := store.NewDocument(req.Name, req.Intervals, req.Options)
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("stored chart", "id", doc.ID, "name", doc.Name, "tasks", len(doc.Intervals))
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := doc.Options
	opts.Intervals = doc.Intervals
	if opts.Intervals == nil {
		opts.Intervals = []chart.Interval{}
	}
	opts.CSVPath, opts.JSONPath, opts.Sample = "", "", false
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Needle = true
	opts.Labels = true
	if style := r.URL.Query().Get("style"); style != "" {
		opts.Style = style
	}
	if r.URL.Query().Get("popups") == "true" {
		opts.Popups = true
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	n := pipeline.DefaultSampleCount
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid n: %q", v))
			return
		}
		n = parsed
	}

	seed := pipeline.DefaultSeed
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid seed: %q", v))
			return
		}
		seed = parsed
	}

	writeJSON(w, http.StatusOK, sample.Generate(n, sample.Options{Seed: seed}))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeChartNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDataset, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}
