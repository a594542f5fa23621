package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/renderer"
	"github.com/go-chi/chi/v5"
)

// envelope is the body of every successful API response.
type envelope struct {
	Data     any      `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("cannot encode response")
	}
}

func (s *Server) writeData(w http.ResponseWriter, data any, warnings error) {
	env := envelope{Data: data}
	for _, e := range renderer.Flatten(warnings) {
		env.Warnings = append(env.Warnings, e.Error())
	}
	s.writeJSON(w, http.StatusOK, env)
}

// writeError maps the error kinds to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		load  *finance.DataLoadError
		quote *finance.QuoteUnavailableError
	)
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, errUnknownTicker):
		status, kind = http.StatusNotFound, "not_found"
	case errors.As(err, &load):
		status, kind = http.StatusInternalServerError, "data_load"
	case errors.As(err, &quote):
		status, kind = http.StatusServiceUnavailable, "quote_unavailable"
	case errors.Is(err, finance.ErrNoLoan):
		kind = "config"
	}
	s.log.Warn().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("API error")
	s.writeJSON(w, status, apiError{Error: err.Error(), Kind: kind})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMortgage(w http.ResponseWriter, r *http.Request) {
	m, err := s.mortgage()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, m, m.Check())
}

func (s *Server) handleStocks(w http.ResponseWriter, r *http.Request) {
	st, err := s.stocks(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, st, finance.CheckStocks(st.Summaries))
}

// handleStockChart returns the plotly figure of a ticker.
func (s *Server) handleStockChart(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	summary, h, err := s.stockHistory(r.Context(), ticker)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	theme := renderer.ThemeAt(s.cfg.Now(), s.cfg.Morning, s.cfg.Night)
	s.writeData(w, stockFigure(summary, h, theme), finance.CheckStocks([]finance.StockSummary{summary}))
}

func (s *Server) handleLots(w http.ResponseWriter, r *http.Request) {
	l, err := s.lots(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, l, l.Check())
}

func (s *Server) handleSalary(w http.ResponseWriter, r *http.Request) {
	sal, err := s.salary()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, sal, nil)
}
