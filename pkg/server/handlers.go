package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/geom"
	"github.com/matzehuels/masonry/pkg/pipeline"
	"github.com/matzehuels/masonry/pkg/scenario"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: errors.UserMessage(err)}})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readScenario decodes and validates the request body.
func readScenario(w http.ResponseWriter, r *http.Request) (*scenario.Scenario, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return scenario.Parse(data, scenario.FormatJSON)
}

// prepared decodes the scenario and runs a prepare pass over it.
func prepared(w http.ResponseWriter, r *http.Request) (*column.Layout, error) {
	sc, err := readScenario(w, r)
	if err != nil {
		return nil, err
	}
	l := sc.NewLayout()
	l.Prepare()
	return l, nil
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	sc, err := readScenario(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	q := query(r)
	opts := pipeline.Options{
		Overrides: pipeline.Overrides{
			Width:     q.number("width", 0),
			Columns:   q.integer("columns", 0),
			Direction: r.URL.Query().Get("direction"),
			Sticky:    q.boolean("sticky"),
		},
	}
	if q.err != nil {
		s.writeError(w, q.err)
		return
	}
	res, err := s.runner.Layout(r.Context(), sc, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo.LayoutHit))
	s.writeJSON(w, http.StatusOK, res.Document)
}

func (s *Server) handleRect(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	rect := geom.NewRect(q.number("x", 0), q.number("y", 0), q.requiredFloat("w"), q.requiredFloat("h"))
	if q.err != nil {
		s.writeError(w, q.err)
		return
	}
	l, err := prepared(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	attrs := l.ItemsIntersecting(rect)
	if attrs == nil {
		attrs = []column.Attributes{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"attributes": attrs})
}

func (s *Server) handlePoint(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	pt := geom.Point{X: q.requiredFloat("x"), Y: q.requiredFloat("y")}
	if q.err != nil {
		s.writeError(w, q.err)
		return
	}
	l, err := prepared(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	p, ok := l.ItemAt(pt)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no item at (%g,%g)", pt.X, pt.Y))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"path": p})
}

func (s *Server) handleHeader(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	section := q.requiredInt("section")
	if q.err != nil {
		s.writeError(w, q.err)
		return
	}
	l, err := prepared(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	a, ok := l.AttributesForSupplementary(column.KindHeader, column.Path(section, 0))
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "section %d has no header", section))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"attributes": a})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	from := column.Path(q.requiredInt("section"), q.requiredInt("item"))
	dir, err := column.ParseDirection(r.URL.Query().Get("dir"))
	if q.err != nil {
		s.writeError(w, q.err)
		return
	}
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidDirection, err, "dir"))
		return
	}
	l, err := prepared(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	p, ok := l.NextItem(dir, from)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no item %s of %s", dir, from))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"path": p})
}

func (s *Server) handleScroll(w http.ResponseWriter, r *http.Request) {
	q := query(r)
	p := column.Path(q.requiredInt("section"), q.requiredInt("item"))
	if q.err != nil {
		s.writeError(w, q.err)
		return
	}
	l, err := prepared(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rect, ok := l.ScrollTarget(p, column.ScrollTop)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "no item at %s", p))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"rect": rect})
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// params reads query parameters, keeping the first parse error.
type params struct {
	r   *http.Request
	err error
}

func query(r *http.Request) *params { return &params{r: r} }

func (p *params) number(name string, def float64) float64 {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && p.err == nil {
		p.err = errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not a number", name, raw)
	}
	return v
}

func (p *params) requiredFloat(name string) float64 {
	if p.r.URL.Query().Get(name) == "" && p.err == nil {
		p.err = errors.New(errors.ErrCodeInvalidInput, "query parameter %s is required", name)
	}
	return p.number(name, 0)
}

func (p *params) integer(name string, def int) int {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil && p.err == nil {
		p.err = errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not an integer", name, raw)
	}
	return v
}

func (p *params) requiredInt(name string) int {
	if p.r.URL.Query().Get(name) == "" && p.err == nil {
		p.err = errors.New(errors.ErrCodeInvalidInput, "query parameter %s is required", name)
	}
	return p.integer(name, 0)
}

func (p *params) boolean(name string) bool {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil && p.err == nil {
		p.err = errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not a boolean", name, raw)
	}
	return v
}
