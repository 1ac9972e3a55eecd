package api

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sells-group/f1-analytics/internal/model"
	"github.com/sells-group/f1-analytics/internal/stats"
)

type healthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

type namesResponse struct {
	Drivers []string `json:"drivers"`
}

type compareResponse struct {
	Warning    string            `json:"warning,omitempty"`
	Comparison *stats.Comparison `json:"comparison,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Records: len(s.data.Records)})
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	var summary model.Summary
	timed("summary", func() {
		drivers := stats.DriverStats(s.data.Records, s.opts.Weight)
		summary = stats.Summarize(len(s.data.Drivers), drivers)
	})
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleDrivers(w http.ResponseWriter, r *http.Request) {
	top, weight, err := s.rankingParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var rows []model.DriverStats
	timed("driver_stats", func() {
		rows = stats.TopDrivers(stats.DriverStats(s.data.Records, weight), top)
	})
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleDriverNames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, namesResponse{Drivers: stats.DriverNames(s.data.Records)})
}

func (s *Server) handleConstructors(w http.ResponseWriter, r *http.Request) {
	top, weight, err := s.rankingParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var rows []model.ConstructorStats
	timed("constructor_stats", func() {
		rows = stats.TopConstructors(stats.ConstructorStats(s.data.Records, weight), top)
	})
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleChampions(w http.ResponseWriter, _ *http.Request) {
	champions := s.data.Champions
	if champions == nil {
		champions = []model.Champion{}
	}
	writeJSON(w, http.StatusOK, champions)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := intParam(q, "from", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := intParam(q, "to", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f := stats.Filter{
		Drivers:  driverParams(q),
		FromYear: from,
		ToYear:   to,
		Circuit:  q.Get("circuit"),
	}

	var cmp *stats.Comparison
	timed("compare", func() {
		cmp, err = stats.Compare(s.data.Records, f, s.opts.MaxDrivers)
	})

	var warn *stats.EmptySelectionWarning
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, compareResponse{Comparison: cmp})
	case errors.As(err, &warn):
		writeJSON(w, http.StatusOK, compareResponse{Warning: warn.Reason, Comparison: cmp})
	case errors.Is(err, stats.ErrTooManyDrivers), errors.Is(err, stats.ErrInvalidYearRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "comparison failed")
	}
}

// rankingParams reads ?top= and ?weight=, falling back to the server options.
func (s *Server) rankingParams(q url.Values) (top int, weight float64, err error) {
	top, err = intParam(q, "top", s.opts.TopN)
	if err != nil {
		return 0, 0, err
	}
	if top < 0 {
		return 0, 0, errors.New("top must be >= 0")
	}

	weight = s.opts.Weight
	if raw := q.Get("weight"); raw != "" {
		weight, err = strconv.ParseFloat(raw, 64)
		if err != nil || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return 0, 0, errors.New("weight must be a number >= 0")
		}
	}
	return top, weight, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

// driverParams accepts both repeated ?driver= and comma-separated values.
func driverParams(q url.Values) []string {
	var names []string
	for _, v := range q["driver"] {
		for _, n := range strings.Split(v, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	return names
}

func timed(op string, fn func()) {
	start := time.Now()
	fn()
	ComputeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
