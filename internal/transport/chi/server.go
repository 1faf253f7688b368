// Package chi is the HTTP surface over the search engine: route handlers,
// request decoding and response DTOs. The engine itself stays transport-free;
// this package is its reference caller.
package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	"github.com/quorumhq/minutesearch/internal/domain/search/query"
	"github.com/quorumhq/minutesearch/internal/logger"
	searchuc "github.com/quorumhq/minutesearch/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInternal         = "internal_error"
	codeUnavailable      = "unavailable"
)

// Pinger checks the candidate-record store's connectivity for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the HTTP handlers.
type Server struct {
	search *searchuc.Service
	pinger Pinger
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, pinger Pinger, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{search: search, pinger: pinger, logger: log}
}

// Register mounts the API routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.Search)
		r.Get("/search", s.SearchGet)
	})
}

// Search handles POST /v1/search with a JSON request body.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.execute(w, r, req)
}

// SearchGet handles GET /v1/search with URL query parameters.
func (s *Server) SearchGet(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequestFromParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	s.execute(w, r, req)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, req searchRequest) {
	q, err := req.toQuery()
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	resp, err := s.search.Search(r.Context(), &q)
	if err != nil {
		logger.FromContext(r.Context()).Error("search failed",
			zap.String("query", q.Text()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternal, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, responseToDTO(resp))
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  codeUnavailable,
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// searchRequestFromParams decodes GET query parameters into a search request.
func searchRequestFromParams(r *http.Request) (searchRequest, error) {
	params := r.URL.Query()

	req := searchRequest{
		Query:         params.Get("q"),
		SortBy:        params.Get("sort_by"),
		SortOrder:     params.Get("sort_order"),
		IncludeFacets: params.Get("facets") == "true",
	}

	if kinds := params.Get("kinds"); kinds != "" {
		req.Kinds = strings.Split(kinds, ",")
	}

	var err error
	if req.Page, err = intParam(params.Get("page")); err != nil {
		return searchRequest{}, err
	}
	if req.Limit, err = intParam(params.Get("limit")); err != nil {
		return searchRequest{}, err
	}

	filters := searchFilters{
		MeetingID:   params.Get("meeting_id"),
		Participant: params.Get("participant"),
		Priority:    params.Get("priority"),
		Status:      params.Get("status"),
	}
	if filters.From, err = timeParam(params.Get("from")); err != nil {
		return searchRequest{}, err
	}
	if filters.To, err = timeParam(params.Get("to")); err != nil {
		return searchRequest{}, err
	}
	if filters != (searchFilters{}) {
		req.Filters = &filters
	}

	return req, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func timeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// toQuery validates and normalizes the request into a domain query.
// Page and limit clamping happens inside query.New.
func (req searchRequest) toQuery() (query.Query, error) {
	kinds := make([]kind.Kind, 0, len(req.Kinds))
	for _, k := range req.Kinds {
		kinds = append(kinds, kind.Kind(strings.TrimSpace(k)))
	}

	var filters query.Filters
	if req.Filters != nil {
		filters = query.Filters{
			MeetingID:   req.Filters.MeetingID,
			Participant: req.Filters.Participant,
			Priority:    req.Filters.Priority,
			Status:      req.Filters.Status,
			From:        req.Filters.From,
			To:          req.Filters.To,
		}
	}

	return query.New(
		req.Query, kinds, filters,
		req.Page, req.Limit,
		query.SortBy(req.SortBy), query.SortOrder(req.SortOrder),
		req.IncludeFacets,
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
