package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/metrics"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/store"
	"github.com/jonathan/resume-optimizer/internal/telemetry"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// maxRequestBytes caps request bodies
	maxRequestBytes = 1 << 20
	// batchConcurrency caps concurrent scoring in a batch request
	batchConcurrency = 8
	// defaultTrendWindow is the moving-average window for history requests
	defaultTrendWindow = 3
)

var validate = newValidator()

// newValidator reports field errors under their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ScoreRequest represents the request body for /v1/score
type ScoreRequest struct {
	Profile    json.RawMessage `json:"profile" validate:"required"`
	Posting    string          `json:"posting"`
	PostingURL string          `json:"posting_url,omitempty" validate:"omitempty,url"`
}

// ScoreBatchRequest represents the request body for /v1/score/batch
type ScoreBatchRequest struct {
	Profile  json.RawMessage `json:"profile" validate:"required"`
	Postings []string        `json:"postings" validate:"required,min=1,max=100"`
}

// BatchScoreResult is the score of one posting in a batch
type BatchScoreResult struct {
	Index  int               `json:"index"`
	Report types.ScoreReport `json:"report"`
}

// ScoreBatchResponse represents the response for /v1/score/batch
type ScoreBatchResponse struct {
	Results   []BatchScoreResult `json:"results"`
	BestIndex int                `json:"best_index"`
}

// OptimizeRequest represents the request body for /v1/optimize.
// Options not present in the request keep their configured defaults.
type OptimizeRequest struct {
	Profile    json.RawMessage `json:"profile" validate:"required"`
	Posting    string          `json:"posting"`
	PostingURL string          `json:"posting_url,omitempty" validate:"omitempty,url"`
	Options    json.RawMessage `json:"options,omitempty"`
}

// HistoryResponse represents the response for /v1/history/{profileID}
type HistoryResponse struct {
	ProfileID     string             `json:"profile_id"`
	Runs          []store.RunSummary `json:"runs"`
	Scores        []store.ScorePoint `json:"scores"`
	MovingAverage []float64          `json:"moving_average"`
	Window        int                `json:"window"`
	NonDecreasing bool               `json:"non_decreasing"`
}

// handleScore scores a profile against a posting
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.StartSpan(r.Context(), "server.score")
	defer span.End()

	var req ScoreRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	profile, err := decodeProfile(req.Profile)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	postingText, err := s.resolvePosting(ctx, req.Posting, req.PostingURL)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	report, hit := s.score(ctx, profile, postingText)
	span.SetAttributes(
		telemetry.Float64("score.composite", report.Breakdown.Composite),
		telemetry.String("score.cache", cacheResult(hit)),
	)

	if s.cache != nil {
		w.Header().Set("X-Cache", strings.ToUpper(cacheResult(hit)))
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleScoreBatch scores one profile against several postings concurrently
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.StartSpan(r.Context(), "server.score_batch")
	defer span.End()

	var req ScoreBatchRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	profile, err := decodeProfile(req.Profile)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	results := make([]BatchScoreResult, len(req.Postings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, postingText := range req.Postings {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, _ := s.score(gctx, profile, postingText)
			results[i] = BatchScoreResult{Index: i, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.handleError(w, r, err)
		return
	}

	best := 0
	for i, res := range results {
		if res.Report.Breakdown.Composite > results[best].Report.Breakdown.Composite {
			best = i
		}
	}
	span.SetAttributes(telemetry.Int("batch.size", len(results)))

	s.jsonResponse(w, http.StatusOK, ScoreBatchResponse{Results: results, BestIndex: best})
}

// handleOptimize runs every enabled generator and optionally persists the run
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.StartSpan(r.Context(), "server.optimize")
	defer span.End()

	var req OptimizeRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	profile, err := decodeProfile(req.Profile)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	opts, err := s.decodeOptions(req.Options)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	postingText, err := s.resolvePosting(ctx, req.Posting, req.PostingURL)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	result, err := s.optimizer.Optimize(profile, postingText, opts)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	metrics.ObserveOptimization(result)
	span.SetAttributes(
		telemetry.String("optimization.run_id", result.RunID),
		telemetry.Float64("optimization.original_score", result.OriginalScore),
		telemetry.Float64("optimization.estimated_score", result.EstimatedScore),
		telemetry.Int("optimization.changes", result.Summary.Total),
	)

	if s.store != nil {
		if err := s.store.SaveRun(ctx, result, postingText); err != nil {
			s.handleError(w, r, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHistory returns the stored runs and composite score trend of a profile
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.handleError(w, r, &ErrHistoryUnavailable{})
		return
	}

	profileID := r.PathValue("profileID")
	window, err := queryInt(r, "window", defaultTrendWindow)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", store.DefaultListLimit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	points, err := s.store.ScoreHistory(r.Context(), profileID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	runs, err := s.store.ListRuns(r.Context(), profileID, limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	scores := store.Scores(points)
	averages, err := scoring.MovingAverage(scores, window)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, HistoryResponse{
		ProfileID:     profileID,
		Runs:          runs,
		Scores:        points,
		MovingAverage: averages,
		Window:        window,
		NonDecreasing: scoring.IsNonDecreasing(scores),
	})
}

// score computes a report, consulting the cache when one is configured
func (s *Server) score(ctx context.Context, profile *types.Profile, postingText string) (types.ScoreReport, bool) {
	if s.cache == nil {
		report := scoring.Score(profile, postingText)
		metrics.ObserveScore(report)
		return report, false
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		report := scoring.Score(profile, postingText)
		metrics.ObserveScore(report)
		return report, false
	}
	key := cache.Key(profileJSON, postingText)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return *cached, true
	case errors.Is(err, cache.ErrNotFound):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("score cache lookup failed", zap.Error(err))
	}

	report := scoring.Score(profile, postingText)
	metrics.ObserveScore(report)
	if err := s.cache.Set(ctx, key, &report, s.cfg.Redis.TTL); err != nil {
		s.logger.Warn("score cache write failed", zap.Error(err))
	}
	return report, false
}

// resolvePosting returns inline posting text, or fetches it when a URL is given
func (s *Server) resolvePosting(ctx context.Context, text, url string) (string, error) {
	if url == "" {
		return text, nil
	}
	p, err := s.loader.FromURL(ctx, url)
	if err != nil {
		return "", err
	}
	return p.Text, nil
}

// decodeRequest decodes a JSON body into dst and validates its struct tags
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed %s validation", fe.Tag())}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// decodeProfile validates a raw profile against the profile schema before decoding it
func decodeProfile(raw json.RawMessage) (*types.Profile, error) {
	if err := schemas.ValidateProfile(raw); err != nil {
		return nil, err
	}
	var profile types.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &ErrValidation{Field: "profile", Message: err.Error()}
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// decodeOptions overlays raw options on the configured defaults
func (s *Server) decodeOptions(raw json.RawMessage) (types.OptimizationOptions, error) {
	opts := s.cfg.OptimizationOptions()
	if len(raw) == 0 || string(raw) == "null" {
		return opts, nil
	}
	if err := schemas.ValidateOptions(raw); err != nil {
		return opts, err
	}
	if err := json.Unmarshal(raw, &opts); err != nil {
		return opts, &ErrValidation{Field: "options", Message: err.Error()}
	}
	return opts, nil
}

// handleError writes err with the status HTTPStatus assigns it
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		s.jsonResponse(w, status, map[string]any{
			"error":   "validation failed against " + schemaErr.Schema,
			"details": schemaErr.Errors,
		})
		return
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	s.errorResponse(w, status, err.Error())
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrValidation{Field: name, Message: "must be an integer"}
	}
	return n, nil
}

func cacheResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
