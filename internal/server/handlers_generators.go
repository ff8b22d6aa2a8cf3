package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/quantify"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// RewriteBulletRequest represents the request body for /v1/rewrite-bullet
type RewriteBulletRequest struct {
	Bullet  string `json:"bullet" validate:"required"`
	Context string `json:"context,omitempty"`
}

// SuggestMetricsRequest represents the request body for /v1/suggest-metrics
type SuggestMetricsRequest struct {
	Bullet string `json:"bullet" validate:"required"`
}

// InjectKeywordsRequest represents the request body for /v1/inject-keywords.
// A missing max_keywords uses the configured default.
type InjectKeywordsRequest struct {
	Profile     json.RawMessage `json:"profile" validate:"required"`
	Posting     string          `json:"posting"`
	PostingURL  string          `json:"posting_url,omitempty" validate:"omitempty,url"`
	MaxKeywords *int            `json:"max_keywords,omitempty"`
}

// InjectKeywordsResponse represents the response for /v1/inject-keywords
type InjectKeywordsResponse struct {
	MissingKeywords []string       `json:"missing_keywords"`
	Changes         []types.Change `json:"changes"`
}

// TextRequest represents the request body for /v1/standardize and /v1/ats-check
type TextRequest struct {
	Text string `json:"text"`
}

// handleRewriteBullet rewrites a single bullet
func (s *Server) handleRewriteBullet(w http.ResponseWriter, r *http.Request) {
	var req RewriteBulletRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.rewriter.Rewrite(req.Bullet, req.Context))
}

// handleSuggestMetrics proposes metric placeholders for a single bullet
func (s *Server) handleSuggestMetrics(w http.ResponseWriter, r *http.Request) {
	var req SuggestMetricsRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, quantify.Suggest(req.Bullet))
}

// handleInjectKeywords proposes injections for the posting keywords the profile lacks
func (s *Server) handleInjectKeywords(w http.ResponseWriter, r *http.Request) {
	var req InjectKeywordsRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	profile, err := decodeProfile(req.Profile)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	postingText, err := s.resolvePosting(r.Context(), req.Posting, req.PostingURL)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	maxKeywords := s.cfg.OptimizationOptions().MaxKeywords
	if req.MaxKeywords != nil {
		maxKeywords = *req.MaxKeywords
	}

	missing := keywords.Match(
		keywords.Extract(scoring.ProfileText(profile)),
		keywords.Extract(postingText),
	).Missing

	changes, err := s.injector.Inject(profile, missing, postingText, maxKeywords)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, InjectKeywordsResponse{MissingKeywords: missing, Changes: changes})
}

// handleStandardize runs the heading, date and cleanup passes over text
func (s *Server) handleStandardize(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, formatting.StandardizeAll(req.Text))
}

// handleATSCheck scores text for ATS friendliness
func (s *Server) handleATSCheck(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, formatting.ValidateATSFriendly(req.Text))
}
