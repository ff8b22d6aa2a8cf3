// Package posting loads job posting text from files and URLs.
package posting

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/metrics"
)

// Source records where posting text came from
type Source string

const (
	SourceText    Source = "text"
	SourceFile    Source = "file"
	SourceURL     Source = "url"
	SourceBrowser Source = "browser"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeOptimizer/1.0)"

// Posting is cleaned posting text plus provenance
type Posting struct {
	Text     string   `json:"text"`
	Source   Source   `json:"source"`
	Location string   `json:"location,omitempty"`
	Platform Platform `json:"platform,omitempty"`
}

// RenderFunc renders a URL in a browser and returns the resulting HTML
type RenderFunc func(ctx context.Context, url string, timeout time.Duration) (string, error)

// Loader fetches and cleans postings
type Loader struct {
	client     *http.Client
	userAgent  string
	timeout    time.Duration
	useBrowser bool
	render     RenderFunc
	logger     *zap.Logger
}

// NewLoader builds a Loader from the fetch configuration
func NewLoader(cfg config.FetchConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Loader{
		client:     &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		timeout:    timeout,
		useBrowser: cfg.UseBrowser,
		render:     RenderWithBrowser,
		logger:     logger,
	}
}

// Load reads a posting from an http(s) URL or a local file path
func (l *Loader) Load(ctx context.Context, ref string) (*Posting, error) {
	if IsURL(ref) {
		return l.FromURL(ctx, ref)
	}
	return l.FromFile(ref)
}

// IsURL reports whether ref looks like an http or https URL
func IsURL(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// FromFile reads a .txt, .md or .html posting. HTML files are reduced to their main text.
func (l *Loader) FromFile(path string) (*Posting, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		metrics.PostingFetches.WithLabelValues(string(SourceFile), "error").Inc()
		if os.IsNotExist(err) {
			return nil, &FetchError{URL: path, Message: "file not found", Cause: err}
		}
		return nil, &FetchError{URL: path, Message: "failed to read file", Cause: err}
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = ExtractMainText(text, JobPostingSelectors(), PlatformNoiseSelectors(PlatformUnknown)...)
		if err != nil {
			metrics.PostingFetches.WithLabelValues(string(SourceFile), "error").Inc()
			return nil, &FetchError{URL: path, Message: "content extraction failed", Cause: err}
		}
	}

	metrics.PostingFetches.WithLabelValues(string(SourceFile), "ok").Inc()
	l.logger.Debug("loaded posting file", zap.String("path", path), zap.Int("chars", len(text)))
	return &Posting{Text: CleanText(text), Source: SourceFile, Location: path}, nil
}

// FromURL fetches a posting page and extracts its main text with platform-aware selectors.
// When the browser fallback is enabled and the static page yields too little text,
// the page is rendered headlessly and extracted again.
func (l *Loader) FromURL(ctx context.Context, url string) (*Posting, error) {
	platform := DetectPlatform(url)
	logger := l.logger.With(zap.String("url", url), zap.String("platform", string(platform)))

	html, err := l.fetch(ctx, url)
	if err != nil {
		metrics.PostingFetches.WithLabelValues(string(SourceURL), "error").Inc()
		return nil, err
	}
	logger.Debug("fetched posting html", zap.Int("bytes", len(html)))

	contentSelectors := PlatformContentSelectors(platform)
	noiseSelectors := PlatformNoiseSelectors(platform)

	text, err := ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		metrics.PostingFetches.WithLabelValues(string(SourceURL), "error").Inc()
		return nil, &FetchError{URL: url, Message: "content extraction failed", Cause: err}
	}

	source := SourceURL
	if l.useBrowser && l.render != nil && ShouldUseBrowser(text) {
		logger.Info("static content too short, rendering with browser",
			zap.Int("chars", len(text)), zap.Int("min", MinContentLength))

		rendered, renderErr := l.render(ctx, url, l.timeout)
		if renderErr != nil {
			logger.Warn("browser rendering failed, using static content", zap.Error(renderErr))
		} else if browserText, extractErr := ExtractMainText(rendered, contentSelectors, noiseSelectors...); extractErr != nil {
			logger.Warn("browser content extraction failed", zap.Error(extractErr))
		} else {
			text = browserText
			source = SourceBrowser
		}
	}

	metrics.PostingFetches.WithLabelValues(string(source), "ok").Inc()
	cleaned := CleanText(text)
	logger.Debug("extracted posting text", zap.Int("chars", len(cleaned)), zap.String("source", string(source)))
	return &Posting{Text: cleaned, Source: source, Location: url, Platform: platform}, nil
}
