package posting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/logging"
)

const postingHTML = `<html><head><script>var x = 1;</script></head><body>
<nav>Jobs Menu</nav>
<div class="job-description">
  <h2>Backend Engineer</h2>
  <ul><li>Go   experience</li><li>Kubernetes</li></ul>
  <form>Apply now</form>
</div>
<footer>Copyright</footer>
</body></html>`

func newTestLoader(useBrowser bool, render RenderFunc) *Loader {
	l := NewLoader(config.FetchConfig{Timeout: 5 * time.Second, UseBrowser: useBrowser}, logging.NewNop())
	l.render = render
	return l
}

func TestExtractMainText(t *testing.T) {
	text, err := ExtractMainText(postingHTML, JobPostingSelectors(), PlatformNoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\n- Go experience\n- Kubernetes", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><p>Plain posting</p></body></html>`, []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "Plain posting", text)
}

func TestLoader_FromURL(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	p, err := newTestLoader(false, nil).Load(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, SourceURL, p.Source)
	assert.Equal(t, server.URL, p.Location)
	assert.Equal(t, PlatformUnknown, p.Platform)
	assert.Contains(t, p.Text, "- Kubernetes")
	assert.NotContains(t, p.Text, "Apply now")
	assert.NotContains(t, p.Text, "Jobs Menu")
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestLoader_FromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestLoader(false, nil).FromURL(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestLoader_FromURL_InvalidURL(t *testing.T) {
	_, err := newTestLoader(false, nil).FromURL(context.Background(), "http://")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestLoader_BrowserFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer server.Close()

	rendered := `<html><body><main><p>` + strings.Repeat("Kubernetes platform work. ", 30) + `</p></main></body></html>`

	t.Run("uses rendered html", func(t *testing.T) {
		calls := 0
		render := func(_ context.Context, url string, _ time.Duration) (string, error) {
			calls++
			assert.Equal(t, server.URL, url)
			return rendered, nil
		}
		p, err := newTestLoader(true, render).FromURL(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, SourceBrowser, p.Source)
		assert.Contains(t, p.Text, "Kubernetes platform work.")
	})

	t.Run("keeps static text when rendering fails", func(t *testing.T) {
		render := func(context.Context, string, time.Duration) (string, error) {
			return "", errors.New("chrome not installed")
		}
		p, err := newTestLoader(true, render).FromURL(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, SourceURL, p.Source)
		assert.Empty(t, p.Text)
	})

	t.Run("disabled browser never renders", func(t *testing.T) {
		render := func(context.Context, string, time.Duration) (string, error) {
			t.Fatal("render must not be called")
			return "", nil
		}
		p, err := newTestLoader(false, render).FromURL(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, SourceURL, p.Source)
	})
}

func TestLoader_FromFile(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(txt, []byte("Backend Engineer\r\n\r\n\r\n\r\n- Go   and  Kubernetes  \n"), 0644))
	html := filepath.Join(dir, "posting.html")
	require.NoError(t, os.WriteFile(html, []byte(postingHTML), 0644))

	l := newTestLoader(false, nil)

	p, err := l.Load(context.Background(), txt)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, p.Source)
	assert.Equal(t, "Backend Engineer\n\n- Go and Kubernetes", p.Text)

	p, err = l.FromFile(html)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\n- Go experience\n- Kubernetes", p.Text)

	_, err = l.FromFile(filepath.Join(dir, "missing.txt"))
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://boards.greenhouse.io/acme/jobs/1"))
	assert.True(t, IsURL("HTTP://example.com"))
	assert.False(t, IsURL("postings/acme.txt"))
	assert.False(t, IsURL("ftp://example.com"))
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers", PlatformWorkday},
		{"https://example.com/careers", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformSelectors(t *testing.T) {
	for _, p := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformUnknown} {
		assert.NotEmpty(t, PlatformContentSelectors(p))
		assert.Contains(t, PlatformNoiseSelectors(p), "form")
	}
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength-1)))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf and trailing space", "a  \r\nb\t\r\n", "a\nb"},
		{"blank runs capped", "a\n\n\n\n\nb", "a\n\nb"},
		{"inner spaces collapsed", "Go    and   Rust", "Go and Rust"},
		{"bullet indentation kept", "Skills\n  - Go   lang", "Skills\n  - Go lang"},
		{"heading kept", "  ## Requirements", "## Requirements"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestFetchError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &FetchError{URL: "https://x", Message: "HTTP request failed", Cause: cause}
	assert.Equal(t, "fetch error for https://x: HTTP request failed: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)
}
