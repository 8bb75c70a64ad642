package site

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lisawang/lisa-site/internal/content"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(content.MustLoad(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, s, httptest.NewRequest(http.MethodGet, target, nil))
}

func postForm(t *testing.T, s *Server, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return do(t, s, req)
}

func TestNew_NilRegistry(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestShell_SamePageForAnyPath(t *testing.T) {
	s := newTestServer(t)

	root := get(t, s, "/")
	require.Equal(t, http.StatusOK, root.Code)
	assert.Contains(t, root.Header().Get("Content-Type"), "text/html")

	for _, target := range []string{"/#about", "/#/about", "/about", "/resume/", "/a/b/c?x=1", "/index.html#contact"} {
		t.Run(target, func(t *testing.T) {
			w := get(t, s, target)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, root.Body.String(), w.Body.String())
		})
	}
}

func TestShell_TitleOnce(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()
	assert.Equal(t, 1, strings.Count(body, "<title>Lisa Wang - Financial Analyst</title>"))
}

func TestShell_SectionOrder(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()

	last := -1
	for _, sec := range pageSections {
		marker := `<section id="` + string(sec.Anchor) + `"`
		idx := strings.Index(body, marker)
		require.NotEqual(t, -1, idx, "missing section %s", sec.Anchor)
		assert.Greater(t, idx, last, "section %s out of order", sec.Anchor)
		last = idx
	}
}

func TestShell_ExperienceRenderedButNotLinked(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()

	assert.Contains(t, body, `<section id="experience"`)
	assert.Contains(t, body, "Professional Experience")
	assert.NotContains(t, body, `href="#experience"`)

	for _, anchor := range []string{"#about", "#strengths", "#achievements", "#volunteering", "#education", "#contact"} {
		assert.Contains(t, body, `href="`+anchor+`"`)
	}
}

func TestShell_Content(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()

	assert.Contains(t, body, "Collaboration%20with%20Lisa%20Wang")
	assert.Contains(t, body, `data-copy-value="wangyuyanlisa@gmail.com"`)
	assert.Contains(t, body, `data-copy-reset-ms="1800"`)
	assert.Contains(t, body, "Cryptocurrency Trading")
	assert.Contains(t, body, "The Hong Kong Polytechnic University")
	assert.Contains(t, body, "Nairobi &amp; Nakuru, Kenya")
	assert.Contains(t, body, "185 Hudson St Ste. 2600")
}

func TestShell_Head(t *testing.T) {
	w := do(t, newTestServer(t), httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShell_OtherMethodsNotAllowed(t *testing.T) {
	w := do(t, newTestServer(t), httptest.NewRequest(http.MethodDelete, "/about", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
}

func TestContact_RedirectsToMailto(t *testing.T) {
	s := newTestServer(t)
	w := postForm(t, s, url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "message": {"Hello"}}, false)

	require.Equal(t, http.StatusSeeOther, w.Code)
	u, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "wangyuyanlisa@gmail.com", u.Opaque)

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Message for Lisa Wang from Jane", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "Hello")
	assert.Contains(t, q.Get("body"), "From: Jane")
	assert.Contains(t, q.Get("body"), "Email: jane@x.com")
}

func TestContact_EmptyFormStillRedirects(t *testing.T) {
	s := newTestServer(t)
	w := postForm(t, s, url.Values{}, false)

	require.Equal(t, http.StatusSeeOther, w.Code)
	u, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Message for Lisa Wang from website visitor", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "[Your message here]")
	assert.Contains(t, q.Get("body"), "From: Visitor")
	assert.Contains(t, q.Get("body"), "Email: Not provided")
}

func TestContact_HTMXRedirectHeader(t *testing.T) {
	s := newTestServer(t)
	w := postForm(t, s, url.Values{"name": {"Jane"}}, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
	target := w.Header().Get("HX-Redirect")
	assert.True(t, strings.HasPrefix(target, "mailto:wangyuyanlisa@gmail.com?subject=Message%20for%20Lisa%20Wang%20from%20Jane&body="))
	assert.Empty(t, w.Header().Get("Location"))
}

func TestContact_KeepsFieldsVerbatim(t *testing.T) {
	s := newTestServer(t)
	w := postForm(t, s, url.Values{"name": {"  Jane  "}, "email": {"not an email"}}, false)

	u, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Message for Lisa Wang from   Jane  ", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "Email: not an email")
}

func TestMenu_Toggle(t *testing.T) {
	s := newTestServer(t)

	opened := get(t, s, "/nav/menu?visible=false")
	require.Equal(t, http.StatusOK, opened.Code)
	assert.Contains(t, opened.Body.String(), `aria-expanded="true"`)
	assert.Contains(t, opened.Body.String(), "/nav/menu?visible=true")
	assert.NotContains(t, opened.Body.String(), `id="mobile-nav" class="hidden`)

	closed := get(t, s, "/nav/menu?visible=true")
	require.Equal(t, http.StatusOK, closed.Code)
	assert.Contains(t, closed.Body.String(), `aria-expanded="false"`)
	assert.Contains(t, closed.Body.String(), `id="mobile-nav" class="hidden`)
	assert.NotContains(t, closed.Body.String(), `href="#experience"`)
}

func TestMenu_InvalidStateCountsAsHidden(t *testing.T) {
	w := get(t, newTestServer(t), "/nav/menu?visible=maybe")
	assert.Contains(t, w.Body.String(), `aria-expanded="true"`)
}

func TestMenu_PageStartsHidden(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()
	assert.Contains(t, body, `id="mobile-nav" class="hidden`)
}

func TestStaticAndHealth(t *testing.T) {
	s := newTestServer(t)

	js := get(t, s, "/static/site.js")
	require.Equal(t, http.StatusOK, js.Code)
	assert.Contains(t, js.Body.String(), "navigator.clipboard")

	health := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "ok", health.Body.String())
}

func TestStatic_NoDirectoryListing(t *testing.T) {
	s := newTestServer(t)
	root := get(t, s, "/").Body.String()

	for _, target := range []string{"/static/", "/static", "/healthz/", "/nav/menu/"} {
		t.Run(target, func(t *testing.T) {
			w := get(t, s, target)
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), `<a href="site.js">`)
			assert.Equal(t, root, w.Body.String())
		})
	}

	css := get(t, s, "/static/site.css")
	assert.Equal(t, http.StatusOK, css.Code)
}

func TestContact_DraftComposedInBrowser(t *testing.T) {
	s := newTestServer(t)

	body := get(t, s, "/").Body.String()
	assert.Contains(t, body, `action="/contact" method="post"`)
	assert.Contains(t, body, `data-mailto-to="wangyuyanlisa@gmail.com"`)
	assert.NotContains(t, body, `hx-post="/contact"`)

	js := get(t, s, "/static/site.js").Body.String()
	assert.Contains(t, js, "form[data-mailto-to]")
	assert.Contains(t, js, "Message for Lisa Wang from ")
}

func TestContact_FieldsNeverLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(content.MustLoad(), zap.New(core))
	require.NoError(t, err)

	form := url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "message": {"quarterly forecast draft"}}
	w := postForm(t, s, form, false)
	require.Equal(t, http.StatusSeeOther, w.Code)

	require.NotEmpty(t, logs.All())
	for _, e := range logs.All() {
		for k, v := range e.ContextMap() {
			text := fmt.Sprint(v)
			assert.NotContains(t, text, "quarterly forecast", "field %s", k)
			assert.NotContains(t, text, "jane@x.com", "field %s", k)
		}
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s, err := New(content.MustLoad(), zap.New(core))
	require.NoError(t, err)

	w := get(t, s, "/about")
	_, err = uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	do(t, s, req)

	get(t, s, "/static/site.css")
	get(t, s, "/healthz")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "/about", first["path"])
	assert.Equal(t, int64(http.StatusOK), first["status"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), first["request_id"])
	client, ok := first["client"].(string)
	require.True(t, ok)
	assert.Len(t, client, 16)
	assert.NotContains(t, client, "192.0.2.1")

	_, tracked := entries[1].ContextMap()["client"]
	assert.False(t, tracked, "DNT requests carry no client hash")
}

func TestHashIP(t *testing.T) {
	a := hashIP("salt-a", "203.0.113.7")
	assert.Equal(t, a, hashIP("salt-a", "203.0.113.7"))
	assert.NotEqual(t, a, hashIP("salt-b", "203.0.113.7"))
	assert.NotEqual(t, a, hashIP("salt-a", "203.0.113.8"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, err := New(content.MustLoad(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln := httptest.NewServer(http.NotFoundHandler())
	defer ln.Close()

	s, err := New(content.MustLoad(), nil)
	require.NoError(t, err)

	addr := strings.TrimPrefix(ln.URL, "http://")
	err = s.Run(context.Background(), addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serve "+addr)
}
